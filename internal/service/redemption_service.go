package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
)

var (
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// DefaultRejectReason is stored when an admin rejects without giving one.
const DefaultRejectReason = "No reason provided"

// RedemptionStore is the persistence contract the workflow engine runs
// against. Approve must atomically guard the pending status, credit the
// user's balance, and persist the approved status; Reject must guard the
// status and persist the rejection. Implementations decide the atomicity
// mechanism (the Postgres store uses row-locked transactions).
type RedemptionStore interface {
	Approve(ctx context.Context, id uuid.UUID) (float64, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) error
	ListEntries(ctx context.Context) ([]model.RedemptionEntry, error)
	Create(ctx context.Context, red *model.Redemption) error
	ListRedeems(ctx context.Context) ([]model.Redeem, error)
	CreateRedeem(ctx context.Context, rm *model.Redeem) error
}

// RedemptionService drives the pending → approved/rejected state machine.
type RedemptionService struct {
	store RedemptionStore
}

func NewRedemptionService(store RedemptionStore) *RedemptionService {
	return &RedemptionService{store: store}
}

// Approve transitions the named request to approved and credits its amount
// to the requesting user's balance, returning the new balance. Approving a
// request that already reached a terminal state fails with
// repository.ErrAlreadyApproved or repository.ErrAlreadyRejected rather
// than repeating the credit.
func (s *RedemptionService) Approve(ctx context.Context, rawID string) (float64, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.store.Approve(ctx, id)
}

// Reject transitions the named request to rejected with the given reason,
// defaulting a blank reason. Returns the stored reason.
func (s *RedemptionService) Reject(ctx context.Context, rawID, reason string) (string, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return "", ErrInvalidID
	}
	if strings.TrimSpace(reason) == "" {
		reason = DefaultRejectReason
	}
	if err := s.store.Reject(ctx, id, reason); err != nil {
		return "", err
	}
	return reason, nil
}

// List returns the flattened admin view of all redemption requests.
func (s *RedemptionService) List(ctx context.Context) ([]model.RedemptionEntry, error) {
	return s.store.ListEntries(ctx)
}

// Submit records a new pending redemption request from a user.
func (s *RedemptionService) Submit(ctx context.Context, rawRedeemID string, userID uuid.UUID, amount float64, image string) (*model.Redemption, error) {
	redeemID, err := uuid.Parse(rawRedeemID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	red := &model.Redemption{
		ID:       uuid.New(),
		RedeemID: redeemID,
		UserID:   userID,
		Amount:   amount,
		Image:    image,
		Status:   model.StatusPending,
	}
	if err := s.store.Create(ctx, red); err != nil {
		return nil, err
	}
	return red, nil
}

func (s *RedemptionService) Redeems(ctx context.Context) ([]model.Redeem, error) {
	return s.store.ListRedeems(ctx)
}

func (s *RedemptionService) CreateRedeem(ctx context.Context, name string) (*model.Redeem, error) {
	rm := &model.Redeem{ID: uuid.New(), Name: name}
	if err := s.store.CreateRedeem(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}
