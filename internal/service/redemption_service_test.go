package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
	"github.com/applenx/shop-api/internal/repository"
)

// memRedemptionStore is an in-memory RedemptionStore double. It honors the
// same contract as the Postgres store: status transitions are guarded and
// the guard plus the balance credit happen under one lock.
type memRedemptionStore struct {
	mu       sync.Mutex
	redeems  map[uuid.UUID]*model.Redeem
	requests map[uuid.UUID]*model.Redemption
	order    []uuid.UUID
	users    map[uuid.UUID]*model.User
}

func newMemRedemptionStore() *memRedemptionStore {
	return &memRedemptionStore{
		redeems:  map[uuid.UUID]*model.Redeem{},
		requests: map[uuid.UUID]*model.Redemption{},
		users:    map[uuid.UUID]*model.User{},
	}
}

func (s *memRedemptionStore) addUser(name, email string, balance float64) uuid.UUID {
	id := uuid.New()
	s.users[id] = &model.User{ID: id, Name: name, Email: email, Balance: balance}
	return id
}

func (s *memRedemptionStore) addRedeem(name string) uuid.UUID {
	id := uuid.New()
	s.redeems[id] = &model.Redeem{ID: id, Name: name}
	return id
}

func (s *memRedemptionStore) addRequest(redeemID, userID uuid.UUID, amount float64) uuid.UUID {
	id := uuid.New()
	s.requests[id] = &model.Redemption{
		ID: id, RedeemID: redeemID, UserID: userID,
		Amount: amount, Status: model.StatusPending,
	}
	s.order = append(s.order, id)
	return id
}

func (s *memRedemptionStore) Approve(ctx context.Context, id uuid.UUID) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return 0, repository.ErrRedemptionNotFound
	}
	switch req.Status {
	case model.StatusApproved:
		return 0, repository.ErrAlreadyApproved
	case model.StatusRejected:
		return 0, repository.ErrAlreadyRejected
	}
	u, ok := s.users[req.UserID]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	u.Balance += req.Amount
	req.Status = model.StatusApproved
	req.Reason = ""
	return u.Balance, nil
}

func (s *memRedemptionStore) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return repository.ErrRedemptionNotFound
	}
	switch req.Status {
	case model.StatusRejected:
		return repository.ErrAlreadyRejected
	case model.StatusApproved:
		return repository.ErrAlreadyApproved
	}
	req.Status = model.StatusRejected
	req.Reason = reason
	return nil
}

func (s *memRedemptionStore) ListEntries(ctx context.Context) ([]model.RedemptionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []model.RedemptionEntry{}
	for _, id := range s.order {
		req := s.requests[id]
		e := model.RedemptionEntry{
			ID: req.ID, RedeemID: req.RedeemID, UserID: req.UserID,
			Amount: req.Amount, Image: req.Image, Status: req.Status,
			Reason: req.Reason, CreatedAt: req.CreatedAt,
		}
		if rm, ok := s.redeems[req.RedeemID]; ok {
			e.RedeemName = rm.Name
		}
		if u, ok := s.users[req.UserID]; ok {
			e.UserName = u.Name
			e.UserEmail = u.Email
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *memRedemptionStore) Create(ctx context.Context, red *model.Redemption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.redeems[red.RedeemID]; !ok {
		return repository.ErrRedeemNotFound
	}
	cp := *red
	s.requests[red.ID] = &cp
	s.order = append(s.order, red.ID)
	return nil
}

func (s *memRedemptionStore) ListRedeems(ctx context.Context) ([]model.Redeem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	redeems := []model.Redeem{}
	for _, rm := range s.redeems {
		redeems = append(redeems, *rm)
	}
	return redeems, nil
}

func (s *memRedemptionStore) CreateRedeem(ctx context.Context, rm *model.Redeem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rm
	s.redeems[rm.ID] = &cp
	return nil
}

func TestApproveCreditsBalance(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 100)
	redeemID := store.addRedeem("GiftCard")
	reqID := store.addRequest(redeemID, userID, 50)

	svc := NewRedemptionService(store)

	newBalance, err := svc.Approve(context.Background(), reqID.String())
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if newBalance != 150 {
		t.Errorf("expected new balance 150, got %v", newBalance)
	}
	if got := store.requests[reqID].Status; got != model.StatusApproved {
		t.Errorf("expected stored status approved, got %s", got)
	}
}

func TestApproveIsAtMostOnce(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 100)
	reqID := store.addRequest(store.addRedeem("GiftCard"), userID, 50)

	svc := NewRedemptionService(store)

	if _, err := svc.Approve(context.Background(), reqID.String()); err != nil {
		t.Fatalf("first Approve: %v", err)
	}
	_, err := svc.Approve(context.Background(), reqID.String())
	if !errors.Is(err, repository.ErrAlreadyApproved) {
		t.Fatalf("expected ErrAlreadyApproved, got %v", err)
	}
	if got := store.users[userID].Balance; got != 150 {
		t.Errorf("expected balance 150 after repeated approve, got %v", got)
	}
}

func TestApproveInvalidID(t *testing.T) {
	svc := NewRedemptionService(newMemRedemptionStore())
	if _, err := svc.Approve(context.Background(), "not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestApproveNotFound(t *testing.T) {
	svc := NewRedemptionService(newMemRedemptionStore())
	_, err := svc.Approve(context.Background(), uuid.NewString())
	if !errors.Is(err, repository.ErrRedemptionNotFound) {
		t.Errorf("expected ErrRedemptionNotFound, got %v", err)
	}
}

func TestApproveDanglingUser(t *testing.T) {
	store := newMemRedemptionStore()
	reqID := store.addRequest(store.addRedeem("GiftCard"), uuid.New(), 50)

	svc := NewRedemptionService(store)
	_, err := svc.Approve(context.Background(), reqID.String())
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTerminalStatesExcludeEachOther(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 100)
	redeemID := store.addRedeem("GiftCard")

	rejectedID := store.addRequest(redeemID, userID, 50)
	if _, err := NewRedemptionService(store).Reject(context.Background(), rejectedID.String(), "x"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	svc := NewRedemptionService(store)
	if _, err := svc.Approve(context.Background(), rejectedID.String()); !errors.Is(err, repository.ErrAlreadyRejected) {
		t.Errorf("approve after reject: expected ErrAlreadyRejected, got %v", err)
	}
	if got := store.users[userID].Balance; got != 100 {
		t.Errorf("balance must be untouched by a rejected request, got %v", got)
	}

	approvedID := store.addRequest(redeemID, userID, 25)
	if _, err := svc.Approve(context.Background(), approvedID.String()); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.Reject(context.Background(), approvedID.String(), "x"); !errors.Is(err, repository.ErrAlreadyApproved) {
		t.Errorf("reject after approve: expected ErrAlreadyApproved, got %v", err)
	}
}

func TestConcurrentApproveCreditsOnce(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 100)
	reqID := store.addRequest(store.addRedeem("GiftCard"), userID, 50)

	svc := NewRedemptionService(store)

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Approve(context.Background(), reqID.String())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else if !errors.Is(err, repository.ErrAlreadyApproved) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("expected exactly one successful approve, got %d", successes)
	}
	if got := store.users[userID].Balance; got != 150 {
		t.Errorf("expected balance reflecting one credit (150), got %v", got)
	}
}

func TestRejectDefaultsBlankReason(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 100)
	redeemID := store.addRedeem("GiftCard")
	svc := NewRedemptionService(store)

	for _, blank := range []string{"", "   "} {
		reqID := store.addRequest(redeemID, userID, 10)
		reason, err := svc.Reject(context.Background(), reqID.String(), blank)
		if err != nil {
			t.Fatalf("Reject(%q): %v", blank, err)
		}
		if reason != DefaultRejectReason {
			t.Errorf("Reject(%q): expected %q, got %q", blank, DefaultRejectReason, reason)
		}
		if got := store.requests[reqID].Reason; got != DefaultRejectReason {
			t.Errorf("stored reason: expected %q, got %q", DefaultRejectReason, got)
		}
	}
}

func TestRejectPersistsExactReason(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 100)
	reqID := store.addRequest(store.addRedeem("GiftCard"), userID, 10)

	svc := NewRedemptionService(store)
	reason, err := svc.Reject(context.Background(), reqID.String(), "damaged item")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if reason != "damaged item" {
		t.Errorf("expected reason %q, got %q", "damaged item", reason)
	}
	if got := store.requests[reqID].Status; got != model.StatusRejected {
		t.Errorf("expected stored status rejected, got %s", got)
	}
}

func TestRejectIsAtMostOnce(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 100)
	reqID := store.addRequest(store.addRedeem("GiftCard"), userID, 10)

	svc := NewRedemptionService(store)
	if _, err := svc.Reject(context.Background(), reqID.String(), "dup"); err != nil {
		t.Fatalf("first Reject: %v", err)
	}
	if _, err := svc.Reject(context.Background(), reqID.String(), "dup"); !errors.Is(err, repository.ErrAlreadyRejected) {
		t.Errorf("expected ErrAlreadyRejected, got %v", err)
	}
}

func TestListExcludesRedeemsWithoutRequests(t *testing.T) {
	store := newMemRedemptionStore()
	store.addRedeem("EmptyCard")
	userID := store.addUser("U1", "u1@example.com", 0)
	store.addRequest(store.addRedeem("GiftCard"), userID, 50)

	entries, err := NewRedemptionService(store).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].RedeemName != "GiftCard" {
		t.Errorf("expected entry for GiftCard, got %q", entries[0].RedeemName)
	}
	if entries[0].UserEmail != "u1@example.com" {
		t.Errorf("expected joined user email, got %q", entries[0].UserEmail)
	}
}

func TestSubmitValidation(t *testing.T) {
	store := newMemRedemptionStore()
	userID := store.addUser("U1", "u1@example.com", 0)
	redeemID := store.addRedeem("GiftCard")
	svc := NewRedemptionService(store)

	if _, err := svc.Submit(context.Background(), "bad-id", userID, 10, ""); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), redeemID.String(), userID, 0, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for zero amount, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), uuid.NewString(), userID, 10, ""); !errors.Is(err, repository.ErrRedeemNotFound) {
		t.Errorf("expected ErrRedeemNotFound, got %v", err)
	}

	red, err := svc.Submit(context.Background(), redeemID.String(), userID, 10, "receipt.png")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if red.Status != model.StatusPending {
		t.Errorf("expected submitted request to be pending, got %s", red.Status)
	}
}
