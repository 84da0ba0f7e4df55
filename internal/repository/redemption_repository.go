package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
)

type RedemptionRepository struct {
	db *sql.DB
}

func NewRedemptionRepository(db *sql.DB) *RedemptionRepository {
	return &RedemptionRepository{db: db}
}

// Approve opens a DB transaction, locks the redemption row, verifies it is
// still pending, locks and credits the user's balance, and flips the status.
// The redemption row lock serializes concurrent approvals of the same
// request; the loser re-reads a terminal status and fails the guard. The
// user row lock serializes concurrent credits for the same user, so no
// credit is lost when two of their redemptions are approved at once.
func (r *RedemptionRepository) Approve(ctx context.Context, id uuid.UUID) (float64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		userID uuid.UUID
		amount float64
		status model.RedemptionStatus
	)
	err = tx.QueryRowContext(ctx,
		`SELECT user_id, amount, status FROM redemptions WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&userID, &amount, &status)
	if err == sql.ErrNoRows {
		return 0, ErrRedemptionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock redemption: %w", err)
	}

	switch status {
	case model.StatusApproved:
		return 0, ErrAlreadyApproved
	case model.StatusRejected:
		return 0, ErrAlreadyRejected
	}

	var newBalance float64
	err = tx.QueryRowContext(ctx,
		`UPDATE users SET balance = balance + $1, updated_at = NOW() WHERE id = $2 RETURNING balance`,
		amount, userID,
	).Scan(&newBalance)
	if err == sql.ErrNoRows {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to credit balance: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE redemptions SET status = $1, reason = NULL WHERE id = $2`,
		model.StatusApproved, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update redemption status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return newBalance, nil
}

// Reject locks the redemption row, verifies it has not already reached a
// terminal state, and persists the rejected status with the given reason.
// No balance mutation happens on this path.
func (r *RedemptionRepository) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var status model.RedemptionStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM redemptions WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrRedemptionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock redemption: %w", err)
	}

	switch status {
	case model.StatusRejected:
		return ErrAlreadyRejected
	case model.StatusApproved:
		return ErrAlreadyApproved
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE redemptions SET status = $1, reason = $2 WHERE id = $3`,
		model.StatusRejected, reason, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update redemption status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListEntries returns the flattened admin view: every redemption request
// joined with its redeemable's name and the requesting user. Redeemables
// with no requests contribute no rows. Users are joined loosely so a
// dangling user reference still shows the request itself.
func (r *RedemptionRepository) ListEntries(ctx context.Context) ([]model.RedemptionEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rd.id, rm.id, rm.name, rd.user_id,
		       COALESCE(u.name, ''), COALESCE(u.email, ''),
		       rd.amount, COALESCE(rd.image, ''), rd.status,
		       COALESCE(rd.reason, ''), rd.created_at
		FROM redemptions rd
		JOIN redeems rm ON rm.id = rd.redeem_id
		LEFT JOIN users u ON u.id = rd.user_id
		ORDER BY rd.created_at, rd.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query redemption entries: %w", err)
	}
	defer rows.Close()

	entries := []model.RedemptionEntry{}
	for rows.Next() {
		var e model.RedemptionEntry
		err := rows.Scan(&e.ID, &e.RedeemID, &e.RedeemName, &e.UserID,
			&e.UserName, &e.UserEmail, &e.Amount, &e.Image, &e.Status,
			&e.Reason, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan redemption entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read redemption entries: %w", err)
	}
	return entries, nil
}

// Create inserts a new pending redemption request for an existing redeemable.
func (r *RedemptionRepository) Create(ctx context.Context, red *model.Redemption) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM redeems WHERE id = $1)`,
		red.RedeemID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check redeem: %w", err)
	}
	if !exists {
		return ErrRedeemNotFound
	}

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO redemptions (id, redeem_id, user_id, amount, image, status)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING created_at`,
		red.ID, red.RedeemID, red.UserID, red.Amount, red.Image, red.Status,
	).Scan(&red.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert redemption: %w", err)
	}
	return nil
}

func (r *RedemptionRepository) ListRedeems(ctx context.Context) ([]model.Redeem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM redeems ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query redeems: %w", err)
	}
	defer rows.Close()

	redeems := []model.Redeem{}
	for rows.Next() {
		var rm model.Redeem
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, fmt.Errorf("failed to scan redeem: %w", err)
		}
		redeems = append(redeems, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read redeems: %w", err)
	}
	return redeems, nil
}

func (r *RedemptionRepository) CreateRedeem(ctx context.Context, rm *model.Redeem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO redeems (id, name) VALUES ($1, $2)`,
		rm.ID, rm.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert redeem: %w", err)
	}
	return nil
}
