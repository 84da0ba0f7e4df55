package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, is_gold, phone_number FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.IsGold, &c.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, is_gold, phone_number FROM customers WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.IsGold, &c.PhoneNumber)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (id, name, is_gold, phone_number) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.IsGold, c.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET name = $1, is_gold = $2, phone_number = $3 WHERE id = $4`,
		c.Name, c.IsGold, c.PhoneNumber, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c := &model.Customer{}
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM customers WHERE id = $1 RETURNING id, name, is_gold, phone_number`,
		id,
	).Scan(&c.ID, &c.Name, &c.IsGold, &c.PhoneNumber)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}
	return c, nil
}
