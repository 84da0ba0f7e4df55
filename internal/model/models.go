package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Balance      float64   `json:"balance"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Customer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IsGold      bool      `json:"isGold"`
	PhoneNumber string    `json:"phoneNumber"`
}

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Stock       int       `json:"stock"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       float64   `json:"price"`
	Ratings     float64   `json:"ratings"`
}

type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type Order struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	UserName    string      `json:"userName,omitempty"`
	UserEmail   string      `json:"userEmail,omitempty"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// RedemptionStatus is the lifecycle state of a redemption request.
// Requests start pending and move exactly once to approved or rejected.
type RedemptionStatus string

const (
	StatusPending  RedemptionStatus = "pending"
	StatusApproved RedemptionStatus = "approved"
	StatusRejected RedemptionStatus = "rejected"
)

// Redeem is a named redeemable entity users submit redemption requests against.
type Redeem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Redemption struct {
	ID        uuid.UUID        `json:"id"`
	RedeemID  uuid.UUID        `json:"redeemId"`
	UserID    uuid.UUID        `json:"userId"`
	Amount    float64          `json:"amount"`
	Image     string           `json:"image,omitempty"`
	Status    RedemptionStatus `json:"status"`
	Reason    string           `json:"reason,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// RedemptionEntry is one flattened row of the admin listing: a redemption
// request joined with its redeemable's name and the requesting user.
type RedemptionEntry struct {
	ID         uuid.UUID        `json:"id"`
	RedeemID   uuid.UUID        `json:"redeemId"`
	RedeemName string           `json:"redeemName"`
	UserID     uuid.UUID        `json:"userId"`
	UserName   string           `json:"userName"`
	UserEmail  string           `json:"userEmail"`
	Amount     float64          `json:"amount"`
	Image      string           `json:"image,omitempty"`
	Status     RedemptionStatus `json:"status"`
	Reason     string           `json:"reason,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CustomerRequest struct {
	Name        string `json:"name"`
	IsGold      bool   `json:"isGold"`
	PhoneNumber string `json:"phoneNumber"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type ProductRequest struct {
	Name        string  `json:"name"`
	CategoryID  string  `json:"categoryId"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Ratings     float64 `json:"ratings"`
}

type CreateOrderRequest struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
}

type SubmitRedemptionRequest struct {
	Amount float64 `json:"amount"`
	Image  string  `json:"image"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
