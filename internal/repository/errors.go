package repository

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already registered")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRedeemNotFound     = errors.New("redeem not found")
	ErrRedemptionNotFound = errors.New("redemption not found")
	ErrAlreadyApproved    = errors.New("redemption already approved")
	ErrAlreadyRejected    = errors.New("redemption already rejected")
)
