package types

import (
	"errors"
	"time"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrRequestNotFound  = errors.New("request not found")
)

// Donation is one submitted food donation. A donation is active until an
// administrator marks it finished; finished is never reverted.
type Donation struct {
	ID               string    `db:"id"`
	DonorName        string    `db:"donor_name"`
	OrganizationType string    `db:"organization_type"`
	ContactNumber    string    `db:"contact_number"`
	Email            *string   `db:"email"`
	Address          string    `db:"address"`
	FoodType         string    `db:"food_type"`
	Quantity         string    `db:"quantity"`
	ExpiryTime       time.Time `db:"expiry_time"`
	Description      *string   `db:"description"`
	Finished         bool      `db:"finished"`
	CreatedAt        time.Time `db:"created_at"`
}

// DonationForm carries the donate-food form fields before validation.
type DonationForm struct {
	DonorName        string `form:"donor_name" validate:"required"`
	OrganizationType string `form:"organization_type" validate:"omitempty,oneof=restaurant hotel marriage-hall event individual other"`
	ContactNumber    string `form:"contact_number" validate:"required"`
	Email            string `form:"email" validate:"omitempty,email"`
	Address          string `form:"address" validate:"required"`
	FoodType         string `form:"food_type" validate:"required,oneof=cooked-meals rice vegetables fruits snacks sweets mixed"`
	Quantity         string `form:"quantity" validate:"required"`
	ExpiryTime       string `form:"expiry_time" validate:"required"`
	Description      string `form:"description"`
}
