package types

import "time"

// Urgency levels recognized by triage. Anything else ranks after Low.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// RequestStatusApproved is the only meaningful status value; absence or any
// other value means the request is still pending.
const RequestStatusApproved = "Approved"

// Request is one submitted food request. Its lifecycle bucket (pending,
// approved, finished) is computed from Status and Finished, never stored.
type Request struct {
	ID                  string    `db:"id"`
	OrganizationName    string    `db:"organization_name"`
	OrganizationType    string    `db:"organization_type"`
	ContactPerson       string    `db:"contact_person"`
	ContactNumber       string    `db:"contact_number"`
	Email               *string   `db:"email"`
	Address             string    `db:"address"`
	PeopleCount         int       `db:"people_count"`
	UrgencyLevel        string    `db:"urgency_level"`
	PreferredTime       string    `db:"preferred_time"`
	DietaryRestrictions *string   `db:"dietary_restrictions"`
	Description         *string   `db:"description"`
	Status              *string   `db:"status"`
	Finished            bool      `db:"finished"`
	CreatedAt           time.Time `db:"created_at"`
}

// Approved reports whether the request has been approved by an administrator.
func (r *Request) Approved() bool {
	return r.Status != nil && *r.Status == RequestStatusApproved
}

// RequestForm carries the request-food form fields before validation.
type RequestForm struct {
	OrganizationName    string `form:"organization_name" validate:"required"`
	OrganizationType    string `form:"organization_type" validate:"required,oneof=orphanage shelter ngo elderly-care school community family"`
	ContactPerson       string `form:"contact_person" validate:"required"`
	ContactNumber       string `form:"contact_number" validate:"required"`
	Email               string `form:"email" validate:"omitempty,email"`
	Address             string `form:"address" validate:"required"`
	PeopleCount         int    `form:"people_count" validate:"required,min=1"`
	UrgencyLevel        string `form:"urgency_level" validate:"required,oneof=High Medium Low"`
	PreferredTime       string `form:"preferred_time"`
	DietaryRestrictions string `form:"dietary_restrictions"`
	Description         string `form:"description"`
}
