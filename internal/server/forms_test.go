package server

import (
	"net/url"
	"testing"

	"pasithulir/pkg/types"
)

func TestFieldErrorsKeyedByFormTag(t *testing.T) {
	form := types.RequestForm{
		OrganizationType: "casino",
		Email:            "not-an-email",
		UrgencyLevel:     "High",
		PeopleCount:      1,
	}

	errs := fieldErrors(validate.Struct(form))

	for _, field := range []string{"organization_name", "contact_person", "contact_number", "address"} {
		if errs[field] != "This field is required." {
			t.Errorf("expected required error for %s, got %q", field, errs[field])
		}
	}

	if errs["organization_type"] != "Choose one of the listed options." {
		t.Errorf("unexpected organization_type error: %q", errs["organization_type"])
	}

	if errs["email"] != "Enter a valid email address." {
		t.Errorf("unexpected email error: %q", errs["email"])
	}

	if _, ok := errs["urgency_level"]; ok {
		t.Error("urgency_level High should be valid")
	}
}

func TestFieldErrorsPeopleCountMinimum(t *testing.T) {
	form := types.RequestForm{
		OrganizationName: "Hope Shelter",
		OrganizationType: "shelter",
		ContactPerson:    "Coordinator",
		ContactNumber:    "+91 90000 12345",
		Address:          "45 Beach Road, Chennai",
		UrgencyLevel:     "Low",
	}

	// Zero fails required; only a negative count reaches the min check.
	form.PeopleCount = 0
	errs := fieldErrors(validate.Struct(form))
	if errs["people_count"] != "This field is required." {
		t.Errorf("unexpected error for zero people_count: %q", errs["people_count"])
	}

	form.PeopleCount = -3
	errs = fieldErrors(validate.Struct(form))
	if len(errs) != 1 {
		t.Fatalf("expected only the people_count error, got %v", errs)
	}
	if errs["people_count"] != "Enter a value of at least 1." {
		t.Errorf("unexpected error for negative people_count: %q", errs["people_count"])
	}
}

func TestFieldErrorsValidFormIsEmpty(t *testing.T) {
	form := types.DonationForm{
		DonorName:        "Saravana Bhavan",
		OrganizationType: "restaurant",
		ContactNumber:    "+91 98765 43210",
		Address:          "12 Main Street, Chennai",
		FoodType:         "cooked-meals",
		Quantity:         "50 people",
		ExpiryTime:       "2026-08-28T18:30",
	}

	if errs := fieldErrors(validate.Struct(form)); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestDecodeDonationForm(t *testing.T) {
	values := url.Values{
		"donor_name":        {"Saravana Bhavan"},
		"organization_type": {"restaurant"},
		"contact_number":    {"+91 98765 43210"},
		"address":           {"12 Main Street, Chennai"},
		"food_type":         {"rice"},
		"quantity":          {"25 people"},
		"expiry_time":       {"2026-08-28T18:30"},
	}

	var form types.DonationForm
	if err := decoder.Decode(&form, values); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if form.DonorName != "Saravana Bhavan" || form.FoodType != "rice" {
		t.Errorf("decoded form mismatch: %+v", form)
	}
}
