package export

import (
	"testing"
	"time"

	"pasithulir/internal/utils"
	"pasithulir/pkg/types"
)

func TestWorkbookRowCounts(t *testing.T) {
	expiry := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

	donations := []*types.Donation{
		{ID: "d1", DonorName: "Saravana Bhavan", ContactNumber: "+91 98765 43210", FoodType: "cooked-meals", Address: "T. Nagar", ExpiryTime: expiry},
		{ID: "d2", DonorName: "Grand Wedding Hall", ContactNumber: "+91 98765 43211", FoodType: "mixed", Address: "Adyar", ExpiryTime: expiry, Finished: true},
	}
	requests := []*types.Request{
		{ID: "r1", OrganizationName: "Hope Shelter", ContactPerson: "Anitha", ContactNumber: "+91 90000 00001", UrgencyLevel: types.UrgencyHigh, Address: "Mylapore", PreferredTime: "morning"},
		{ID: "r2", OrganizationName: "Sunrise Orphanage", ContactPerson: "Kumar", ContactNumber: "+91 90000 00002", UrgencyLevel: types.UrgencyLow, Address: "Velachery", PreferredTime: "evening", Status: utils.StringPtr(types.RequestStatusApproved)},
		{ID: "r3", OrganizationName: "Elder Care Trust", ContactPerson: "Meena", ContactNumber: "+91 90000 00003", UrgencyLevel: types.UrgencyMedium, Address: "Anna Nagar", PreferredTime: "anytime", Finished: true},
	}

	f, err := Workbook(donations, requests)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	donationCells, err := f.GetRows(DonationSheet)
	if err != nil {
		t.Fatalf("read donation sheet: %v", err)
	}
	if got := len(donationCells) - 1; got != len(donations) {
		t.Fatalf("donation rows = %d, want %d", got, len(donations))
	}

	requestCells, err := f.GetRows(RequestSheet)
	if err != nil {
		t.Fatalf("read request sheet: %v", err)
	}
	if got := len(requestCells) - 1; got != len(requests) {
		t.Fatalf("request rows = %d, want %d", got, len(requests))
	}
}

func TestWorkbookHeadersAndStatus(t *testing.T) {
	expiry := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

	donations := []*types.Donation{
		{ID: "d1", DonorName: "Temple Kitchen", Email: utils.StringPtr("kitchen@example.org"), ContactNumber: "+91 98765 43213", FoodType: "rice", Address: "Mylapore", ExpiryTime: expiry},
	}
	requests := []*types.Request{
		{ID: "r1", OrganizationName: "Hope Shelter", ContactPerson: "Anitha", ContactNumber: "+91 90000 00001", UrgencyLevel: types.UrgencyHigh, Address: "Mylapore", PreferredTime: "morning"},
	}

	f, err := Workbook(donations, requests)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	rows, err := f.GetRows(DonationSheet)
	if err != nil {
		t.Fatalf("read donation sheet: %v", err)
	}

	wantHeader := []string{"Name", "Email", "Phone", "FoodType", "Address", "ExpiryTime", "Status"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("donation header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}

	if rows[1][6] != "Active" {
		t.Errorf("donation status = %q, want Active", rows[1][6])
	}
	if rows[1][5] != "2026-03-14 18:30" {
		t.Errorf("expiry = %q", rows[1][5])
	}

	reqRows, err := f.GetRows(RequestSheet)
	if err != nil {
		t.Fatalf("read request sheet: %v", err)
	}
	if reqRows[1][6] != "Pending" {
		t.Errorf("request status = %q, want Pending", reqRows[1][6])
	}
}

func TestRequestStatusDerivation(t *testing.T) {
	tests := []struct {
		name    string
		request *types.Request
		want    string
	}{
		{"pending", &types.Request{}, "Pending"},
		{"approved", &types.Request{Status: utils.StringPtr(types.RequestStatusApproved)}, "Approved"},
		{"finished overrides status", &types.Request{Status: utils.StringPtr(types.RequestStatusApproved), Finished: true}, "Finished"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := requestStatus(tt.request); got != tt.want {
				t.Errorf("requestStatus = %q, want %q", got, tt.want)
			}
		})
	}
}
