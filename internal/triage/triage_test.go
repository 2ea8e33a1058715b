package triage

import (
	"testing"

	"pasithulir/internal/utils"
	"pasithulir/pkg/types"
)

func request(id, urgency string, approved, finished bool) *types.Request {
	r := &types.Request{ID: id, UrgencyLevel: urgency, Finished: finished}
	if approved {
		r.Status = utils.StringPtr(types.RequestStatusApproved)
	}
	return r
}

func ids(requests []*types.Request) []string {
	out := make([]string, 0, len(requests))
	for _, r := range requests {
		out = append(out, r.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []*types.Request, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func TestUrgencyRank(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{types.UrgencyHigh, 1},
		{types.UrgencyMedium, 2},
		{types.UrgencyLow, 3},
		{"", 4},
		{"high", 4}, // case-sensitive literals only
		{"Critical", 4},
	}

	for _, tt := range tests {
		if got := UrgencyRank(tt.level); got != tt.want {
			t.Errorf("UrgencyRank(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPartitionDonations(t *testing.T) {
	donations := []*types.Donation{
		{ID: "d1"},
		{ID: "d2", Finished: true},
		{ID: "d3"},
		{ID: "d4", Finished: true},
	}

	active, finished := PartitionDonations(donations)

	if len(active) != 2 || active[0].ID != "d1" || active[1].ID != "d3" {
		t.Fatalf("active = %v", active)
	}
	if len(finished) != 2 || finished[0].ID != "d2" || finished[1].ID != "d4" {
		t.Fatalf("finished = %v", finished)
	}
	if len(active)+len(finished) != len(donations) {
		t.Fatalf("partition dropped or duplicated donations")
	}
}

func TestPartitionRequestsBuckets(t *testing.T) {
	requests := []*types.Request{
		request("r1", types.UrgencyLow, false, false),
		request("r2", types.UrgencyHigh, false, false),
		request("r3", types.UrgencyMedium, true, false),
		request("r4", types.UrgencyHigh, true, true), // finished wins over status
		request("r5", types.UrgencyLow, false, true),
	}

	buckets := PartitionRequests(requests)

	assertIDs(t, buckets.Pending, "r2", "r1")
	assertIDs(t, buckets.Approved, "r3")
	assertIDs(t, buckets.Finished, "r4", "r5")

	// Completeness and disjointness over identifier sets.
	seen := make(map[string]int)
	for _, bucket := range [][]*types.Request{buckets.Pending, buckets.Approved, buckets.Finished} {
		for _, r := range bucket {
			seen[r.ID]++
		}
	}
	if len(seen) != len(requests) {
		t.Fatalf("expected %d distinct ids across buckets, got %d", len(requests), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("request %s appears in %d buckets", id, count)
		}
	}
}

func TestPartitionRequestsSortStability(t *testing.T) {
	requests := []*types.Request{
		request("r1", types.UrgencyMedium, false, false),
		request("r2", types.UrgencyHigh, false, false),
		request("r3", types.UrgencyMedium, false, false),
		request("r4", types.UrgencyHigh, false, false),
		request("r5", types.UrgencyLow, false, false),
	}

	buckets := PartitionRequests(requests)

	// Ties keep fetch order: r2 before r4, r1 before r3.
	assertIDs(t, buckets.Pending, "r2", "r4", "r1", "r3", "r5")

	for i := 1; i < len(buckets.Pending); i++ {
		prev := UrgencyRank(buckets.Pending[i-1].UrgencyLevel)
		cur := UrgencyRank(buckets.Pending[i].UrgencyLevel)
		if prev > cur {
			t.Fatalf("pending not ordered by urgency at index %d", i)
		}
	}
}

func TestPartitionRequestsUnknownUrgencySortsLast(t *testing.T) {
	requests := []*types.Request{
		request("r1", "", false, false),
		request("r2", "Whenever", false, false),
		request("r3", types.UrgencyLow, false, false),
		request("r4", types.UrgencyHigh, false, false),
	}

	buckets := PartitionRequests(requests)

	assertIDs(t, buckets.Pending, "r4", "r3", "r1", "r2")
}

// Mirrors the dashboard walkthrough: approve the Low request and it joins the
// approved view behind the Medium one.
func TestApproveReordersApprovedView(t *testing.T) {
	requests := []*types.Request{
		request("1", types.UrgencyLow, false, false),
		request("2", types.UrgencyHigh, false, false),
		request("3", types.UrgencyMedium, true, false),
	}

	buckets := PartitionRequests(requests)
	assertIDs(t, buckets.Pending, "2", "1")
	assertIDs(t, buckets.Approved, "3")

	requests[0].Status = utils.StringPtr(types.RequestStatusApproved)

	buckets = PartitionRequests(requests)
	assertIDs(t, buckets.Pending, "2")
	assertIDs(t, buckets.Approved, "3", "1")
}
