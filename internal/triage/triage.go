// Package triage classifies donation and request records into their lifecycle
// buckets for the admin dashboard. All functions are pure: they take freshly
// fetched snapshots and return ordered views without touching the store.
package triage

import (
	"sort"

	"pasithulir/pkg/types"
)

const unknownUrgencyRank = 4

var urgencyRanks = map[string]int{
	types.UrgencyHigh:   1,
	types.UrgencyMedium: 2,
	types.UrgencyLow:    3,
}

// UrgencyRank maps an urgency level to its sort rank. High sorts first.
// Unrecognized or missing levels rank after Low rather than failing the sort.
func UrgencyRank(level string) int {
	if rank, ok := urgencyRanks[level]; ok {
		return rank
	}
	return unknownUrgencyRank
}

// PartitionDonations splits donations into active and finished, preserving
// fetch order within each slice. Every donation lands in exactly one.
func PartitionDonations(donations []*types.Donation) (active, finished []*types.Donation) {
	active = make([]*types.Donation, 0, len(donations))
	finished = make([]*types.Donation, 0)

	for _, d := range donations {
		if d.Finished {
			finished = append(finished, d)
			continue
		}
		active = append(active, d)
	}

	return active, finished
}

// RequestBuckets holds the three mutually exclusive request views. Pending and
// Approved are ordered by urgency rank; Finished keeps fetch order.
type RequestBuckets struct {
	Pending  []*types.Request
	Approved []*types.Request
	Finished []*types.Request
}

// PartitionRequests buckets requests by lifecycle. A finished request is
// finished regardless of status; otherwise status decides pending vs approved.
func PartitionRequests(requests []*types.Request) RequestBuckets {
	buckets := RequestBuckets{
		Pending:  make([]*types.Request, 0, len(requests)),
		Approved: make([]*types.Request, 0),
		Finished: make([]*types.Request, 0),
	}

	for _, r := range requests {
		switch {
		case r.Finished:
			buckets.Finished = append(buckets.Finished, r)
		case r.Approved():
			buckets.Approved = append(buckets.Approved, r)
		default:
			buckets.Pending = append(buckets.Pending, r)
		}
	}

	sortByUrgency(buckets.Pending)
	sortByUrgency(buckets.Approved)

	return buckets
}

// sortByUrgency orders requests High before Medium before Low. The sort is
// stable so ties keep their fetch order.
func sortByUrgency(requests []*types.Request) {
	sort.SliceStable(requests, func(i, j int) bool {
		return UrgencyRank(requests[i].UrgencyLevel) < UrgencyRank(requests[j].UrgencyLevel)
	})
}
