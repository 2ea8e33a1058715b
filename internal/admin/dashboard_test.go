package admin

import (
	"context"
	"errors"
	"testing"

	"pasithulir/pkg/types"
)

type fakeStore struct {
	donations []*types.Donation
	requests  []*types.Request

	writeErr error

	approveCalls []string
	finishCalls  []string
}

func (f *fakeStore) Donations(ctx context.Context) ([]*types.Donation, error) {
	return f.donations, nil
}

func (f *fakeStore) Requests(ctx context.Context) ([]*types.Request, error) {
	return f.requests, nil
}

func (f *fakeStore) ApproveRequest(ctx context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.approveCalls = append(f.approveCalls, id)
	return nil
}

func (f *fakeStore) FinishRequest(ctx context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.finishCalls = append(f.finishCalls, id)
	return nil
}

func (f *fakeStore) FinishDonation(ctx context.Context, id string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.finishCalls = append(f.finishCalls, id)
	return nil
}

func newDashboard(t *testing.T, store *fakeStore) *Dashboard {
	t.Helper()
	d := NewDashboard(store, store)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return d
}

func TestApproveThenFinishBucketSequence(t *testing.T) {
	store := &fakeStore{
		requests: []*types.Request{
			{ID: "r1", UrgencyLevel: types.UrgencyHigh},
		},
	}
	d := newDashboard(t, store)

	buckets := d.PartitionedRequests()
	if len(buckets.Pending) != 1 || buckets.Pending[0].ID != "r1" {
		t.Fatalf("expected r1 pending, got %+v", buckets)
	}

	if err := d.ApproveRequest(context.Background(), "r1"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	buckets = d.PartitionedRequests()
	if len(buckets.Pending) != 0 {
		t.Fatalf("r1 still pending after approval")
	}
	if len(buckets.Approved) != 1 || buckets.Approved[0].ID != "r1" {
		t.Fatalf("expected r1 approved, got %+v", buckets)
	}

	if err := d.FinishRequest(context.Background(), "r1"); err != nil {
		t.Fatalf("finish: %v", err)
	}

	buckets = d.PartitionedRequests()
	if len(buckets.Pending) != 0 || len(buckets.Approved) != 0 {
		t.Fatalf("r1 re-appeared in a live bucket after finishing")
	}
	if len(buckets.Finished) != 1 || buckets.Finished[0].ID != "r1" {
		t.Fatalf("expected r1 finished, got %+v", buckets)
	}
}

func TestFinishDonationIdempotent(t *testing.T) {
	store := &fakeStore{
		donations: []*types.Donation{{ID: "d1"}},
	}
	d := newDashboard(t, store)

	for range 2 {
		if err := d.FinishDonation(context.Background(), "d1"); err != nil {
			t.Fatalf("finish: %v", err)
		}
	}

	if !d.Donations()[0].Finished {
		t.Fatal("donation not finished")
	}
	if len(store.finishCalls) != 2 {
		t.Fatalf("expected both writes to reach the store, got %d", len(store.finishCalls))
	}
}

func TestWriteFailureLeavesSnapshotUntouched(t *testing.T) {
	store := &fakeStore{
		donations: []*types.Donation{{ID: "d1"}},
		requests:  []*types.Request{{ID: "r1", UrgencyLevel: types.UrgencyLow}},
	}
	d := newDashboard(t, store)

	store.writeErr = errors.New("store unavailable")

	if err := d.ApproveRequest(context.Background(), "r1"); err == nil {
		t.Fatal("expected approve error")
	}
	if d.Requests()[0].Approved() {
		t.Fatal("request patched locally despite store failure")
	}

	if err := d.FinishDonation(context.Background(), "d1"); err == nil {
		t.Fatal("expected finish error")
	}
	if d.Donations()[0].Finished {
		t.Fatal("donation patched locally despite store failure")
	}
}

func TestUnknownIDSkipsStoreWrite(t *testing.T) {
	store := &fakeStore{}
	d := newDashboard(t, store)

	if err := d.ApproveRequest(context.Background(), "missing"); !errors.Is(err, types.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
	if err := d.FinishDonation(context.Background(), "missing"); !errors.Is(err, types.ErrDonationNotFound) {
		t.Fatalf("expected ErrDonationNotFound, got %v", err)
	}

	if len(store.approveCalls)+len(store.finishCalls) != 0 {
		t.Fatal("store written for unknown id")
	}
}

func TestFinishPendingRequestDirectly(t *testing.T) {
	store := &fakeStore{
		requests: []*types.Request{{ID: "r1", UrgencyLevel: types.UrgencyMedium}},
	}
	d := newDashboard(t, store)

	if err := d.FinishRequest(context.Background(), "r1"); err != nil {
		t.Fatalf("finish: %v", err)
	}

	buckets := d.PartitionedRequests()
	if len(buckets.Finished) != 1 {
		t.Fatal("pending request not finishable directly")
	}
}
