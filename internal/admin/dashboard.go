// Package admin holds the dashboard working set: an in-memory snapshot of the
// donation and request collections plus the triage actions run against it.
package admin

import (
	"context"

	"pasithulir/internal/triage"
	"pasithulir/pkg/types"
)

type DonationStore interface {
	Donations(ctx context.Context) ([]*types.Donation, error)
	FinishDonation(ctx context.Context, donationID string) error
}

type RequestStore interface {
	Requests(ctx context.Context) ([]*types.Request, error)
	ApproveRequest(ctx context.Context, requestID string) error
	FinishRequest(ctx context.Context, requestID string) error
}

// Dashboard owns transient copies of both collections. Mutations write to the
// store first and patch the local copy only after the store acknowledges, so a
// failed write never leaves the view ahead of the store.
type Dashboard struct {
	donationStore DonationStore
	requestStore  RequestStore

	donations []*types.Donation
	requests  []*types.Request
}

func NewDashboard(donationStore DonationStore, requestStore RequestStore) *Dashboard {
	return &Dashboard{
		donationStore: donationStore,
		requestStore:  requestStore,
		donations:     make([]*types.Donation, 0),
		requests:      make([]*types.Request, 0),
	}
}

// Refresh re-fetches both collections. On any fetch error the prior snapshot
// is kept so the caller can retry without losing the current view.
func (d *Dashboard) Refresh(ctx context.Context) error {
	donations, err := d.donationStore.Donations(ctx)
	if err != nil {
		return err
	}

	requests, err := d.requestStore.Requests(ctx)
	if err != nil {
		return err
	}

	d.donations = donations
	d.requests = requests

	return nil
}

func (d *Dashboard) Donations() []*types.Donation {
	return d.donations
}

func (d *Dashboard) Requests() []*types.Request {
	return d.requests
}

func (d *Dashboard) PartitionedDonations() (active, finished []*types.Donation) {
	return triage.PartitionDonations(d.donations)
}

func (d *Dashboard) PartitionedRequests() triage.RequestBuckets {
	return triage.PartitionRequests(d.requests)
}

// ApproveRequest sets status to Approved in the store, then mirrors the change
// locally. Approving an already approved request is a harmless repeat write.
func (d *Dashboard) ApproveRequest(ctx context.Context, requestID string) error {
	request := d.findRequest(requestID)
	if request == nil {
		return types.ErrRequestNotFound
	}

	if err := d.requestStore.ApproveRequest(ctx, requestID); err != nil {
		return err
	}

	status := types.RequestStatusApproved
	request.Status = &status

	return nil
}

// FinishRequest marks a request finished. Works from either the pending or
// approved bucket; finished is never reverted.
func (d *Dashboard) FinishRequest(ctx context.Context, requestID string) error {
	request := d.findRequest(requestID)
	if request == nil {
		return types.ErrRequestNotFound
	}

	if err := d.requestStore.FinishRequest(ctx, requestID); err != nil {
		return err
	}

	request.Finished = true

	return nil
}

func (d *Dashboard) FinishDonation(ctx context.Context, donationID string) error {
	donation := d.findDonation(donationID)
	if donation == nil {
		return types.ErrDonationNotFound
	}

	if err := d.donationStore.FinishDonation(ctx, donationID); err != nil {
		return err
	}

	donation.Finished = true

	return nil
}

func (d *Dashboard) findRequest(requestID string) *types.Request {
	for _, r := range d.requests {
		if r.ID == requestID {
			return r
		}
	}
	return nil
}

func (d *Dashboard) findDonation(donationID string) *types.Donation {
	for _, donation := range d.donations {
		if donation.ID == donationID {
			return donation
		}
	}
	return nil
}
