package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pasithulir/internal/export"
	"pasithulir/pkg/types"

	"github.com/alexedwards/flow"
)

func (s *Service) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	data := &types.AdminPageData{
		BasePageData: types.BasePageData{Title: "Admin Dashboard"},
		Notice:       r.URL.Query().Get("notice"),
		Error:        r.URL.Query().Get("error"),
	}

	s.dashboardMu.Lock()
	err := s.dashboard.Refresh(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to refresh admin snapshot")
		// Keep rendering the prior snapshot with a retry notice instead of
		// dropping the whole page.
		data.Error = "Could not load the latest records. Showing the last known data; reload to retry."
	}

	active, finished := s.dashboard.PartitionedDonations()
	buckets := s.dashboard.PartitionedRequests()
	s.dashboardMu.Unlock()

	data.ActiveDonations = active
	data.FinishedDonations = finished
	data.PendingRequests = buckets.Pending
	data.ApprovedRequests = buckets.Approved
	data.FinishedRequests = buckets.Finished

	messages, err := s.contactRepo.LatestContactMessages(ctx, 10)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch recent contact messages")
	} else {
		data.RecentMessages = messages
	}

	if err := s.renderTemplate(w, r, "page.admin", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin dashboard")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := flow.Param(r.Context(), "id")

	s.runAdminAction(w, r, "Request approved", types.ErrRequestNotFound,
		func(ctx context.Context) error {
			return s.dashboard.ApproveRequest(ctx, requestID)
		})
}

func (s *Service) handleFinishRequest(w http.ResponseWriter, r *http.Request) {
	requestID := flow.Param(r.Context(), "id")

	s.runAdminAction(w, r, "Request marked as finished", types.ErrRequestNotFound,
		func(ctx context.Context) error {
			return s.dashboard.FinishRequest(ctx, requestID)
		})
}

func (s *Service) handleFinishDonation(w http.ResponseWriter, r *http.Request) {
	donationID := flow.Param(r.Context(), "id")

	s.runAdminAction(w, r, "Donation marked as finished", types.ErrDonationNotFound,
		func(ctx context.Context) error {
			return s.dashboard.FinishDonation(ctx, donationID)
		})
}

// runAdminAction executes one dispatcher mutation under the snapshot lock.
// A not-found result gets one refresh-and-retry, covering actions issued
// before this process ever loaded the dashboard.
func (s *Service) runAdminAction(w http.ResponseWriter, r *http.Request, notice string, notFound error, action func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	s.dashboardMu.Lock()
	err := action(ctx)
	if errors.Is(err, notFound) {
		if refreshErr := s.dashboard.Refresh(ctx); refreshErr == nil {
			err = action(ctx)
		}
	}
	s.dashboardMu.Unlock()

	if err != nil {
		s.logger.WithError(err).Error("admin action failed")
		s.redirectToAdmin(w, r, "error", "Action failed. The record was left unchanged; try again.")
		return
	}

	s.redirectToAdmin(w, r, "notice", notice)
}

func (s *Service) redirectToAdmin(w http.ResponseWriter, r *http.Request, key, msg string) {
	v := url.Values{}
	v.Set(key, msg)
	http.Redirect(w, r, "/admin?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s.dashboardMu.Lock()
	err := s.dashboard.Refresh(ctx)
	donations := s.dashboard.Donations()
	requests := s.dashboard.Requests()
	s.dashboardMu.Unlock()

	if err != nil {
		s.logger.WithError(err).Error("failed to fetch records for export")
		s.redirectToAdmin(w, r, "error", "Export failed: could not load records.")
		return
	}

	workbook, err := export.Workbook(donations, requests)
	if err != nil {
		s.logger.WithError(err).Error("failed to build export workbook")
		s.internalServerError(w)
		return
	}

	// Serialize fully before writing any response bytes so a failure never
	// leaves a truncated download that looks like success.
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		s.logger.WithError(err).Error("failed to serialize export workbook")
		s.internalServerError(w)
		return
	}

	if s.exportArchive.Enabled() {
		key, archiveErr := s.exportArchive.ArchiveWorkbook(ctx, buf.Bytes(), time.Now())
		if archiveErr != nil {
			s.logger.WithError(archiveErr).Warn("failed to archive export; download continues")
		} else {
			s.logger.WithField("key", key).Info("export archived")
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))

	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.WithError(err).Error("failed to write export response")
	}
}
