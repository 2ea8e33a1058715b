package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pasithulir/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	data := &types.HomePageData{
		BasePageData: types.BasePageData{Title: "Pasi Thulir - Share Food, Share Hope"},
		Notice:       r.URL.Query().Get("notice"),
		Error:        r.URL.Query().Get("error"),
		Stats:        getStats(),
		Steps:        getSteps(),
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleAbout(w http.ResponseWriter, r *http.Request) {
	data := &types.AboutPageData{
		BasePageData: types.BasePageData{Title: "About Pasi Thulir"},
	}

	if err := s.renderTemplate(w, r, "page.about", data); err != nil {
		s.logger.WithError(err).Error("failed to render about page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleLiveBoard(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("q"))
	urgency := strings.TrimSpace(r.URL.Query().Get("urgency"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.boardRepo.BoardItems(ctx, search, urgency)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch board items")
		s.internalServerError(w)
		return
	}

	data := &types.LiveBoardPageData{
		BasePageData: types.BasePageData{Title: "Live Food Board"},
		Items:        items,
		Search:       search,
		Urgency:      urgency,
	}

	if err := s.renderTemplate(w, r, "page.live-board", data); err != nil {
		s.logger.WithError(err).Error("failed to render live board page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func getStats() types.StatsData {
	return types.StatsData{
		MealsDelivered:   1000,
		ActiveDonors:     50,
		LocationsCovered: 25,
		OrganizationsFed: 30,
	}
}

func getSteps() []types.StepData {
	return []types.StepData{
		{
			Number:      1,
			Title:       "Share your surplus food",
			Description: "Restaurants, halls, and households post what they have left over and when it must be picked up.",
		},
		{
			Number:      2,
			Title:       "Organizations request meals",
			Description: "Orphanages, shelters, and community groups tell us how many people they need to feed and how urgently.",
		},
		{
			Number:      3,
			Title:       "We connect both sides",
			Description: "Our team triages requests by urgency and coordinates pickup before the food expires.",
		},
	}
}
