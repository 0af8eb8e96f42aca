package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/rewear-app/backend/internal/api/middleware"
	"github.com/rewear-app/backend/internal/api/types"
	"github.com/rewear-app/backend/internal/services"
)

// ProfileHandler serves the profile view plus the derived statistics,
// recent-orders, and recent-listings summaries.
type ProfileHandler struct {
	profiles services.ProfileService
	stats    services.StatsService
}

func NewProfileHandler(profiles services.ProfileService, stats services.StatsService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, stats: stats}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	view, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: view})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	view, err := h.profiles.Update(r.Context(), userID, &services.UpdateProfileInput{
		FullName:    req.FullName,
		City:        req.City,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: view})
}

func (h *ProfileHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	stats, err := h.stats.ComputeStats(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: stats})
}

func (h *ProfileHandler) Orders(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	orders, err := h.stats.RecentOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []services.OrderView{}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: orders})
}

func (h *ProfileHandler) Listings(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	listings, err := h.stats.RecentListings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if listings == nil {
		listings = []services.ListingView{}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: listings})
}

// callerID parses the authenticated user id out of the request context; the
// auth middleware guarantees it is present on protected routes.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		writeErrorStr(w, http.StatusUnauthorized, "missing or invalid credentials")
		return uuid.Nil, false
	}
	return id, true
}
