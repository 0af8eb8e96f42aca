package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rewear-app/backend/internal/api/types"
	"github.com/rewear-app/backend/internal/api/validators"
	"github.com/rewear-app/backend/internal/services"
)

type ListingsHandler struct {
	market services.MarketService
}

func NewListingsHandler(market services.MarketService) *ListingsHandler {
	return &ListingsHandler{market: market}
}

// Browse returns every open listing, all sellers included.
func (h *ListingsHandler) Browse(w http.ResponseWriter, r *http.Request) {
	listings, err := h.market.BrowseListings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: listings, Meta: &types.Meta{Total: int64(len(listings))}})
}

func (h *ListingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req types.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}
	listing, err := h.market.CreateListing(r.Context(), userID, &services.CreateListingInput{
		ItemID:         req.ItemID,
		Title:          req.Title,
		Description:    req.Description,
		ListPriceCents: req.ListPriceCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: listing})
}

// Get returns one listing and counts the view.
func (h *ListingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	listing, err := h.market.GetListing(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: listing})
}

// Checkout buys the listing for the authenticated profile.
func (h *ListingsHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	sale, err := h.market.Checkout(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: sale})
}
