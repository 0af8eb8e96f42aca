package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rewear-app/backend/internal/api/types"
	"github.com/rewear-app/backend/internal/api/validators"
	"github.com/rewear-app/backend/internal/repository"
	"github.com/rewear-app/backend/internal/services"
)

type ItemsHandler struct {
	wardrobe services.WardrobeService
}

func NewItemsHandler(wardrobe services.WardrobeService) *ItemsHandler {
	return &ItemsHandler{wardrobe: wardrobe}
}

func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	filters := repository.ItemFilters{
		Lifecycle: r.URL.Query().Get("lifecycle"),
	}
	if cid, err := strconv.ParseUint(r.URL.Query().Get("category_id"), 10, 32); err == nil {
		filters.CategoryID = uint(cid)
	}
	items, err := h.wardrobe.ListItems(r.Context(), userID, &filters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Meta: &types.Meta{Total: int64(len(items))}})
}

func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	var req types.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}
	item, err := h.wardrobe.CreateItem(r.Context(), userID, &services.CreateItemInput{
		Name:       req.ItemName,
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
		Lifecycle:  req.Lifecycle,
		SizeLabel:  req.SizeLabel,
		Material:   req.Material,
		Color:      req.Color,
		SeasonHint: req.SeasonHint,
		Condition:  req.Condition,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: item})
}

func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := h.wardrobe.GetItem(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: item})
}

func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req types.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}
	item, err := h.wardrobe.UpdateItem(r.Context(), id, userID, &services.UpdateItemInput{
		Name:       req.ItemName,
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
		Lifecycle:  req.Lifecycle,
		SizeLabel:  req.SizeLabel,
		Material:   req.Material,
		Color:      req.Color,
		SeasonHint: req.SeasonHint,
		Condition:  req.Condition,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: item})
}

func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.wardrobe.DeleteItem(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

// AttachPurchase records the acquisition cost and provenance of an item.
func (h *ItemsHandler) AttachPurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req types.AttachPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}
	purchase, err := h.wardrobe.AttachPurchase(r.Context(), id, userID, &services.AttachPurchaseInput{
		SellerType: req.SellerType,
		PriceCents: req.PriceCents,
		Location:   req.Location,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: purchase})
}

// GetPurchase returns the acquisition record of an item, if one was attached.
func (h *ItemsHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	purchase, err := h.wardrobe.GetPurchase(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: purchase})
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
