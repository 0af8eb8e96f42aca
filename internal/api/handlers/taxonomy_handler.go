package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rewear-app/backend/internal/api/types"
	"github.com/rewear-app/backend/internal/api/validators"
	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
)

// TaxonomyHandler serves the category and brand tags items reference.
type TaxonomyHandler struct {
	repo repository.TaxonomyRepository
}

func NewTaxonomyHandler(repo repository.TaxonomyRepository) *TaxonomyHandler {
	return &TaxonomyHandler{repo: repo}
}

func (h *TaxonomyHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: categories})
}

func (h *TaxonomyHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTaxonomyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}
	c := models.Category{Name: req.Name}
	if err := h.repo.CreateCategory(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: c})
}

func (h *TaxonomyHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.repo.ListBrands(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: brands})
}

func (h *TaxonomyHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req types.CreateTaxonomyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}
	b := models.Brand{Name: req.Name}
	if err := h.repo.CreateBrand(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: b})
}
