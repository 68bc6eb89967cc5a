package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tahiry-dev/wildlife-atlas/internal/catalog"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/service"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/internal/utils"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// listRegions serves GET /api/regions: a paginated listing of the
// admin-managed regions table, not the fixed catalog buckets.
func (h *Handler) listRegions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	result, err := h.services.Regions.List(ctx, page, perPage)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during region listing")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// getRegionBucket serves GET /api/regions/{id}: one of the five fixed
// catalog buckets together with the dataset records assigned to it.
func (h *Handler) getRegionBucket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		apiError(w, http.StatusNotFound, "Region not found")
		return
	}

	bucket, ok := catalog.Bucket(id)
	if !ok {
		apiError(w, http.StatusNotFound, "Region not found")
		return
	}

	animals := h.catalog.Snapshot().ByBucket(id)
	if animals == nil {
		animals = []models.CatalogAnimal{}
	}

	utils.WriteJSON(w, map[string]any{
		"id":          bucket.ID,
		"name":        bucket.Name,
		"description": bucket.Description,
		"animals":     animals,
	}, http.StatusOK)
}

func (h *Handler) createRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	region, err := h.services.Regions.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			apiError(w, http.StatusBadRequest, "Name is required")
			return
		}
		log.Err(err).Msg("unexpected error occurred during region creation")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, map[string]any{
		"id":      region.ID,
		"name":    region.Name,
		"message": "Region created successfully",
	}, http.StatusCreated)
}

func (h *Handler) updateRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apiError(w, http.StatusNotFound, "Region not found")
		return
	}

	var req models.RegionUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.services.Regions.Update(ctx, id, req); err != nil {
		if errors.Is(err, store.ErrRegionNotFound) {
			apiError(w, http.StatusNotFound, "Region not found")
			return
		}
		log.Err(err).Int64("id", id).Msg("unexpected error occurred during region update")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Region updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apiError(w, http.StatusNotFound, "Region not found")
		return
	}

	if err := h.services.Regions.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrRegionNotFound) {
			apiError(w, http.StatusNotFound, "Region not found")
			return
		}
		log.Err(err).Int64("id", id).Msg("unexpected error occurred during region deletion")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Region deleted successfully"}, http.StatusOK)
}
