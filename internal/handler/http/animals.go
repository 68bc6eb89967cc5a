package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/service"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/internal/utils"
	"github.com/tahiry-dev/wildlife-atlas/models"
)

// listCatalogAnimals serves GET /api/animals and GET /api/all-animals from
// the in-memory catalog snapshot. An empty snapshot is reported as 404, not
// as an empty success list.
func (h *Handler) listCatalogAnimals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	animals := h.catalog.Snapshot().All()
	if len(animals) == 0 {
		log.Warn().Msg("no animals in catalog snapshot")
		apiError(w, http.StatusNotFound, "No animals found")
		return
	}

	utils.WriteJSON(w, map[string]any{
		"items": animals,
		"total": len(animals),
	}, http.StatusOK)
}

// getCatalogAnimal serves GET /api/animals/{id} by linear search of the
// catalog snapshot.
func (h *Handler) getCatalogAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		apiError(w, http.StatusNotFound, "Animal not found")
		return
	}

	animal, ok := h.catalog.Snapshot().ByID(id)
	if !ok {
		apiError(w, http.StatusNotFound, "Animal not found")
		return
	}

	utils.WriteJSON(w, animal, http.StatusOK)
}

func (h *Handler) createAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AnimalCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	animal, err := h.services.Animals.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			apiError(w, http.StatusBadRequest, "Name is required")
			return
		}
		log.Err(err).Msg("unexpected error occurred during animal creation")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, map[string]any{
		"id":      animal.ID,
		"name":    animal.Name,
		"message": "Animal created successfully",
	}, http.StatusCreated)
}

func (h *Handler) updateAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apiError(w, http.StatusNotFound, "Animal not found")
		return
	}

	var req models.AnimalUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.services.Animals.Update(ctx, id, req); err != nil {
		if errors.Is(err, store.ErrAnimalNotFound) {
			apiError(w, http.StatusNotFound, "Animal not found")
			return
		}
		log.Err(err).Int64("id", id).Msg("unexpected error occurred during animal update")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Animal updated successfully"}, http.StatusOK)
}

func (h *Handler) deleteAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		apiError(w, http.StatusNotFound, "Animal not found")
		return
	}

	if err := h.services.Animals.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrAnimalNotFound) {
			apiError(w, http.StatusNotFound, "Animal not found")
			return
		}
		log.Err(err).Int64("id", id).Msg("unexpected error occurred during animal deletion")
		envelopeError(w, http.StatusInternalServerError, "")
		return
	}

	utils.WriteJSON(w, map[string]string{"message": "Animal deleted successfully"}, http.StatusOK)
}
