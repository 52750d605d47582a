package adoption

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/ports/auth"
)

// listPets godoc
// @Summary  List pets
// @Tags     pets
// @Produce  json
// @Param    status query string false "available | pending | adopted"
// @Param    filter query string false "expression, e.g. species == \"cat\""
// @Success  200 {array} petResponse
// @Router   /pets [get]
func (h *handlers) listPets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	list, err := h.store.SearchPets(q.Get("filter"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		status, ok := pets.ParseStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "status must be available, pending or adopted")
			return
		}
		filtered := list[:0]
		for _, p := range list {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}

	writeJSON(w, http.StatusOK, h.petResponses(list))
}

// getPet godoc
// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Param    petID path string true "pet id"
// @Success  200 {object} petResponse
// @Failure  404 {object} errorResponse
// @Router   /pets/{petID} [get]
func (h *handlers) getPet(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.PetByID(chi.URLParam(r, "petID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.petResponse(p))
}

// createPet godoc
// @Summary  Publish a pet (admin)
// @Tags     pets
// @Accept   json
// @Produce  json
// @Success  201 {object} petResponse
// @Failure  400 {object} errorResponse
// @Router   /pets [post]
func (h *handlers) createPet(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	var req petRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.store.AddPet(r.Context(), req.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.petResponse(p))
}

// updatePet godoc
// @Summary  Edit a pet (admin). status is driven by applications and cannot be patched.
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    petID path string true "pet id"
// @Success  200 {object} petResponse
// @Router   /pets/{petID} [patch]
func (h *handlers) updatePet(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	var req petPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	patch := req.patch()
	if patch.IsEmpty() {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	p, err := h.store.UpdatePet(r.Context(), chi.URLParam(r, "petID"), patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.petResponse(p))
}

// deletePet godoc
// @Summary  Delete a pet (admin). Its applications are kept.
// @Tags     pets
// @Param    petID path string true "pet id"
// @Success  204
// @Router   /pets/{petID} [delete]
func (h *handlers) deletePet(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	if err := h.store.DeletePet(r.Context(), chi.URLParam(r, "petID")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) markViewed(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	petID := chi.URLParam(r, "petID")
	if err := h.store.MarkPetViewed(r.Context(), petID); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
