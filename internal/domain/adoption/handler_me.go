package adoption

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/ports/auth"
)

// ----- favoritos -----

func (h *handlers) listSaved(w http.ResponseWriter, _ *http.Request, _ auth.Claims) {
	writeJSON(w, http.StatusOK, h.petResponses(h.store.SavedPets()))
}

// toggleSaved godoc
// @Summary  Save or unsave a pet
// @Tags     me
// @Produce  json
// @Param    petID path string true "pet id"
// @Success  200 {object} toggleSavedResponse
// @Router   /me/saved/{petID}/toggle [post]
func (h *handlers) toggleSaved(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	petID := chi.URLParam(r, "petID")
	saved, err := h.store.ToggleSavedPet(r.Context(), petID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleSavedResponse{PetID: petID, Saved: saved})
}

// ----- browse -----

// browseCurrent godoc
// @Summary  Pet currently shown in the browse flow
// @Tags     browse
// @Produce  json
// @Param    index query int false "current index"
// @Success  200 {object} browseResponse
// @Router   /browse [get]
func (h *handlers) browseCurrent(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	i, ok := indexParam(w, r.URL.Query().Get("index"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.browseResponse(h.store.Current(i)))
}

func (h *handlers) browsePass(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	h.browseStep(w, r, h.store.Pass)
}

func (h *handlers) browseSave(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	h.browseStep(w, r, h.store.Save)
}

func (h *handlers) browseStep(w http.ResponseWriter, r *http.Request, step func(ctx context.Context, index int) (BrowseState, error)) {
	i, ok := indexParam(w, chi.URLParam(r, "index"))
	if !ok {
		return
	}
	st, err := step(r.Context(), i)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.browseResponse(st))
}

func (h *handlers) browseReset(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	if err := h.store.ResetViewedPets(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.browseResponse(h.store.Current(0)))
}

// ----- admin -----

// stats godoc
// @Summary  Dashboard counters (admin)
// @Tags     admin
// @Produce  json
// @Success  200 {object} Stats
// @Router   /admin/stats [get]
func (h *handlers) stats(w http.ResponseWriter, _ *http.Request, _ auth.Claims) {
	writeJSON(w, http.StatusOK, h.store.Stats())
}

// refresh recarga desde el backend. Si alguna key cayó a default se informa en "error".
func (h *handlers) refresh(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	if err := h.store.Refresh(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	resp := refreshResponse{Stats: h.store.Stats()}
	if err := h.store.Err(); err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) clear(w http.ResponseWriter, r *http.Request, c auth.Claims) {
	if err := h.store.ClearAllData(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log.Warn("all data cleared", map[string]any{"by": c.UserID})
	writeJSON(w, http.StatusOK, h.store.Stats())
}
