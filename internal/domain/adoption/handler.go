package adoption

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/validation"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, s *Store, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	h := &handlers{store: s, log: log}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", h.listPets)
		pr.Post("/", h.admin(h.createPet))
		pr.Get("/{petID}", h.getPet)
		pr.Patch("/{petID}", h.admin(h.updatePet))
		pr.Delete("/{petID}", h.admin(h.deletePet))
		pr.Post("/{petID}/viewed", h.user(h.markViewed))
	})

	r.Route("/applications", func(ar chi.Router) {
		ar.Post("/", h.user(h.submitApplication))
		ar.Get("/", h.admin(h.listApplications))
		ar.Get("/{applicationID}", h.admin(h.getApplication))
		ar.Post("/{applicationID}/approve", h.admin(h.reviewApplication(applications.StatusApproved)))
		ar.Post("/{applicationID}/reject", h.admin(h.reviewApplication(applications.StatusRejected)))
	})

	r.Route("/me/saved", func(mr chi.Router) {
		mr.Get("/", h.user(h.listSaved))
		mr.Post("/{petID}/toggle", h.user(h.toggleSaved))
	})

	r.Route("/browse", func(br chi.Router) {
		br.Get("/", h.user(h.browseCurrent))
		br.Post("/reset", h.user(h.browseReset))
		br.Post("/{index}/pass", h.user(h.browsePass))
		br.Post("/{index}/save", h.user(h.browseSave))
	})

	r.Route("/admin", func(ar chi.Router) {
		ar.Get("/stats", h.admin(h.stats))
		ar.Post("/refresh", h.admin(h.refresh))
		ar.Post("/clear", h.admin(h.clear))
	})
}

type handlers struct {
	store *Store
	log   logger.Logger
}

// user exige cualquier usuario autenticado.
func (h *handlers) user(next func(http.ResponseWriter, *http.Request, auth.Claims)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r, claims)
	}
}

// admin exige rol admin.
func (h *handlers) admin(next func(http.ResponseWriter, *http.Request, auth.Claims)) http.HandlerFunc {
	return h.user(func(w http.ResponseWriter, r *http.Request, c auth.Claims) {
		if !c.IsAdmin() {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next(w, r, c)
	})
}

// fail traduce errores del store a status HTTP.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: validation.FieldsOf(err)})
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrStorageWrite), errors.Is(err, ErrStorageRead), errors.Is(err, ErrClosed):
		h.log.Error("storage unavailable", map[string]any{"path": r.URL.Path, "err": err})
		writeError(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		h.log.Error("unexpected error", map[string]any{"path": r.URL.Path, "err": err})
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *handlers) petResponse(p pets.Pet) petResponse {
	return toPetResponse(p, h.store.IsSaved(p.ID))
}

func (h *handlers) petResponses(list []pets.Pet) []petResponse {
	out := make([]petResponse, 0, len(list))
	for _, p := range list {
		out = append(out, h.petResponse(p))
	}
	return out
}

func (h *handlers) applicationResponse(a applications.Application) applicationResponse {
	var pet *petResponse
	if p, err := h.store.PetByID(a.PetID); err == nil {
		resp := h.petResponse(p)
		pet = &resp
	}
	return toApplicationResponse(a, pet)
}

func (h *handlers) browseResponse(st BrowseState) browseResponse {
	out := browseResponse{Index: st.Index, AllViewed: st.AllViewed}
	if st.Pet != nil {
		resp := h.petResponse(*st.Pet)
		out.Pet = &resp
	}
	return out
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func indexParam(w http.ResponseWriter, raw string) (int, bool) {
	if strings.TrimSpace(raw) == "" {
		return 0, true
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return 0, false
	}
	return i, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
