package adoption

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/ports/auth"
)

// submitApplication godoc
// @Summary  Submit an adoption application
// @Tags     applications
// @Accept   json
// @Produce  json
// @Success  201 {object} applicationResponse
// @Failure  400 {object} errorResponse "fields lists each invalid form field"
// @Failure  404 {object} errorResponse
// @Router   /applications [post]
func (h *handlers) submitApplication(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	var req applicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.store.SubmitApplication(r.Context(), applications.Input{
		PetID:     req.PetID,
		Applicant: req.applicant(),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.applicationResponse(app))
}

// listApplications godoc
// @Summary  List applications (admin)
// @Tags     applications
// @Produce  json
// @Param    status query string false "pending | approved | rejected"
// @Success  200 {array} applicationResponse
// @Router   /applications [get]
func (h *handlers) listApplications(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	var list []applications.Application
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, ok := applications.ParseStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "status must be pending, approved or rejected")
			return
		}
		list = h.store.ApplicationsByStatus(status)
	} else {
		list = h.store.Applications()
	}

	out := make([]applicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, h.applicationResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) getApplication(w http.ResponseWriter, r *http.Request, _ auth.Claims) {
	app, err := h.store.ApplicationByID(chi.URLParam(r, "applicationID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.applicationResponse(app))
}

// reviewApplication godoc
// @Summary  Approve or reject a pending application (admin)
// @Tags     applications
// @Produce  json
// @Param    applicationID path string true "application id"
// @Success  200 {object} applicationResponse
// @Failure  409 {object} errorResponse "application is not pending or pet already adopted"
// @Router   /applications/{applicationID}/approve [post]
// @Router   /applications/{applicationID}/reject [post]
func (h *handlers) reviewApplication(to applications.Status) func(http.ResponseWriter, *http.Request, auth.Claims) {
	return func(w http.ResponseWriter, r *http.Request, c auth.Claims) {
		app, err := h.store.SetApplicationStatus(r.Context(), chi.URLParam(r, "applicationID"), to)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		h.log.Info("application reviewed", map[string]any{
			"application_id": app.ID,
			"pet_id":         app.PetID,
			"status":         app.Status,
			"reviewer":       c.UserID,
		})
		writeJSON(w, http.StatusOK, h.applicationResponse(app))
	}
}
