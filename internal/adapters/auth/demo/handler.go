package demo

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption/internal/ports/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userBody `json:"user"`
}

type userBody struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
}

// LoginHandler godoc
// @Summary  Demo login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Success  200 {object} loginResponse
// @Failure  400 {string} string "email and password are required"
// @Router   /auth/login [post]
func LoginHandler(tokens *Tokens) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		tok, c, err := tokens.Login(req.Email, req.Password)
		switch {
		case errors.Is(err, ErrBadCredential):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, ErrNotConfigured):
			http.Error(w, "login disabled", http.StatusServiceUnavailable)
			return
		case err != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResponse{
			Token: tok,
			User:  userBody{ID: c.UserID, Email: c.Email, Role: c.Role},
		})
	}
}
