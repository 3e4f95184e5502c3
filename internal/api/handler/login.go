package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kiranshivaraju/shoppulse/internal/api/response"
	"github.com/kiranshivaraju/shoppulse/internal/auth"
)

// NewLoginHandler returns an http.HandlerFunc for POST /login.
//
// Any non-empty email/password pair is accepted: there is no credential
// store, and the issued token proves only that some client completed the
// login call. Callers must not treat it as verified identity.
func NewLoginHandler(jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}

		if req.Email == "" || req.Password == "" {
			response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}

		token, err := auth.GenerateToken(req.Email, jwtSecret)
		if err != nil {
			slog.Error("sign login token", "error", err)
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token")
			return
		}

		response.JSON(w, map[string]string{"token": token})
	}
}
