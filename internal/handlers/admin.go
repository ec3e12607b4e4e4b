package handlers

import (
	"encoding/json"
	"net/http"
)

// VerifyRequest represents the request to verify the admin password
type VerifyRequest struct {
	Password string `json:"password"`
}

// VerifyResponse represents the response after a successful verify
type VerifyResponse struct {
	Success bool `json:"success"`
}

// AdminHandler gates admin actions behind a single shared secret. Verify is
// the whole authorization model: no sessions, no tokens. The admin page
// keeps its own "authenticated" flag after a successful verify, and the
// other endpoints trust it — matching the site this backend serves.
type AdminHandler struct {
	Password string
}

func NewAdminHandler(password string) *AdminHandler {
	return &AdminHandler{Password: password}
}

// Verify handles POST /api/admin/verify
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return
	}

	// An unset password is a server misconfiguration, not a wrong guess.
	if h.Password == "" {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Admin password not configured"})
		return
	}

	if req.Password != h.Password {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid password"})
		return
	}

	json.NewEncoder(w).Encode(VerifyResponse{Success: true})
}
