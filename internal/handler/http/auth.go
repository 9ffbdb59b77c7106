package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow/hrms-backend-go/internal/handler/http/response"
	authService "github.com/dayflow/hrms-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authService.Service
}

func NewAuthHandler(s *authService.Service) AuthHandler {
	return &AuthHandlerImpl{authService: s}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ChangePassword implements AuthHandler.
func (h *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := claimsFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), caller.UserID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}
