package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactbook/contactbook/internal/auth"
	"github.com/contactbook/contactbook/internal/handler/dto"
	"github.com/contactbook/contactbook/internal/model"
	"github.com/contactbook/contactbook/internal/service"
	"github.com/contactbook/contactbook/internal/validation"
)

// AuthService is the identity seam consumed by UserHandler.
// *service.AuthService satisfies it.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (string, *model.PublicUser, error)
	LogIn(ctx context.Context, email, password string) (string, *model.PublicUser, error)
	GetCurrentUser(ctx context.Context, userID int64) (*model.PublicUser, error)
}

// UserHandler handles HTTP requests for signup, login and the current
// user.
type UserHandler struct {
	svc    AuthService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc AuthService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// SignUp handles POST /user/signup.
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateSignup(req.Name, req.Email, req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := h.svc.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.logger.Info("user_signed_up", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.Envelope{
		Message: "User signup complete",
		Data:    dto.SessionData{AccessToken: token, User: user},
	})
}

// LogIn handles POST /user/login.
func (h *UserHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateLogin(req.Email, req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := h.svc.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			writeError(w, http.StatusBadRequest, "Email not registered")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.internalError(w, r, err)
		}
		return
	}

	h.logger.Info("user_logged_in", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.Envelope{
		Message: "Login successful",
		Data:    dto.SessionData{AccessToken: token, User: user},
	})
}

// Me handles GET /user. The auth middleware must have run.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	user, err := h.svc.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Envelope{
		Message: "User detail",
		Data:    user,
	})
}

func (h *UserHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("internal_error", "error", err, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, "An internal error occurred")
}
