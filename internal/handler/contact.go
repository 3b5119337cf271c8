package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/contactbook/contactbook/internal/auth"
	"github.com/contactbook/contactbook/internal/handler/dto"
	"github.com/contactbook/contactbook/internal/model"
	"github.com/contactbook/contactbook/internal/service"
	"github.com/contactbook/contactbook/internal/validation"
)

// Listing query defaults mirror the request contract: a missing sort_by
// means newest first.
const defaultSortBy = "latest"

// ContactService is the contact seam consumed by ContactHandler.
// *service.ContactService satisfies it.
type ContactService interface {
	AddContact(ctx context.Context, input service.AddContactInput) (*model.PublicContact, error)
	ListContacts(ctx context.Context, input service.ListContactsInput) (*service.ListContactsResult, error)
}

// ContactHandler handles HTTP requests for contact operations.
type ContactHandler struct {
	svc    ContactService
	logger *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	var req dto.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.ValidateContact(req.Name, req.Phone, req.Email); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	contact, err := h.svc.AddContact(r.Context(), service.AddContactInput{
		OwnerID: userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Country: req.Country,
	})
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.logger.Info("contact_added", "contact_id", contact.ID, "user_id", userID)

	writeJSON(w, http.StatusOK, dto.Envelope{
		Message: "Contact added",
		Data:    contact,
	})
}

// List handles GET /contact.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	query := r.URL.Query()

	input := service.ListContactsInput{
		OwnerID: userID,
		Page:    intParam(query.Get("page"), 1),
		Limit:   intParam(query.Get("limit"), 10),
		SortBy:  query.Get("sort_by"),
		Name:    query.Get("name"),
		Email:   query.Get("email"),
		Phone:   query.Get("phone"),
	}
	if input.SortBy == "" {
		input.SortBy = defaultSortBy
	}

	result, err := h.svc.ListContacts(r.Context(), input)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Envelope{
		Message: "Contact list",
		Data: dto.ContactListData{
			List:    result.Contacts,
			HasNext: result.HasNext,
			HasPrev: result.HasPrev,
			Page:    result.Page,
			Pages:   result.Pages,
			PerPage: result.PerPage,
			Total:   result.Total,
		},
	})
}

// intParam parses a positive integer query parameter, falling back to
// def when the value is missing or unparsable.
func intParam(value string, def int) int {
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func (h *ContactHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("internal_error", "error", err, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, "An internal error occurred")
}
