package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/contactbook/contactbook/internal/metrics"
	"github.com/contactbook/contactbook/internal/model"
	"github.com/contactbook/contactbook/internal/repository"
)

// Listing defaults, applied when the caller supplies no usable values.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// ContactStore is the persistence seam for contacts. *repository.Repository
// satisfies it; tests substitute in-memory doubles.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *model.Contact) error
	ListContacts(ctx context.Context, q repository.ContactQuery) ([]*model.Contact, int64, error)
}

// ContactService handles contact business logic. Every operation is
// scoped to the owning user; contacts are never read across users.
type ContactService struct {
	contacts ContactStore
	metrics  metrics.Recorder
}

// NewContactService creates a new ContactService.
func NewContactService(contacts ContactStore, recorder metrics.Recorder) *ContactService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContactService{
		contacts: contacts,
		metrics:  recorder,
	}
}

// AddContactInput defines input for creating a contact.
type AddContactInput struct {
	OwnerID int64
	Name    string
	Phone   string
	Email   string
	Address string
	Country string
}

// AddContact creates a contact owned by input.OwnerID and returns its
// public view.
func (s *ContactService) AddContact(ctx context.Context, input AddContactInput) (*model.PublicContact, error) {
	contact := &model.Contact{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Country: input.Country,
		UserID:  input.OwnerID,
	}

	if err := s.contacts.CreateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.metrics.IncContactCreated()
	return contact.PublicView(), nil
}

// ListContactsInput defines one listing request. Page is 1-based. The
// filters are case-insensitive substring matches combined with AND;
// blank filters are ignored.
type ListContactsInput struct {
	OwnerID int64
	Page    int
	Limit   int
	SortBy  string
	Name    string
	Email   string
	Phone   string
}

// ListContactsResult is one page of contacts plus pagination metadata.
type ListContactsResult struct {
	Contacts []*model.PublicContact
	Page     int
	Pages    int
	PerPage  int
	Total    int64
	HasNext  bool
	HasPrev  bool
}

// ListContacts runs the listing pipeline: scope to owner, filter, sort,
// paginate, and project to public views. Pages past the end return an
// empty slice, not an error.
func (s *ContactService) ListContacts(ctx context.Context, input ListContactsInput) (*ListContactsResult, error) {
	start := time.Now()

	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	query := repository.ContactQuery{
		OwnerID: input.OwnerID,
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		SortBy:  repository.SortOrder(input.SortBy),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	contacts, total, err := s.contacts.ListContacts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	views := make([]*model.PublicContact, len(contacts))
	for i, contact := range contacts {
		views[i] = contact.PublicView()
	}

	s.metrics.IncContactListQuery()
	s.metrics.ObserveContactListDuration(time.Since(start))

	return &ListContactsResult{
		Contacts: views,
		Page:     page,
		Pages:    pages,
		PerPage:  limit,
		Total:    total,
		HasNext:  page < pages,
		HasPrev:  page > 1,
	}, nil
}
