package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/contactbook/contactbook/internal/model"
)

// SortOrder selects the ordering applied when listing contacts.
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
	SortNameAZ SortOrder = "alphabetically_a_to_z"
	SortNameZA SortOrder = "alphabetically_z_to_a"
)

// ContactQuery describes a single listing request. OwnerID is mandatory:
// contacts are never read across users. Name, Email and Phone are
// case-insensitive substring filters combined with AND; empty values are
// ignored. An unrecognized SortBy applies no explicit order.
type ContactQuery struct {
	OwnerID int64
	Name    string
	Email   string
	Phone   string
	SortBy  SortOrder
	Limit   int
	Offset  int
}

// CreateContact inserts a new contact and assigns its identifier.
// Identifiers are monotonically assigned by the database.
func (r *Repository) CreateContact(ctx context.Context, contact *model.Contact) error {
	query := `
		INSERT INTO contacts (name, email, phone, address, country, user_id, created_at)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		RETURNING id
	`

	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}

	err := r.pool.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Address,
		contact.Country,
		contact.UserID,
		contact.CreatedAt,
	).Scan(&contact.ID)

	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

// ListContacts returns one page of the owner's contacts matching q, plus
// the total number of matches before pagination. An offset past the end
// yields an empty slice and the true total, never an error.
func (r *Repository) ListContacts(ctx context.Context, q ContactQuery) ([]*model.Contact, int64, error) {
	where := "WHERE user_id = $1"
	args := []any{q.OwnerID}

	addFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, likePattern(value))
		where += fmt.Sprintf(" AND %s ILIKE $%d", column, len(args))
	}
	addFilter("name", q.Name)
	addFilter("email", q.Email)
	addFilter("phone", q.Phone)

	var total int64
	countQuery := "SELECT COUNT(*) FROM contacts " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	query := `
		SELECT id, name, COALESCE(email, ''), phone, COALESCE(address, ''), COALESCE(country, ''), user_id, created_at
		FROM contacts ` + where + orderClause(q.SortBy)
	args = append(args, q.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, q.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*model.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, total, nil
}

// orderClause maps a sort policy to SQL. Unknown values fall through to
// the store's natural order, which is implementation-defined.
func orderClause(sortBy SortOrder) string {
	switch sortBy {
	case SortLatest:
		return " ORDER BY id DESC"
	case SortOldest:
		return " ORDER BY id ASC"
	case SortNameAZ:
		return " ORDER BY name ASC"
	case SortNameZA:
		return " ORDER BY name DESC"
	default:
		return ""
	}
}

// likePattern wraps value in wildcards for a substring match, escaping
// any LIKE metacharacters in the user-supplied text.
func likePattern(value string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(value) + "%"
}

func scanContact(row pgx.Row) (*model.Contact, error) {
	var contact model.Contact
	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Address,
		&contact.Country,
		&contact.UserID,
		&contact.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
