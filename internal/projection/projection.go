// Package projection converts the loosely-typed rows produced by joined and
// aggregated queries into the typed response records the API serializes.
// Every required field must be present and parse; shape problems are
// reported as *MappingError naming the offending field.
package projection

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Row is a single query result exposed as field name to driver value.
type Row = map[string]interface{}

// MappingError reports a row field that was missing or failed to parse.
type MappingError struct {
	Field  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("row field %q: %s", e.Field, e.Reason)
}

type CustomerSearchResult struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      *string   `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  *int64    `json:"total_pending"`
	TotalPaid     *int64    `json:"total_paid"`
}

type InvoiceSearchResult struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   *string   `json:"image_url"`
	Amount     int64     `json:"amount"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
}

type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL *string   `json:"image_url"`
	Email    string    `json:"email"`
	Amount   int64     `json:"amount"`
}

// CustomerResult projects one aggregated customer row. The conditional sums
// stay nil when the row carries NULL, meaning the customer has no invoices
// of that status.
func CustomerResult(row Row) (*CustomerSearchResult, error) {
	id, err := uuidField(row, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(row, "name")
	if err != nil {
		return nil, err
	}
	email, err := stringField(row, "email")
	if err != nil {
		return nil, err
	}
	totalInvoices, err := intField(row, "total_invoices")
	if err != nil {
		return nil, err
	}
	totalPending, err := optionalIntField(row, "total_pending")
	if err != nil {
		return nil, err
	}
	totalPaid, err := optionalIntField(row, "total_paid")
	if err != nil {
		return nil, err
	}
	return &CustomerSearchResult{
		ID:            id,
		Name:          name,
		Email:         email,
		ImageURL:      optionalStringField(row, "image_url"),
		TotalInvoices: totalInvoices,
		TotalPending:  totalPending,
		TotalPaid:     totalPaid,
	}, nil
}

// InvoiceResult projects one joined invoice row.
func InvoiceResult(row Row) (*InvoiceSearchResult, error) {
	id, err := uuidField(row, "id")
	if err != nil {
		return nil, err
	}
	customerID, err := uuidField(row, "customer_id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(row, "name")
	if err != nil {
		return nil, err
	}
	email, err := stringField(row, "email")
	if err != nil {
		return nil, err
	}
	amount, err := intField(row, "amount")
	if err != nil {
		return nil, err
	}
	date, err := dateField(row, "date")
	if err != nil {
		return nil, err
	}
	status, err := stringField(row, "status")
	if err != nil {
		return nil, err
	}
	return &InvoiceSearchResult{
		ID:         id,
		CustomerID: customerID,
		Name:       name,
		Email:      email,
		ImageURL:   optionalStringField(row, "image_url"),
		Amount:     amount,
		Date:       date,
		Status:     status,
	}, nil
}

// LatestInvoiceResult projects one row of the latest-invoices query.
func LatestInvoiceResult(row Row) (*LatestInvoice, error) {
	id, err := uuidField(row, "id")
	if err != nil {
		return nil, err
	}
	name, err := stringField(row, "name")
	if err != nil {
		return nil, err
	}
	email, err := stringField(row, "email")
	if err != nil {
		return nil, err
	}
	amount, err := intField(row, "amount")
	if err != nil {
		return nil, err
	}
	return &LatestInvoice{
		ID:       id,
		Name:     name,
		ImageURL: optionalStringField(row, "image_url"),
		Email:    email,
		Amount:   amount,
	}, nil
}

func stringField(row Row, name string) (string, error) {
	v, ok := row[name]
	if !ok || v == nil {
		return "", &MappingError{Field: name, Reason: "missing"}
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", &MappingError{Field: name, Reason: fmt.Sprintf("expected text, got %T", v)}
	}
}

func optionalStringField(row Row, name string) *string {
	s, err := stringField(row, name)
	if err != nil {
		return nil
	}
	return &s
}

func uuidField(row Row, name string) (uuid.UUID, error) {
	v, ok := row[name]
	if !ok || v == nil {
		return uuid.Nil, &MappingError{Field: name, Reason: "missing"}
	}
	switch id := v.(type) {
	case uuid.UUID:
		return id, nil
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, &MappingError{Field: name, Reason: "not a valid uuid"}
		}
		return parsed, nil
	case []byte:
		parsed, err := uuid.ParseBytes(id)
		if err != nil {
			return uuid.Nil, &MappingError{Field: name, Reason: "not a valid uuid"}
		}
		return parsed, nil
	case [16]byte:
		return uuid.UUID(id), nil
	default:
		return uuid.Nil, &MappingError{Field: name, Reason: fmt.Sprintf("expected uuid, got %T", v)}
	}
}

// intField coerces the integer shapes drivers actually hand back: native
// ints, floats carrying an integral value, and numeric text (postgres SUM
// over bigint scans as a numeric string).
func intField(row Row, name string) (int64, error) {
	v, ok := row[name]
	if !ok || v == nil {
		return 0, &MappingError{Field: name, Reason: "missing"}
	}
	return coerceInt(v, name)
}

func optionalIntField(row Row, name string) (*int64, error) {
	v, ok := row[name]
	if !ok || v == nil {
		return nil, nil
	}
	n, err := coerceInt(v, name)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func coerceInt(v interface{}, name string) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, &MappingError{Field: name, Reason: "not an integer"}
		}
		return int64(n), nil
	case string:
		return parseIntText(n, name)
	case []byte:
		return parseIntText(string(n), name)
	default:
		return 0, &MappingError{Field: name, Reason: fmt.Sprintf("expected integer, got %T", v)}
	}
}

func parseIntText(s, name string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, &MappingError{Field: name, Reason: "not an integer"}
	}
	return parsed, nil
}

// dateField normalizes a date value to YYYY-MM-DD. Postgres hands back
// time.Time for DATE columns; the sqlite test driver stores dates as text
// with a trailing time component.
func dateField(row Row, name string) (string, error) {
	v, ok := row[name]
	if !ok || v == nil {
		return "", &MappingError{Field: name, Reason: "missing"}
	}
	switch d := v.(type) {
	case time.Time:
		return d.Format(dateLayout), nil
	case string:
		return parseDateText(d, name)
	case []byte:
		return parseDateText(string(d), name)
	default:
		return "", &MappingError{Field: name, Reason: fmt.Sprintf("expected date, got %T", v)}
	}
}

func parseDateText(s, name string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.Format(dateLayout), nil
	}
	if len(s) > len(dateLayout) {
		if t, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", &MappingError{Field: name, Reason: "not a YYYY-MM-DD date"}
}
