// Package search orchestrates the filtered queries: it runs the repository
// aggregations and projects the raw rows into typed response records.
package search

import (
	"financial-dashboard-backend/internal/projection"
	"financial-dashboard-backend/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	customerRepo *repository.CustomerRepository
	invoiceRepo  *repository.InvoiceRepository
	log          *zap.Logger
}

func NewService(
	customerRepo *repository.CustomerRepository,
	invoiceRepo *repository.InvoiceRepository,
	log *zap.Logger,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		log:          log,
	}
}

// Projection is best-effort: a malformed row is logged with its full field
// map and skipped, and the well-formed remainder is returned. A row that
// fails here means the schema and the query disagree, which is worth a WARN
// but not an empty dashboard.

// Customers returns typed customer search results with invoice aggregates,
// ordered by name ascending.
func (s *Service) Customers(term string) ([]projection.CustomerSearchResult, error) {
	rows, err := s.customerRepo.SearchWithTotals(term)
	if err != nil {
		return nil, err
	}
	results := make([]projection.CustomerSearchResult, 0, len(rows))
	for i, row := range rows {
		result, err := projection.CustomerResult(row)
		if err != nil {
			s.log.Warn("skipping malformed customer row",
				zap.Int("row", i), zap.Any("fields", row), zap.Error(err))
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}

// Invoices returns typed invoice search results joined to their customer,
// ordered by date descending.
func (s *Service) Invoices(term string) ([]projection.InvoiceSearchResult, error) {
	rows, err := s.invoiceRepo.Search(term)
	if err != nil {
		return nil, err
	}
	results := make([]projection.InvoiceSearchResult, 0, len(rows))
	for i, row := range rows {
		result, err := projection.InvoiceResult(row)
		if err != nil {
			s.log.Warn("skipping malformed invoice row",
				zap.Int("row", i), zap.Any("fields", row), zap.Error(err))
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}

// LatestInvoices returns the newest invoices with customer display fields.
func (s *Service) LatestInvoices() ([]projection.LatestInvoice, error) {
	rows, err := s.invoiceRepo.Latest()
	if err != nil {
		return nil, err
	}
	results := make([]projection.LatestInvoice, 0, len(rows))
	for i, row := range rows {
		result, err := projection.LatestInvoiceResult(row)
		if err != nil {
			s.log.Warn("skipping malformed invoice row",
				zap.Int("row", i), zap.Any("fields", row), zap.Error(err))
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}

// StatusCounts pairs the pending and paid invoice counts.
type StatusCounts struct {
	Pending int64 `json:"pending"`
	Paid    int64 `json:"paid"`
}

func (s *Service) CustomerCount() (int64, error) {
	return s.customerRepo.Count()
}

func (s *Service) InvoiceCount() (int64, error) {
	return s.invoiceRepo.Count()
}

func (s *Service) InvoiceStatusCounts() (StatusCounts, error) {
	pending, err := s.invoiceRepo.CountByStatus("pending")
	if err != nil {
		return StatusCounts{}, err
	}
	paid, err := s.invoiceRepo.CountByStatus("paid")
	if err != nil {
		return StatusCounts{}, err
	}
	return StatusCounts{Pending: pending, Paid: paid}, nil
}

// MatchCount is the number of joined rows matching the term; callers turn
// it into a page count with their own page-size convention.
func (s *Service) MatchCount(term string) (int64, error) {
	return s.invoiceRepo.CountMatching(term)
}
