package handler

import (
	"errors"
	"net/http"
	"time"

	invoiceservice "financial-dashboard-backend/internal/services/invoices"
	search "financial-dashboard-backend/internal/services/search"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	search  *search.Service
	service *invoiceservice.Service
}

func NewInvoiceHandler(search *search.Service, service *invoiceservice.Service) *InvoiceHandler {
	return &InvoiceHandler{search: search, service: service}
}

func (h *InvoiceHandler) GetLatest(c *gin.Context) {
	results, err := h.search.LatestInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *InvoiceHandler) GetFiltered(c *gin.Context) {
	term := c.DefaultQuery("query", "")
	results, err := h.search.Invoices(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *InvoiceHandler) GetCount(c *gin.Context) {
	count, err := h.search.InvoiceCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *InvoiceHandler) GetStatusCount(c *gin.Context) {
	counts, err := h.search.InvoiceStatusCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetPages returns the raw matching-row count; the frontend divides by its
// own page size.
func (h *InvoiceHandler) GetPages(c *gin.Context) {
	term := c.DefaultQuery("query", "")
	count, err := h.search.MatchCount(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	invoice, err := h.service.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Plain lookup is intentionally loose: absence serializes as null.
	c.JSON(http.StatusOK, invoice)
}

// invoicePayload distinguishes absent fields (nil) from zero values; the
// service decides which absences are validation failures.
type invoicePayload struct {
	CustomerID *string `json:"customer_id"`
	Amount     *int64  `json:"amount"`
	Status     *string `json:"status"`
	Date       *string `json:"date"`
}

func (p *invoicePayload) toInput() (invoiceservice.Input, error) {
	var in invoiceservice.Input
	if p.CustomerID != nil {
		id, err := uuid.Parse(*p.CustomerID)
		if err != nil {
			return in, errors.New("invalid customer ID")
		}
		in.CustomerID = &id
	}
	if p.Date != nil {
		date, err := time.Parse("2006-01-02", *p.Date)
		if err != nil {
			return in, errors.New("invalid date format, expected yyyy-mm-dd")
		}
		in.Date = &date
	}
	in.Amount = p.Amount
	in.Status = p.Status
	return in, nil
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload invoicePayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	in, err := payload.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invoice, err := h.service.Create(in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	var payload invoicePayload
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	in, err := payload.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	invoice, err := h.service.Update(id, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	if err := h.service.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}

func (h *InvoiceHandler) writeError(c *gin.Context, err error) {
	var validation *invoiceservice.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, invoiceservice.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
