package handler

import (
	"net/http"

	"financial-dashboard-backend/internal/repository"
	search "financial-dashboard-backend/internal/services/search"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	repo   *repository.CustomerRepository
	search *search.Service
}

func NewCustomerHandler(repo *repository.CustomerRepository, search *search.Service) *CustomerHandler {
	return &CustomerHandler{repo: repo, search: search}
}

func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetFiltered(c *gin.Context) {
	term := c.DefaultQuery("query", "")
	results, err := h.search.Customers(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *CustomerHandler) GetCount(c *gin.Context) {
	count, err := h.search.CustomerCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, count)
}
