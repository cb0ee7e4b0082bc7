package handler

import (
	"net/http"

	"financial-dashboard-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type RevenueHandler struct {
	repo *repository.RevenueRepository
}

func NewRevenueHandler(repo *repository.RevenueRepository) *RevenueHandler {
	return &RevenueHandler{repo: repo}
}

func (h *RevenueHandler) GetAll(c *gin.Context) {
	revenues, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, revenues)
}
