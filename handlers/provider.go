package handlers

import (
	"errors"
	"net/http"
	"time"

	providerRepo "guidely/database/repository/provider"
	"guidely/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider profile endpoints.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

// NewProviderHandler constructs a ProviderHandler.
func NewProviderHandler(repo providerRepo.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{Repo: repo}
}

// RegisterProviderHandler handles POST /providers. New profiles enter the
// admin review queue as pending applications.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var input struct {
		Name         string   `json:"name"`
		Email        string   `json:"email"`
		Phone        string   `json:"phone,omitempty"`
		Bio          string   `json:"bio,omitempty"`
		ServiceTypes []string `json:"serviceTypes"`
		Timezone     string   `json:"timezone,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Name == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
		return
	}

	now := time.Now()
	provider := &models.Provider{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		Bio:                input.Bio,
		ServiceTypes:       input.ServiceTypes,
		Timezone:           input.Timezone,
		VerificationStatus: models.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := h.Repo.Create(c.Request.Context(), provider); err != nil {
		getLogger(c).Error("failed to create provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create provider"})
		return
	}
	c.JSON(http.StatusCreated, provider)
}

// GetProviderByIDHandler handles GET /providers/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	provider, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		getLogger(c).Error("failed to fetch provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch provider"})
		return
	}
	c.JSON(http.StatusOK, provider)
}
