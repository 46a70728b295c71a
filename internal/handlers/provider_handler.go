package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type ProviderHandler struct {
	db *gorm.DB
}

func NewProviderHandler(db *gorm.DB) *ProviderHandler {
	return &ProviderHandler{db: db}
}

type UpdateProviderRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,phone"`
	Address  *string `json:"address" binding:"omitempty,max=255"`
	Timezone *string `json:"timezone"`
}

func (h *ProviderHandler) load(c *gin.Context) (*models.Provider, bool) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	var p models.Provider
	if err := h.db.WithContext(c.Request.Context()).First(&p, providerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "provider_not_found", "Estabelecimento não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_provider", "Erro ao buscar dados do estabelecimento.")
		return nil, false
	}
	return &p, true
}

func (h *ProviderHandler) Get(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, p)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Address != nil {
		p.Address = strings.TrimSpace(*req.Address)
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		p.Timezone = *req.Timezone
	}

	if err := h.db.WithContext(c.Request.Context()).Save(p).Error; err != nil {
		httperr.Internal(c, "failed_to_update_provider", "Erro ao salvar os dados do estabelecimento.")
		return
	}

	httpresp.OK(c, p)
}
