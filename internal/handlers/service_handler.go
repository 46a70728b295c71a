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
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Category    string   `json:"category" binding:"max=50"`
	DurationMin int      `json:"durationMinutes" binding:"required,min=1,max=480"`
	PriceFrom   float64  `json:"priceFrom" binding:"min=0"`
	PriceTo     *float64 `json:"priceTo" binding:"omitempty,min=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=50"`
	DurationMin *int     `json:"durationMinutes,omitempty" binding:"omitempty,min=1,max=480"`
	PriceFrom   *float64 `json:"priceFrom,omitempty" binding:"omitempty,min=0"`
	PriceTo     *float64 `json:"priceTo,omitempty" binding:"omitempty,min=0"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Admin ---------

func (h *ServiceHandler) List(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Where("provider_id = ?", providerID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	switch activeStr {
	case "true":
		q = q.Where("active = ?", true)
	case "false":
		q = q.Where("active = ?", false)
	}

	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if req.PriceTo != nil && *req.PriceTo < req.PriceFrom {
		httperr.BadRequest(c, "invalid_price_range", "Preço máximo menor que o mínimo.")
		return
	}

	service := models.Service{
		ProviderID:  providerID,
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		DurationMin: req.DurationMin,
		PriceFrom:   req.PriceFrom,
		PriceTo:     req.PriceTo,
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}

// Update edits the catalogue entry only. Bookings keep the duration they
// were created with.
func (h *ServiceHandler) Update(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND provider_id = ?", c.Param("id"), providerID).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		service.Category = strings.ToLower(strings.TrimSpace(*req.Category))
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.PriceFrom != nil {
		service.PriceFrom = *req.PriceFrom
	}
	if req.PriceTo != nil {
		service.PriceTo = req.PriceTo
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if service.PriceTo != nil && *service.PriceTo < service.PriceFrom {
		httperr.BadRequest(c, "invalid_price_range", "Preço máximo menor que o mínimo.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar serviço.")
		return
	}

	httpresp.OK(c, service)
}

// --------- Público ---------

// ListPublic returns the active services of the provider named by ?provider=<slug>.
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Query("provider")))
	if slug == "" {
		httperr.BadRequest(c, "invalid_request", "Informe o estabelecimento.")
		return
	}

	var provider models.Provider
	if err := h.db.WithContext(c.Request.Context()).
		Where("slug = ?", slug).
		First(&provider).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "provider_not_found", "Estabelecimento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_provider", "Erro ao buscar estabelecimento.")
		return
	}

	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("provider_id = ? AND active = ?", provider.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}
