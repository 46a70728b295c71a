package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type AuditLogsQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	From   string `form:"from" binding:"omitempty,ymd"`
	To     string `form:"to" binding:"omitempty,ymd"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	var params AuditLogsQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		invalidRequest(c, err)
		return
	}

	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 || params.Limit > 200 {
		params.Limit = 50
	}
	offset := (params.Page - 1) * params.Limit

	// --------------------------------------------------
	// Query base (sempre protegido por provider)
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("provider_id = ?", providerID)

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if params.Action != "" {
		q = q.Where("action = ?", params.Action)
	}

	if params.Entity != "" {
		q = q.Where("entity = ?", params.Entity)
	}

	if params.From != "" {
		if from, err := time.Parse(timezone.DateLayout, params.From); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if params.To != "" {
		if to, err := time.Parse(timezone.DateLayout, params.To); err == nil {
			q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"page":    params.Page,
		"limit":   params.Limit,
		"total":   total,
		"logs":    logs,
	})
}
