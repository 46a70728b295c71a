package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, audit *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: audit}
}

type WorkingDayConfig struct {
	Weekday   *int   `json:"weekday" binding:"required,min=0,max=6"`
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime" binding:"omitempty,hhmm"`
	EndTime   string `json:"endTime" binding:"omitempty,hhmm"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,min=1,max=7,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	var days []models.WorkingDay
	if err := h.db.WithContext(c.Request.Context()).
		Where("provider_id = ?", providerID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar horários.")
		return
	}

	httpresp.OK(c, days)
}

// Update upserts one row per weekday sent; weekdays left out keep their
// current configuration.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	seen := make(map[int]bool, len(req.Days))
	rows := make([]models.WorkingDay, 0, len(req.Days))

	for _, d := range req.Days {
		if seen[*d.Weekday] {
			httperr.BadRequest(c, "duplicated_weekday", "Dia da semana repetido.")
			return
		}
		seen[*d.Weekday] = true

		// "HH:mm" compares lexicographically
		if d.IsOpen && (d.StartTime == "" || d.EndTime == "" || d.StartTime >= d.EndTime) {
			httperr.BadRequest(c, "invalid_working_hours", "Horário de abertura deve ser antes do fechamento.")
			return
		}

		rows = append(rows, models.WorkingDay{
			ProviderID: providerID,
			Weekday:    *d.Weekday,
			IsOpen:     d.IsOpen,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
		})
	}

	if err := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_open", "start_time", "end_time", "updated_at"}),
		}).
		Create(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar horários.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		UserID:     &adminID,
		Action:     audit.ActionWorkingHoursSave,
		Entity:     "working_day",
		Metadata:   req.Days,
	})

	httpresp.OK(c, rows)
}
