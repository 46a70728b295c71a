package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-queue/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	walkIn    *ucBooking.CreateWalkInBooking
	update    *ucBooking.UpdateBooking
	listByDay *ucBooking.ListBookingsByDate
}

func NewAdminBookingHandler(
	walkIn *ucBooking.CreateWalkInBooking,
	update *ucBooking.UpdateBooking,
	listByDay *ucBooking.ListBookingsByDate,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		walkIn:    walkIn,
		update:    update,
		listByDay: listByDay,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WalkInRequest struct {
	ServiceID  uint   `json:"serviceId" binding:"required"`
	GuestName  string `json:"guestName" binding:"required,max=100"`
	GuestPhone string `json:"guestPhone" binding:"omitempty,phone"`
}

type UpdateBookingRequest struct {
	Status      *string    `json:"status"`
	EstimatedAt *time.Time `json:"estimatedAt"` // RFC3339
}

// ======================================================
// WALK-IN
// ======================================================

func (h *AdminBookingHandler) WalkIn(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	b, d, err := h.walkIn.Execute(c.Request.Context(), ucBooking.CreateWalkInInput{
		ProviderID: providerID,
		AdminID:    adminID,
		ServiceID:  req.ServiceID,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, BookingResponse{
		Booking:          b,
		DecisionResponse: decisionResponse(d),
	})
}

// ======================================================
// UPDATE (status / reagendamento)
// ======================================================

func (h *AdminBookingHandler) Update(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		ProviderID:  providerID,
		AdminID:     adminID,
		BookingID:   uint(id),
		Status:      req.Status,
		EstimatedAt: req.EstimatedAt,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AdminBookingHandler) ListByDate(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	list, err := h.listByDay.Execute(c.Request.Context(), providerID, c.Query("date"))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.List(c, list)
}
