package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-queue/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	estimate *ucBooking.EstimateBooking
	create   *ucBooking.CreateCustomerBooking
	mine     *ucBooking.ListCustomerBookings
}

func NewBookingHandler(
	estimate *ucBooking.EstimateBooking,
	create *ucBooking.CreateCustomerBooking,
	mine *ucBooking.ListCustomerBookings,
) *BookingHandler {
	return &BookingHandler{
		estimate: estimate,
		create:   create,
		mine:     mine,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type BookingRequest struct {
	ServiceID uint   `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
}

type DecisionResponse struct {
	Position             int       `json:"position"`
	EstimatedAt          time.Time `json:"estimatedAt"`
	FormattedEstimatedAt string    `json:"formattedEstimatedAt"`
	Message              string    `json:"message"`
}

type BookingResponse struct {
	Booking *models.Booking `json:"booking"`
	DecisionResponse
}

func decisionResponse(d ucBooking.Decision) DecisionResponse {
	return DecisionResponse{
		Position:             d.Position,
		EstimatedAt:          d.EstimatedAt,
		FormattedEstimatedAt: d.FormattedTime,
		Message:              d.Message(),
	}
}

// ======================================================
// ESTIMATE (público)
// ======================================================

func (h *BookingHandler) Estimate(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	d, err := h.estimate.Execute(c.Request.Context(), ucBooking.EstimateInput{
		ServiceID: req.ServiceID,
		Date:      req.Date,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, decisionResponse(d))
}

// ======================================================
// CREATE (cliente)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	b, d, err := h.create.Execute(c.Request.Context(), ucBooking.CreateCustomerBookingInput{
		CustomerID: customerID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, BookingResponse{
		Booking:          b,
		DecisionResponse: decisionResponse(d),
	})
}

// ======================================================
// MINE (cliente)
// ======================================================

func (h *BookingHandler) Mine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	list, err := h.mine.Execute(c.Request.Context(), customerID)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.List(c, list)
}
