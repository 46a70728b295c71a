package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
)

// bookingErrors maps business codes of the booking flows to HTTP status and
// the pt-BR message shown to the user.
var bookingErrors = map[string]struct {
	status  int
	message string
}{
	domain.CodeInvalidRequest:      {http.StatusBadRequest, "Dados inválidos."},
	domain.CodeInvalidDate:         {http.StatusBadRequest, "Data inválida. Use o formato AAAA-MM-DD."},
	domain.CodeShopClosed:          {http.StatusBadRequest, "O estabelecimento não abre nesta data."},
	domain.CodeQueueFull:           {http.StatusBadRequest, "A fila deste dia está completa. Escolha outra data."},
	domain.CodeInvalidStatus:       {http.StatusBadRequest, "Status inválido."},
	domain.CodeInvalidTransition:   {http.StatusBadRequest, "Mudança de status não permitida."},
	domain.CodeServiceNotFound:     {http.StatusNotFound, "Serviço não encontrado."},
	domain.CodeBookingNotFound:     {http.StatusNotFound, "Agendamento não encontrado."},
	domain.CodeConcurrencyConflict: {http.StatusInternalServerError, "Muitas solicitações simultâneas. Tente novamente."},
}

func mapBookingErrors(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		if m, ok := bookingErrors[be.Code]; ok {
			httperr.Write(c, m.status, be.Code, m.message)
			return
		}
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Erro inesperado. Tente novamente.")
}

func invalidRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	httperr.BadRequest(c, domain.CodeInvalidRequest, "Dados inválidos.")
}
