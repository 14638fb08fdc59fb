package api

import (
	"net/http"

	reqdto "hotel-pms/internal/handler/dto/request"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Record payment
// @Description Record a payment against a reservation. Invoice-type payments open or reuse the client's monthly invoice
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment"
// @Success 201 {object} resdto.RecordPaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.RecordPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.cmds.RecordPayment(c.Request.Context(), cmd, middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentResult(result))
}

// @Summary Delete payment
// @Description Delete a payment; an invoice left without payments is removed too
// @Tags payments
// @Security BearerAuth
// @Param paymentId path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /payments/{paymentId} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := uuidParam(c, "paymentId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.DeletePayment(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
