package api

import (
	"net/http"

	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OTAHandler struct {
	cmds commands.QueueCommands
}

func NewOTAHandler(cmds commands.QueueCommands) *OTAHandler {
	return &OTAHandler{cmds: cmds}
}

// @Summary Enqueue OTA booking
// @Description Store a raw OTA booking notification (XML or JSON) for processing. Duplicates return the existing entry
// @Tags ota
// @Accept xml
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotelId path int true "Hotel ID"
// @Success 202 {object} resdto.EnqueueResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels/{hotelId}/ota/reservations [post]
func (h *OTAHandler) Enqueue(c *gin.Context) {
	hotelID, err := int32Param(c, "hotelId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	payload, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Enqueue(c.Request.Context(), commands.EnqueueRequest{
		HotelID:     hotelID,
		ContentType: c.ContentType(),
		Payload:     payload,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromEnqueueResult(result))
}

// @Summary Replay queue entry
// @Description Put a failed OTA queue entry back to pending
// @Tags ota
// @Security BearerAuth
// @Param entryId path int true "Queue entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /ota/queue/{entryId}/replay [post]
func (h *OTAHandler) Replay(c *gin.Context) {
	entryID, err := int64Param(c, "entryId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.Replay(c.Request.Context(), entryID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
