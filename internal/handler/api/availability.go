package api

import (
	"net/http"
	"strconv"

	"hotel-pms/internal/domain/room"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Available rooms
// @Description List rooms for sale with no active night inside the stay
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param hotelId path int true "Hotel ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Param roomTypeId query int false "Room type"
// @Param minCapacity query int false "Minimum capacity"
// @Param smoking query bool false "Smoking rooms only or non-smoking only"
// @Success 200 {array} resdto.AvailableRoomResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels/{hotelId}/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	hotelID, err := int32Param(c, "hotelId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	filter, err := parseFilter(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	views, err := h.q.AvailableRooms(c.Request.Context(), queries.AvailabilityRequest{
		HotelID:  hotelID,
		CheckIn:  c.Query("checkIn"),
		CheckOut: c.Query("checkOut"),
		Filter:   filter,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromAvailableRooms(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseFilter(c *gin.Context) (room.Filter, error) {
	var f room.Filter
	if raw := c.Query("roomTypeId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return f, errs.Kindf(ErrInvalidBody, "invalid roomTypeId %q", raw)
		}
		id := int32(v)
		f.RoomTypeID = &id
	}
	if raw := c.Query("minCapacity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return f, errs.Kindf(ErrInvalidBody, "invalid minCapacity %q", raw)
		}
		f.MinCapacity = v
	}
	if raw := c.Query("smoking"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, errs.Kindf(ErrInvalidBody, "invalid smoking %q", raw)
		}
		f.Smoking = &v
	}
	return f, nil
}
