package api

import (
	"net/http"
	"strconv"

	"hotel-pms/internal/domain/reservation"
	reqdto "hotel-pms/internal/handler/dto/request"
	resdto "hotel-pms/internal/handler/dto/response"
	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create hold
// @Description Allocate rooms for a party and create a hold reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotelId path int true "Hotel ID"
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{hotelId}/reservations [post]
func (h *ReservationHandler) CreateHold(c *gin.Context) {
	hotelID, err := int32Param(c, "hotelId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.CreateHoldRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(hotelID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.cmds.CreateHold(c.Request.Context(), cmd, middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromHoldResult(result)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get reservation
// @Description Get a reservation with its nights and payments
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Delete hold
// @Description Hard-delete a reservation that never left the hold status
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteHold(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.DeleteHold(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change status
// @Description Move a reservation through its status lifecycle
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/status [put]
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.ChangeStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	status, err := h.cmds.ChangeStatus(c.Request.Context(), commands.ChangeStatusRequest{
		ReservationID: id,
		Status:        reservation.Status(req.Status),
		FullFee:       req.FullFee,
	}, middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatus(id, status))
}

// @Summary Add room
// @Description Add a room to every night of the stay, or add people to a room already booked
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddRoomRequest true "Room and people"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/rooms [post]
func (h *ReservationHandler) AddRoom(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.AddRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err = h.cmds.AddRoom(c.Request.Context(), commands.AddRoomRequest{
		ReservationID: id,
		RoomID:        req.RoomID,
		People:        req.People,
	}, middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Remove room
// @Description Take people out of a room, or remove the room when people is omitted
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param roomId path int true "Room ID"
// @Param people query int false "People to remove"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/rooms/{roomId} [delete]
func (h *ReservationHandler) RemoveRoom(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	roomID, err := int32Param(c, "roomId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	people := 0
	if raw := c.Query("people"); raw != "" {
		people, err = strconv.Atoi(raw)
		if err != nil || people < 0 {
			httperr.Abort(c, errs.Kindf(ErrInvalidBody, "invalid people %q", raw))
			return
		}
	}

	err = h.cmds.RemoveRoom(c.Request.Context(), commands.RemoveRoomRequest{
		ReservationID: id,
		RoomID:        roomID,
		People:        people,
	}, middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Move room
// @Description Move a room's nights to another room and optionally new dates
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param roomId path int true "Room being moved"
// @Param request body reqdto.MoveRoomRequest true "Target room and dates"
// @Success 200 {object} resdto.MoveRoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/rooms/{roomId}/move [put]
func (h *ReservationHandler) MoveRoom(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	roomID, err := int32Param(c, "roomId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.MoveRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.MoveRoom(c.Request.Context(), commands.MoveRoomRequest{
		ReservationID: id,
		FromRoomID:    roomID,
		ToRoomID:      req.ToRoomID,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Solo:          req.Solo,
	}, middleware.Actor(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMoveRoomResult(result))
}

// @Summary Recalculate
// @Description Reprice every active night from its plan
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/recalculate [post]
func (h *ReservationHandler) Recalculate(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.Recalculate(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Attach plan
// @Description Attach a plan, add-ons and guests to one night and reprice it
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param detailId path string true "Reservation detail ID"
// @Param request body reqdto.AttachPlanRequest true "Plan, add-ons and guests"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservation-details/{detailId}/plan [put]
func (h *ReservationHandler) AttachPlan(c *gin.Context) {
	detailID, err := uuidParam(c, "detailId")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.AttachPlanRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand(detailID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.AttachPlan(c.Request.Context(), cmd, middleware.Actor(c)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resp)
}
