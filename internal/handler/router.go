package handler

import (
	"log/slog"
	"net/http"

	"hotel-pms/internal/domain/staff"
	"hotel-pms/internal/handler/api"
	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Payment      *api.PaymentHandler
	OTA          *api.OTAHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	clerk := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleClerk)}
	manager := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleManager)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		hotels := apiGroup.Group("/hotels/:hotelId")
		addRoutes(hotels, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.List},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.CreateHold, Mw: clerk},
			{Method: http.MethodPost, Path: "/ota/reservations", Handler: h.OTA.Enqueue, Mw: clerk},
		})

		reservations := apiGroup.Group("/reservations/:id")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Reservation.DeleteHold, Mw: clerk},
			{Method: http.MethodPut, Path: "/status", Handler: h.Reservation.ChangeStatus, Mw: clerk},
			{Method: http.MethodPost, Path: "/rooms", Handler: h.Reservation.AddRoom, Mw: clerk},
			{Method: http.MethodDelete, Path: "/rooms/:roomId", Handler: h.Reservation.RemoveRoom, Mw: clerk},
			{Method: http.MethodPut, Path: "/rooms/:roomId/move", Handler: h.Reservation.MoveRoom, Mw: clerk},
			{Method: http.MethodPost, Path: "/recalculate", Handler: h.Reservation.Recalculate, Mw: clerk},
			{Method: http.MethodPost, Path: "/payments", Handler: h.Payment.Record, Mw: clerk},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPut, Path: "/reservation-details/:detailId/plan", Handler: h.Reservation.AttachPlan, Mw: clerk},
			{Method: http.MethodDelete, Path: "/payments/:paymentId", Handler: h.Payment.Delete, Mw: manager},
			{Method: http.MethodPost, Path: "/ota/queue/:entryId/replay", Handler: h.OTA.Replay, Mw: manager},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
