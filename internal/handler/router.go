package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Hotel       *api.HotelHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	User        *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter gin.HandlerFunc) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, loginLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := authMiddleware.RequireAuth()
	admin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimiter}},
			{Method: http.MethodPost, Path: "/createUsers", Handler: h.User.CreateUser},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/hotels", Handler: h.Hotel.CreateHotel, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodGet, Path: "/getHotelsById/:id", Handler: h.Hotel.GetHotel, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodPut, Path: "/updateHotels/:id", Handler: h.Hotel.UpdateHotel, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodDelete, Path: "/deleteHotels/:id", Handler: h.Hotel.DeleteHotel, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodGet, Path: "/getAllHotels", Handler: h.Hotel.ListHotels, Mw: []gin.HandlerFunc{auth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/createRooms", Handler: h.Room.CreateRoom, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodGet, Path: "/getRoomsById/:id", Handler: h.Room.GetRoom, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodPut, Path: "/updateRooms/:id", Handler: h.Room.UpdateRoom, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodDelete, Path: "/deleteRooms/:id", Handler: h.Room.DeleteRoom, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodGet, Path: "/getAllRooms", Handler: h.Room.ListRooms, Mw: []gin.HandlerFunc{auth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/createReservations", Handler: h.Reservation.CreateReservation, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodGet, Path: "/getReservationsById/:id", Handler: h.Reservation.GetReservation, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodPut, Path: "/updateReservations/:id", Handler: h.Reservation.UpdateReservation, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodDelete, Path: "/deleteReservations/:id", Handler: h.Reservation.DeleteReservation, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodGet, Path: "/getAllReservations", Handler: h.Reservation.ListReservations, Mw: []gin.HandlerFunc{auth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/getUsersById/:id", Handler: h.User.GetUser, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodPut, Path: "/updateUsers/:id", Handler: h.User.UpdateUser, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodDelete, Path: "/deleteUsers/:id", Handler: h.User.DeleteUser, Mw: []gin.HandlerFunc{auth, admin}},
			{Method: http.MethodGet, Path: "/getAllUsers", Handler: h.User.ListUsers, Mw: []gin.HandlerFunc{auth, admin}},
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
