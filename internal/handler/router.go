package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-admission/internal/handler/api"
	"booking-admission/internal/handler/middleware"
	"booking-admission/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	airlineHandler *api.AirlineHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, hotelHandler, airlineHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	airlineHandler *api.AirlineHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/token", Handler: authHandler.Token},
			})
		}

		hotel := apiGroup.Group("/hotel")
		hotel.Use(authMiddleware.RequireAuth())
		{
			addRoutes(hotel, []route{
				{Method: http.MethodPost, Path: "/bookings/check", Handler: hotelHandler.Check},
				{Method: http.MethodPost, Path: "/bookings", Handler: hotelHandler.Book},
				{Method: http.MethodPost, Path: "/cancellations", Handler: hotelHandler.Cancel},
			})
		}

		airline := apiGroup.Group("/airline")
		airline.Use(authMiddleware.RequireAuth())
		{
			addRoutes(airline, []route{
				{Method: http.MethodPost, Path: "/bookings/check", Handler: airlineHandler.Check},
				{Method: http.MethodPost, Path: "/bookings", Handler: airlineHandler.Book},
				{Method: http.MethodPost, Path: "/cancellations", Handler: airlineHandler.Cancel},
			})
		}

		records := apiGroup.Group("")
		records.Use(authMiddleware.RequireAuth())
		{
			addRoutes(records, []route{
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: bookingHandler.Get},
				{Method: http.MethodGet, Path: "/suppliers/:id/bookings", Handler: bookingHandler.ListBySupplier},
			})
		}
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
