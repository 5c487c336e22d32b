package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "dino-explorer/internal/app"
	"dino-explorer/internal/bootstrap"
	"dino-explorer/internal/repository"
	"dino-explorer/internal/transport/http/handler"
	"dino-explorer/internal/transport/http/middleware"
)

// NewRouter builds the whole route table at startup. Reads are public;
// creates and updates need a valid token; deletes need the admin role.
func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", "web/index.html")
	router.Static("/static", "web/static")
	router.GET("/healthz", healthHandler.Check)

	secret := app.Config.Auth.JWTSecret
	requireAuth := middleware.RequireAuth(secret)
	requireAdmin := middleware.RequireAdmin(secret)

	authService := appsvc.NewAuthService(
		repository.NewUserRepository(app.DB),
		secret,
		time.Duration(app.Config.Auth.JWTExpireHour)*time.Hour,
	)
	authHandler := handler.NewAuthHandler(authService)

	dinosaurHandler := handler.NewDinosaurHandler(appsvc.NewDinosaurService(app.DB))
	eraHandler := handler.NewEraHandler(appsvc.NewEraService(app.DB))
	locationHandler := handler.NewLocationHandler(appsvc.NewLocationService(app.DB))
	researcherHandler := handler.NewResearcherHandler(appsvc.NewResearcherService(app.DB))
	userHandler := handler.NewUserHandler(appsvc.NewUserService(app.DB))

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	dinosaurs := api.Group("/dinosaurs")
	dinosaurs.GET("", dinosaurHandler.List)
	dinosaurs.GET("/:id", dinosaurHandler.Get)
	dinosaurs.GET("/location/:locationId", dinosaurHandler.ByLocation)
	dinosaurs.POST("", requireAuth, dinosaurHandler.Create)
	dinosaurs.PUT("/:id", requireAuth, dinosaurHandler.Update)
	dinosaurs.DELETE("/:id", requireAdmin, dinosaurHandler.Delete)

	eras := api.Group("/eras")
	eras.GET("", eraHandler.List)
	eras.GET("/:id", eraHandler.Get)
	eras.GET("/period/:period", eraHandler.ByPeriod)
	eras.POST("", requireAuth, eraHandler.Create)
	eras.PUT("/:id", requireAuth, eraHandler.Update)
	eras.DELETE("/:id", requireAdmin, eraHandler.Delete)

	locations := api.Group("/locations")
	locations.GET("", locationHandler.List)
	locations.GET("/:id", locationHandler.Get)
	locations.GET("/continent/:continent", locationHandler.ByContinent)
	locations.POST("", requireAuth, locationHandler.Create)
	locations.PUT("/:id", requireAuth, locationHandler.Update)
	locations.DELETE("/:id", requireAdmin, locationHandler.Delete)

	researchers := api.Group("/researchers")
	researchers.GET("", researcherHandler.List)
	researchers.GET("/:id", researcherHandler.Get)
	researchers.GET("/search/:name", researcherHandler.SearchByName)
	researchers.POST("", requireAuth, researcherHandler.Create)
	researchers.PUT("/:id", requireAuth, researcherHandler.Update)
	researchers.DELETE("/:id", requireAdmin, researcherHandler.Delete)

	users := api.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.GET("/email/:email", userHandler.ByEmail)
	users.GET("/username/:username", userHandler.ByUsername)
	users.POST("", requireAuth, userHandler.Create)
	users.PUT("/:id", requireAuth, userHandler.Update)
	users.DELETE("/:id", requireAdmin, userHandler.Delete)

	return router
}
