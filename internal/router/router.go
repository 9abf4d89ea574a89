package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ferd-app/ferd-server/docs"
	"github.com/ferd-app/ferd-server/internal/config"
	"github.com/ferd-app/ferd-server/internal/middleware"
	"github.com/ferd-app/ferd-server/internal/modules/handler"
	"github.com/ferd-app/ferd-server/internal/modules/serializer"
)

type RouterDeps struct {
	Config        *config.Config
	Log           *zap.Logger
	SpotHandler   *handler.SpotHandler
	ReviewHandler *handler.ReviewHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.BodySizeLimit(d.Config.Upload.MaxRequestBytes))
	// the pages are served from this process, but the API stays open to any
	// origin like the original deployment
	r.Use(cors.Default())

	// uploaded images are served straight from the upload directory
	r.Static(d.Config.Upload.URLPrefix, d.Config.Upload.Dir)

	// template pages; all dynamic data on them is fetched client-side
	if d.Config.Server.Templates != "" {
		r.LoadHTMLGlob(d.Config.Server.Templates)
		r.StaticFile("/static/script.js", "web/static/script.js")
		for route, page := range map[string]string{
			"/":        "index.html",
			"/add":     "add.html",
			"/explore": "explore.html",
			"/about":   "about.html",
		} {
			r.GET(route, func(c *gin.Context) { c.HTML(http.StatusOK, page, nil) })
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, serializer.Err("Resource not found", "", nil))
	})

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", handler.HealthCheck)

		spots := api.Group("/hidden-spots")
		{
			spots.GET("", d.SpotHandler.ListSpots)
			spots.POST("", d.SpotHandler.CreateSpot)
			spots.DELETE("/:id", d.SpotHandler.DeleteSpot)

			spots.GET("/:id/reviews", d.ReviewHandler.ListReviews)
			spots.POST("/:id/reviews", d.ReviewHandler.CreateReview)
		}
	}
	return r
}
