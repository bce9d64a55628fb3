package routes

import (
	"net/http"
	"time"

	"mug-store/docs"
	"mug-store/internal/handlers"
	"mug-store/internal/middlewares"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-openapi/runtime/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func InitRoutes(log *zap.Logger, corsOrigins []string, categoryHandler *handlers.CategoryHandler,
	mugHandler *handlers.MugHandler) *gin.Engine {
	router := gin.New()

	_ = router.SetTrustedProxies(nil)

	router.Use(ginzap.Ginzap(log, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(log, true))
	router.Use(middlewares.Metrics())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if allowsAnyOrigin(corsOrigins) {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = corsOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
	})
	sh := middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/swagger/doc.json",
		Path:    "swagger",
		Title:   docs.SwaggerInfo.Title,
	}, nil)
	router.GET("/swagger", gin.WrapH(sh))

	router.GET("/", handlers.Index)

	router.GET("/mugs", mugHandler.ListMugs)
	router.GET("/mug/:id", mugHandler.GetMug)
	router.POST("/mug", mugHandler.CreateMug)
	router.PATCH("/mug/:id", mugHandler.UpdateMug)
	router.DELETE("/mug/:id", mugHandler.DeleteMug)

	router.GET("/categories", categoryHandler.ListCategories)
	router.GET("/category/:id", categoryHandler.GetCategory)
	router.POST("/category", categoryHandler.CreateCategory)
	router.PATCH("/category/:id", categoryHandler.UpdateCategory)
	router.DELETE("/category/:id", categoryHandler.DeleteCategory)

	// unsupported methods on known paths fall through to NoRoute as well
	router.HandleMethodNotAllowed = false
	router.NoRoute(handlers.NotFound)

	return router
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
