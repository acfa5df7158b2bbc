package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/config"
	"github.com/malabartrails/tours-backend/internal/app/controller"
	"github.com/malabartrails/tours-backend/internal/middleware"
)

type Router struct {
	tourController        *controller.TourController
	categoryController    *controller.CategoryController
	destinationController *controller.DestinationController
	searchController      *controller.SearchController
	inquiryController     *controller.InquiryController
	siteController        *controller.SiteController
	searchLimiter         *middleware.IPRateLimiter
	config                *config.Config
}

func NewRouter(
	tourController *controller.TourController,
	categoryController *controller.CategoryController,
	destinationController *controller.DestinationController,
	searchController *controller.SearchController,
	inquiryController *controller.InquiryController,
	siteController *controller.SiteController,
	searchLimiter *middleware.IPRateLimiter,
	cfg *config.Config,
) *Router {
	return &Router{
		tourController:        tourController,
		categoryController:    categoryController,
		destinationController: destinationController,
		searchController:      searchController,
		inquiryController:     inquiryController,
		siteController:        siteController,
		searchLimiter:         searchLimiter,
		config:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Tours API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		tours := v1.Group("/tours")
		{
			tours.GET("", r.tourController.ListTours)
			tours.GET("/slugs", r.tourController.ListPublishedSlugs)
			tours.GET("/:slug", r.tourController.GetTourBySlug)
			tours.GET("/:slug/images", r.tourController.GetTourImages)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.GetCategoryTree)
			categories.GET("/:slug", r.categoryController.GetCategoryPage)
			categories.GET("/:slug/tours", r.categoryController.GetMenuTours)
		}

		destinations := v1.Group("/destinations")
		{
			destinations.GET("", r.destinationController.ListDestinations)
			destinations.GET("/:slug", r.destinationController.GetDestinationBySlug)
		}

		search := v1.Group("/search")
		if r.searchLimiter != nil {
			search.Use(r.searchLimiter.Middleware())
		}
		{
			search.GET("", r.searchController.Search)
		}

		v1.POST("/inquiries", r.inquiryController.CreateInquiry)

		site := v1.Group("/site")
		{
			site.GET("/homepage", r.siteController.GetHomepage)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
