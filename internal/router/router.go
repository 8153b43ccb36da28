package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/tendersaarthi/tendersaarthi-api/internal/handler"
	"github.com/tendersaarthi/tendersaarthi-api/internal/middleware"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	"github.com/tendersaarthi/tendersaarthi-api/internal/service"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/logger"
	corsmiddleware "github.com/tendersaarthi/tendersaarthi-api/pkg/middleware/cors"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/middleware/ratelimit"
	reqidmiddleware "github.com/tendersaarthi/tendersaarthi-api/pkg/middleware/requestid"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	Listings *handler.ListingHandler
	Tenders  *handler.TenderHandler
	Saved    *handler.SavedTenderHandler
	Alerts   *handler.AlertHandler
	Metrics  *handler.MetricsHandler
}

// Options configures the engine.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool

	Tokens  middleware.TokenValidator
	Audit   middleware.AuditWriter
	Metrics *service.MetricsService
	Limiter *ratelimit.KeyLimiter
	Logger  *zap.Logger
}

// New builds the gin engine with every route of the API.
func New(h Handlers, opts Options) *gin.Engine {
	logr := opts.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/" + strings.Trim(opts.APIPrefix, "/"))
	requireAuth := middleware.JWT(opts.Tokens)

	public := api.Group("")
	if opts.Limiter != nil {
		var onLimited func()
		if opts.Metrics != nil {
			onLimited = opts.Metrics.RecordRateLimited
		}
		public.Use(ratelimit.Middleware(opts.Limiter, onLimited))
	}
	public.GET("/tenders", h.Listings.List)
	public.GET("/tenders/archive", h.Listings.Listing(models.ListingArchive))
	public.GET("/tenders/latest", h.Listings.Listing(models.ListingLatest))
	public.GET("/tenders/closing-soon", h.Listings.Listing(models.ListingClosingSoon))
	public.GET("/tenders/filters", h.Listings.Filters)
	public.GET("/tenders/price-range", h.Listings.PriceRange)
	public.GET("/tenders/export", h.Listings.Export)
	public.GET("/tenders/:id", middleware.OptionalJWT(opts.Tokens), h.Tenders.Get)

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", requireAuth, h.Auth.Logout)
	auth.GET("/me", requireAuth, h.Auth.Me)

	posting := api.Group("/tenders", requireAuth)
	posting.POST("", h.Tenders.Create)
	posting.PUT("/:id", h.Tenders.Update)
	posting.POST("/:id/publish", h.Tenders.Publish)
	posting.DELETE("/:id", h.Tenders.Delete)

	me := api.Group("/me", requireAuth)
	me.GET("/tenders", h.Tenders.ListMine)
	me.GET("/saved", h.Saved.List)
	me.GET("/saved/:id", h.Saved.Status)
	me.PUT("/saved/:id", h.Saved.Save)
	me.DELETE("/saved/:id", h.Saved.Remove)
	me.GET("/alerts", h.Alerts.Get)
	me.PUT("/alerts", audited(opts, logr, models.AuditActionAlertUpdate), h.Alerts.Upsert)
	me.DELETE("/alerts", audited(opts, logr, models.AuditActionAlertDelete), h.Alerts.Delete)

	return r
}

func audited(opts Options, logr *zap.Logger, action string) gin.HandlerFunc {
	if opts.Audit == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.Audit(opts.Audit, logr, action, "alert_preference")
}
