package routes

import (
	"time"

	"nutriscan/controllers"
	"nutriscan/middlewares"
	"nutriscan/models"
	"nutriscan/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps is everything the route table needs.
type Deps struct {
	DB        *gorm.DB
	Log       logrus.FieldLogger
	Auth      *services.AuthService
	Users     *services.UserService
	Foods     *services.FoodService
	Logs      *services.LogService
	Metrics   *services.MetricService
	Analytics *services.AnalyticsService
	Uploads   *services.UploadService
	Hub       *services.RealtimeHub

	// UploadDir is served at /uploads when images are stored on local disk.
	UploadDir   string
	AuthLimiter *middlewares.RateLimiter
	// TrustedProxies may set the client IP via X-Forwarded-For; nil trusts none.
	TrustedProxies []string
	DevRoutes      bool
	ExposeErrors   bool
}

func SetupRouter(d Deps) *gin.Engine {
	middlewares.UseJSONFieldNames()

	r := gin.New()
	r.MaxMultipartMemory = services.MaxUploadBytes + 1<<20
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		d.Log.WithError(err).Warn("invalid trusted proxies, using socket peer addresses")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		gin.Recovery(),
		middlewares.RequestLogger(d.Log),
		middlewares.Metrics(),
		middlewares.ErrorHandler(d.Log, d.ExposeErrors),
	)

	sys := controllers.NewSystemController(d.DB)
	r.GET("/", sys.Root)
	r.GET("/api", sys.APIStatus)
	r.GET("/healthz", sys.Health)
	r.GET("/metrics", middlewares.MetricsHandler())
	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	api := r.Group("/api")
	protect := middlewares.Protect(d.Auth)

	// Public auth routes
	authCtl := controllers.NewAuthController(d.Auth)
	auth := api.Group("/auth")
	if d.AuthLimiter != nil {
		auth.Use(d.AuthLimiter.Handler())
	}
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/check-email", authCtl.CheckEmail)
	}

	userCtl := controllers.NewUserController(d.Users, d.Foods)
	users := api.Group("/users", protect)
	{
		users.GET("/profile", userCtl.GetProfile)
		users.PUT("/profile", userCtl.UpdateProfile)
		users.DELETE("/profile", userCtl.DeleteAccount)
	}

	foodCtl := controllers.NewFoodController(d.Foods)
	foods := api.Group("/foods", protect)
	{
		foods.GET("", foodCtl.List)
		foods.POST("", foodCtl.Create)
		foods.PATCH("/:id", foodCtl.Update)
		foods.DELETE("/:id", foodCtl.Delete)
	}

	logCtl := controllers.NewLogController(d.Logs)
	logs := api.Group("/logs", protect)
	{
		logs.POST("", logCtl.Add)
		logs.GET("/today", logCtl.Daily)
		logs.GET("/recent", logCtl.Recent)
		logs.DELETE("/:logId", logCtl.Delete)
	}

	metricCtl := controllers.NewMetricController(d.Metrics)
	metrics := api.Group("/metrics", protect)
	{
		metrics.PUT("", metricCtl.Upsert)
		metrics.GET("", metricCtl.List)
	}

	analyticsCtl := controllers.NewAnalyticsController(d.Analytics)
	api.GET("/analytics/summary", protect, analyticsCtl.Summary)

	uploadCtl := controllers.NewUploadController(d.Uploads)
	upload := api.Group("/upload", protect)
	{
		upload.POST("/avatar", uploadCtl.Avatar)
		upload.POST("/food", uploadCtl.Food)
	}

	if d.DevRoutes {
		devCtl := controllers.NewDevController(d.Users)
		api.POST("/dev/toggle-role", protect, devCtl.ToggleRole)
	}

	rtCtl := controllers.NewRealtimeController(d.Hub, d.Log)
	api.GET("/realtime/ws", protect, rtCtl.Events)

	api.GET("/realtime/connections/:userId", protect, middlewares.RestrictTo(models.RoleAdmin), rtCtl.Connections)

	return r
}

// authLimiterIdle is how long a client IP's bucket survives without requests.
const authLimiterIdle = 10 * time.Minute

// StartLimiterCleanup sweeps idle rate limiter buckets until stop closes.
func StartLimiterCleanup(rl *middlewares.RateLimiter, stop <-chan struct{}) {
	if rl != nil {
		rl.StartCleanup(authLimiterIdle, stop)
	}
}
