package router

import (
	"net/http"

	"rentcar/api"
	"rentcar/config"
	_ "rentcar/docs"
	"rentcar/logger"
	"rentcar/middleware"
	"rentcar/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps 路由依赖
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	Notifier service.BookingNotifier
}

// SetupRouter 设置路由
func SetupRouter(deps Deps) *gin.Engine {
	gin.SetMode(deps.Config.Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestID(), logger.GinLogger(deps.Log), gin.Recovery(), middleware.CORS())

	notifier := deps.Notifier
	if notifier == nil {
		notifier = service.NopNotifier{}
	}
	incomes := service.NewIncomeService(deps.DB)

	carHandler := api.NewCarHandler(deps.DB)
	commentHandler := api.NewCommentHandler(deps.DB)
	bookingHandler := api.NewBookingHandler(service.NewBookingService(deps.DB), notifier, deps.Log)
	regionHandler := api.NewRegionHandler(deps.DB)
	incomeHandler := api.NewIncomeHandler(incomes)
	exportHandler := api.NewExportHandler(service.NewReportService(incomes))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")
	{
		cars := apiGroup.Group("/cars")
		{
			cars.GET("", carHandler.List)
			cars.POST("", carHandler.Create)
			cars.GET("/category/:category", carHandler.ListByCategory)
			cars.GET("/:id", carHandler.Get)
			cars.PUT("/:id", carHandler.Update)
			cars.DELETE("/:id", carHandler.Delete)
		}

		comments := apiGroup.Group("/comments")
		{
			comments.GET("", commentHandler.List)
			comments.POST("", commentHandler.Create)
			comments.GET("/:carId", commentHandler.ListByCar)
			comments.PUT("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		bookings := apiGroup.Group("/bookings")
		{
			bookings.GET("", bookingHandler.List)
			bookings.POST("", bookingHandler.Create)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id", bookingHandler.Update)
			bookings.DELETE("/:id", bookingHandler.Delete)
		}

		regions := apiGroup.Group("/regions")
		{
			regions.GET("", regionHandler.List)
			regions.POST("", regionHandler.Create)
			regions.PUT("/:id", regionHandler.Update)
			regions.DELETE("/:id", regionHandler.Delete)
		}

		// 收入：GET 按日期查询，PUT/DELETE 按ID
		income := apiGroup.Group("/income")
		{
			income.GET("", incomeHandler.List)
			income.POST("", incomeHandler.Create)
			income.GET("/export/:year", exportHandler.IncomeYear)
			income.GET("/:year", incomeHandler.ForYear)
			income.GET("/:year/:month", incomeHandler.ForMonth)
			income.GET("/:year/:month/:day", incomeHandler.ForDay)
			income.PUT("/:id", incomeHandler.Update)
			income.DELETE("/:id", incomeHandler.Delete)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	return r
}
