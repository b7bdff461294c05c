package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/langitrasa/takeout-app/controllers"
	"github.com/langitrasa/takeout-app/middlewares"
	"github.com/langitrasa/takeout-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	gateway := services.LogGateway{}
	userCtrl := controllers.NewUserController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db, gateway)
	adminOrderCtrl := controllers.NewAdminOrderController(db, gateway)
	reportCtrl := controllers.NewReportController(db)
	addressCtrl := controllers.NewAddressBookController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Callback pembayaran dari gateway (tanpa auth, diverifikasi via nomor order)
	r.POST("/notify/payment", orderCtrl.Payment)

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/:role", controllers.PushHandler)
	}

	// ----------------------------------------------------------------
	//                      USER ROUTES
	// ----------------------------------------------------------------
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.POST("/shoppingCart/add", cartCtrl.Add)
		user.GET("/shoppingCart/list", cartCtrl.List)
		user.DELETE("/shoppingCart/clean", cartCtrl.Clean)

		user.POST("/addressBook", addressCtrl.Create)
		user.GET("/addressBook/list", addressCtrl.List)

		user.POST("/order/submit", orderCtrl.Submit)
		user.PUT("/order/payment", orderCtrl.Payment)
		user.GET("/order/orderDetail/:order_id", orderCtrl.Detail)
		user.GET("/order/historyOrders", orderCtrl.History)
		user.PUT("/order/cancel/:order_id", orderCtrl.Cancel)
		user.POST("/order/repetition/:order_id", orderCtrl.Repetition)
		user.GET("/order/reminder/:order_id", orderCtrl.Reminder)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.GET("/order/conditionSearch", adminOrderCtrl.ConditionSearch)
		admin.GET("/order/statistics", adminOrderCtrl.Statistics)
		admin.GET("/order/details/:order_id", adminOrderCtrl.Detail)
		admin.PUT("/order/confirm/:order_id", adminOrderCtrl.Confirm)
		admin.PUT("/order/rejection/:order_id", adminOrderCtrl.Rejection)
		admin.PUT("/order/delivery/:order_id", adminOrderCtrl.Delivery)
		admin.PUT("/order/complete/:order_id", adminOrderCtrl.Complete)

		admin.GET("/report/turnover", reportCtrl.Turnover)
		admin.GET("/report/users", reportCtrl.Users)
		admin.GET("/report/orders", reportCtrl.Orders)
		admin.GET("/report/top10", reportCtrl.Top10)
	}

	return r
}
