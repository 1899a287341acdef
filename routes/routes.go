package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/configs"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/controllers"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/middlewares"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/services"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.EventHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	tableSvc := services.NewTableService(db, tableRepo, hub)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, tableRepo, hub)
	gateway := services.NewHTTPGateway(cfg.GatewayURL, cfg.GatewayKey)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, gateway)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc, menuRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	// Realtime event stream (all observers: staff consoles + customer pages)
	r.GET("/ws/events", hub.HandleWebSocket)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}
	a.POST("/register", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), authCtrl.Register)

	// Customer surface (table-scoped, unauthenticated)
	r.GET("/t/:number/menu", tableCtrl.Menu)
	r.POST("/orders", orderCtrl.Create)
	r.POST("/orders/:id/items", orderCtrl.AddItems)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.POST("/payments/intent", paymentCtrl.CreateIntent)
	r.POST("/payments/verify", paymentCtrl.Verify)

	// Staff console
	staff := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "admin"))
	{
		staff.GET("/orders", orderCtrl.ListActive)
		staff.PUT("/orders/:id/status", orderCtrl.UpdateStatus)
		staff.POST("/orders/:id/complete", orderCtrl.Complete)
		staff.GET("/orders/:id/bill", orderCtrl.Bill)
		staff.GET("/orders/:id/payments", paymentCtrl.ListForOrder)

		staff.GET("/tables", tableCtrl.List)
		staff.POST("/tables", tableCtrl.Create)
		staff.GET("/tables/:id", tableCtrl.Detail)
		staff.PATCH("/tables/:id", tableCtrl.Update)
		staff.POST("/tables/:id/occupy", tableCtrl.SetOccupied)
		staff.POST("/tables/:id/free", tableCtrl.Free)
		staff.POST("/tables/:id/assign", tableCtrl.Assign)
		staff.POST("/tables/merge", tableCtrl.Merge)
		staff.GET("/tables/:id/orders", orderCtrl.ListByTable)

		staff.GET("/menu", menuCtrl.List)
		staff.GET("/menu/:id", menuCtrl.Detail)
		staff.POST("/menu", menuCtrl.Create)
		staff.PATCH("/menu/:id", menuCtrl.Update)
		staff.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)
	}

	// Admin-only corrections
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.DELETE("/orders/:id", orderCtrl.Delete)
		admin.DELETE("/tables/:id", tableCtrl.Delete)
		admin.DELETE("/menu/:id", menuCtrl.Delete)
	}
}
