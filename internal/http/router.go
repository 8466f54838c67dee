package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	intconfig "carrental-backend/internal/config"
	h "carrental-backend/internal/http/handlers"
	"carrental-backend/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())
	if env.MetricsEnable {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	_ = r.SetTrustedProxies(nil)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(env.JWTSecret))

		bookings := authed.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id/details", h.GetBookingDetails)
		bookings.POST("", h.CreateBooking)
		bookings.PATCH("/:id", h.EditBooking)
		bookings.PATCH("/:id/end", h.EndBooking)
		bookings.PATCH("/:id/cancel", h.CancelBooking)

		cars := authed.Group("/cars")
		cars.GET("", h.GetCars)
		cars.POST("", h.CreateCar)
		cars.PUT("/:id", h.UpdateCar)
		cars.DELETE("/:id", h.DeleteCar)
		cars.GET("/report/:id", h.GetCarReport)

		drivers := authed.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		customers := authed.Group("/customers")
		customers.GET("", h.GetCustomers)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)

		expenses := authed.Group("/expenses")
		expenses.GET("", h.GetExpenses)
		expenses.POST("", h.CreateExpense)
		expenses.PUT("/:id", h.UpdateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)

		reports := authed.Group("/reports")
		reports.GET("/monthly", h.GetMonthlyReport)

		// Employee and stakeholder administration is admin-only.
		admin := authed.Group("")
		admin.Use(middleware.RequireRole("admin"))

		employees := admin.Group("/employees")
		employees.GET("", h.GetEmployees)
		employees.POST("", h.CreateEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)

		stakeholders := admin.Group("/stakeholders")
		stakeholders.GET("", h.GetStakeholders)
		stakeholders.POST("", h.CreateStakeholder)
		stakeholders.PUT("/:id", h.UpdateStakeholder)
		stakeholders.DELETE("/:id", h.DeleteStakeholder)
		stakeholders.GET("/details/:id", h.GetStakeholderDetails)
	}

	return r
}
