package routes

import (
	"creditapp-backend/config"
	"creditapp-backend/controllers"
	"creditapp-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controllers groups the explicitly constructed handlers the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Customer *controllers.CustomerController
	Credit   *controllers.CreditController
}

func SetupRouter(cfg *config.Config, log *logrus.Logger, ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(log))

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctl.Auth.Login)
	}

	// Registration stays outside the token guard
	r.POST("/api/customers", ctl.Customer.Create)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg.JWTSecret))
	{
		customers := api.Group("/customers")
		{
			customers.GET("/:id", ctl.Customer.Get)
			customers.PATCH("/:id", ctl.Customer.Update)
			customers.DELETE("/:id", ctl.Customer.Delete)
		}

		credits := api.Group("/credits")
		{
			credits.POST("", ctl.Credit.Create)
			credits.GET("", ctl.Credit.List)
			credits.GET("/:creditCode", ctl.Credit.GetByCode)
		}
	}

	return r
}
