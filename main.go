package main

import (
	"log"

	"storefront-api/config"
	_ "storefront-api/docs"
	"storefront-api/middleware"
	"storefront-api/routes"

	"github.com/gin-gonic/gin"
)

// @title Storefront API
// @version 1.0
// @description E-commerce storefront and admin API: catalog, taxonomy, FAQs, banners, SEO and image hosting.
// @BasePath /api
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name authToken
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
