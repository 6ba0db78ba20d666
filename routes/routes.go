package routes

import (
	"storefront-api/controllers"
	"storefront-api/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	categoryCtrl := controllers.NewCategoryController()
	collectionCtrl := controllers.NewCollectionController()
	faqCtrl := controllers.NewFAQController()
	bannerCtrl := controllers.NewBannerController()
	seoCtrl := controllers.NewSeoController()
	cloudinaryCtrl := controllers.NewCloudinaryController()
	contactCtrl := controllers.NewContactController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.POST("/auth/login", authCtrl.Login)
		api.POST("/auth/register", authCtrl.Register)
		api.POST("/auth/logout", authCtrl.Logout)

		api.GET("/products", productCtrl.GetProducts)
		api.GET("/products/:slug", productCtrl.GetProductBySlug)
		api.GET("/categories", categoryCtrl.GetCategories)
		api.GET("/collections", collectionCtrl.GetCollections)
		api.GET("/faqs", faqCtrl.GetFAQs)
		api.GET("/faqs/:id", faqCtrl.GetFAQByID)
		api.GET("/banners", bannerCtrl.GetBanners)
		api.GET("/seo/:pageSlug", seoCtrl.GetPageSeo)
		api.POST("/contact", contactCtrl.SendInquiry)
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/auth/me", authCtrl.Me)
	}

	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:slug", productCtrl.UpdateProduct)
		admin.DELETE("/products/:slug", productCtrl.DeleteProduct)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.POST("/collections", collectionCtrl.CreateCollection)
		admin.PATCH("/collections/:id", collectionCtrl.UpdateCollection)
		admin.DELETE("/collections/:id", collectionCtrl.DeleteCollection)

		admin.POST("/faqs", faqCtrl.CreateFAQ)
		admin.PATCH("/faqs/:id", faqCtrl.UpdateFAQ)
		admin.DELETE("/faqs/:id", faqCtrl.DeleteFAQ)

		admin.POST("/banners", bannerCtrl.CreateBanner)
		admin.PATCH("/banners/:id", bannerCtrl.UpdateBanner)
		admin.DELETE("/banners/:id", bannerCtrl.DeleteBanner)

		admin.PUT("/seo/:pageSlug", seoCtrl.UpsertPageSeo)

		admin.POST("/cloudinary/upload", cloudinaryCtrl.UploadImage)
		admin.POST("/cloudinary/delete", cloudinaryCtrl.DeleteImage)
	}
}
