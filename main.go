package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DennisSchenkel/sessionminds-backend/config"
	"github.com/DennisSchenkel/sessionminds-backend/controllers"
	"github.com/DennisSchenkel/sessionminds-backend/infra"
	"github.com/DennisSchenkel/sessionminds-backend/middlewares"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/DennisSchenkel/sessionminds-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, authConfig config.AuthConfig) (*gin.Engine, error) {
	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)
	tokenService, err := services.NewTokenService(authConfig, tokenRepository)
	if err != nil {
		return nil, err
	}
	authService := services.NewAuthService(authRepository, tokenService, authConfig.RotateRefreshTokens)
	authController := controllers.NewAuthController(authService)

	profileRepository := repositories.NewProfileRepository(db)
	profileService := services.NewProfileService(profileRepository, authRepository)
	profileController := controllers.NewProfileController(profileService)

	toolRepository := repositories.NewToolRepository(db)
	toolService := services.NewToolService(toolRepository, authRepository)
	toolController := controllers.NewToolController(toolService)

	topicRepository := repositories.NewTopicRepository(db)
	topicService := services.NewTopicService(topicRepository)
	topicController := controllers.NewTopicController(topicService, toolService)

	categoryRepository := repositories.NewCategoryRepository(db)
	categoryService := services.NewCategoryService(categoryRepository)
	categoryController := controllers.NewCategoryController(categoryService)

	voteRepository := repositories.NewVoteRepository(db)
	voteService := services.NewVoteService(voteRepository, toolRepository)
	voteController := controllers.NewVoteController(voteService)

	commentRepository := repositories.NewCommentRepository(db)
	commentService := services.NewCommentService(commentRepository, toolRepository)
	commentController := controllers.NewCommentController(commentService)

	r := gin.Default()
	r.Use(cors.Default())

	requireAuth := middlewares.AuthMiddleware(authService)
	optionalAuth := middlewares.OptionalAuthMiddleware(authService)
	adminOnly := middlewares.RoleBasedAccessControl("admin")

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Welcome to the SessionMinds API."})
	})

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/logout", authController.Logout)
	r.GET("/protected", requireAuth, authController.Protected)

	tokenRouter := r.Group("/api/token")
	tokenRouter.POST("/refresh", authController.RefreshToken)
	tokenRouter.POST("/verify", authController.VerifyToken)
	tokenRouter.POST("/blacklist", authController.BlacklistToken)

	profileRouter := r.Group("/profiles", optionalAuth)
	profileRouter.GET("", profileController.FindAll)
	profileRouter.GET("/:id", profileController.FindByID)
	profileRouter.GET("/user/:userID", profileController.FindByUserID)
	profileRouterWithAuth := r.Group("/profiles", requireAuth)
	profileRouterWithAuth.PUT("/:id", profileController.Update)

	userRouter := r.Group("/users", requireAuth)
	userRouter.GET("", profileController.FindAllUsers)
	userRouter.GET("/:id", profileController.FindUserByID)
	userRouter.PUT("/:id", profileController.UpdateUser)
	userRouter.DELETE("/:id", profileController.DeleteUser)

	toolRouter := r.Group("/tools", optionalAuth)
	toolRouter.GET("", toolController.FindAll)
	toolRouter.GET("/:id", toolController.FindByID)
	toolRouter.GET("/tool/:slug", toolController.FindBySlug)
	toolRouter.GET("/user/:userID", toolController.FindByUser)
	toolRouterWithAuth := r.Group("/tools", requireAuth)
	toolRouterWithAuth.POST("", toolController.Create)
	toolRouterWithAuth.PUT("/:id", toolController.Update)
	toolRouterWithAuth.DELETE("/:id", toolController.Delete)

	topicRouter := r.Group("/topics", optionalAuth)
	topicRouter.GET("", topicController.FindAll)
	topicRouter.GET("/:slug", topicController.FindBySlug)
	topicRouter.GET("/id/:id", topicController.FindByID)
	topicRouter.GET("/list/:slug", topicController.FindToolsBySlug)
	topicRouterWithAdminAuth := r.Group("/topics", requireAuth, adminOnly)
	topicRouterWithAdminAuth.POST("", topicController.Create)
	topicRouterWithAdminAuth.PUT("/id/:id", topicController.Update)
	topicRouterWithAdminAuth.DELETE("/id/:id", topicController.Delete)

	r.GET("/icons", topicController.FindAllIcons)

	categoryRouter := r.Group("/categories", optionalAuth)
	categoryRouter.GET("", categoryController.FindAll)
	categoryRouter.GET("/:slug", categoryController.FindBySlug)
	r.GET("/category/:id", categoryController.FindByID)
	categoryRouterWithAdminAuth := r.Group("/categories", requireAuth, adminOnly)
	categoryRouterWithAdminAuth.POST("", categoryController.Create)
	categoryRouterWithAdminAuth.PUT("/id/:id", categoryController.Update)
	categoryRouterWithAdminAuth.DELETE("/id/:id", categoryController.Delete)

	voteRouter := r.Group("/votes", optionalAuth)
	voteRouter.GET("", voteController.FindAll)
	voteRouter.GET("/:id", voteController.FindByID)
	voteRouter.GET("/tool/:id", voteController.FindByTool)
	voteRouterWithAuth := r.Group("/votes", requireAuth)
	voteRouterWithAuth.POST("", voteController.Create)
	voteRouterWithAuth.DELETE("/:id", voteController.Delete)

	commentRouter := r.Group("/comments", optionalAuth)
	commentRouter.GET("/tool/:id", commentController.FindByTool)
	commentRouter.GET("/:id", commentController.FindByID)
	commentRouterWithAuth := r.Group("/comments", requireAuth)
	commentRouterWithAuth.POST("/tool/:id", commentController.Create)
	commentRouterWithAuth.PUT("/:id", commentController.Update)
	commentRouterWithAuth.DELETE("/:id", commentController.Delete)

	return r, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Icon{},
		&models.Topic{},
		&models.Category{},
		&models.Tool{},
		&models.Vote{},
		&models.Comment{},
		&models.BlacklistedToken{},
	)
}

func main() {
	infra.InitLogger()
	infra.Initialize()

	authConfig, err := config.LoadAuthConfig()
	if err != nil {
		infra.Logger.Fatalf("Failed to load auth config: %v", err)
	}

	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := autoMigrate(db); err != nil {
			infra.Logger.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// Expired blacklist entries guard nothing; drop them on boot.
	if err := repositories.NewTokenRepository(db).CleanExpiredTokens(); err != nil {
		infra.Logger.Warnf("Failed to clean expired blacklist entries: %v", err)
	}

	r, err := setupRouter(db, authConfig)
	if err != nil {
		infra.Logger.Fatalf("Failed to set up router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		infra.Logger.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			infra.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		infra.Logger.Fatalf("Server forced to shutdown: %v", err)
	}
	infra.Logger.Info("Server exited")
}
