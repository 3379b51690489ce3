package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnet/internal/app/controllers"
	"github.com/yigit/alumnet/internal/middleware"
)

// LoginPath is where unauthenticated page requests are sent
const LoginPath = "/login"

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth     *controllers.AuthController
	Profile  *controllers.ProfileController
	Resource *controllers.ResourceController
	Health   *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls Controllers, sessions *middleware.SessionMiddleware) {
	api := router.Group("/api")
	api.GET("/health", ctrls.Health.Health)

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrls.Auth.Register)
		auth.POST("/login", ctrls.Auth.Login)
		auth.POST("/logout", ctrls.Auth.Logout)
	}
	router.GET("/logout", ctrls.Auth.LogoutRedirect)

	// --- Profile reads ---
	api.GET("/profile", sessions.RequireSession(), ctrls.Profile.GetProfile)
	router.GET("/profile", sessions.RequirePageSession(LoginPath), ctrls.Profile.GetProfile)

	// --- Profile mutations ---
	profile := router.Group("/profile")
	profile.Use(sessions.RequireSession())
	{
		profile.POST("/personal/save", ctrls.Profile.SavePersonalInfo)
		profile.POST("/:kind/add", ctrls.Resource.Add)
		profile.DELETE("/:kind/:id", ctrls.Resource.Delete)
	}
}
