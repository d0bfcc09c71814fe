package routes

import (
	"net/http"

	"fidexia/backend/controllers"
	"fidexia/backend/middlewares"

	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine, d *controllers.Deps) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/sessions", controllers.CreateSession(d))

		priv := api.Group("/")
		priv.Use(middlewares.Session(d.Cfg.JWTSecret, d.Store))
		priv.GET("screen", controllers.GetScreen(d))
		priv.POST("navigate", controllers.Navigate(d))
		priv.POST("logout", controllers.Logout(d))
		// Header overlays
		priv.POST("overlays/:name/toggle", controllers.ToggleOverlay(d))
		priv.POST("overlays/close", controllers.CloseOverlays(d))
		// Login and registration
		priv.POST("auth/tab", controllers.SetRoleTab(d))
		priv.POST("auth/login", controllers.Login(d))
		priv.POST("register/next", controllers.RegisterNext(d))
		priv.POST("register/previous", controllers.RegisterPrevious(d))
		priv.POST("register/verify", controllers.VerifyEmail(d))
		// Project submission
		priv.POST("projects/new/next", controllers.ProjectNext(d))
		priv.POST("projects/new/previous", controllers.ProjectPrevious(d))
		priv.POST("projects/new/submit", controllers.SubmitProject(d))
		// Investing
		priv.POST("opportunities/:index/select", controllers.SelectOpportunity(d))
		priv.POST("investments/confirm", controllers.ConfirmInvestment(d))
		priv.GET("portfolio/export", controllers.ExportPortfolio(d))
		priv.POST("filters", controllers.SetFilters(d))
		// Community and learning
		priv.POST("forum/category", controllers.SetForumCategory(d))
		priv.POST("forum/posts/:id/like", controllers.LikePost(d))
		priv.POST("learning/role", controllers.SetLearningRole(d))
		// Messages, notifications, profile
		priv.POST("messages/:id/select", controllers.SelectChat(d))
		priv.POST("messages/:id/send", controllers.SendMessage(d))
		priv.POST("notifications/:id/open", controllers.OpenNotification(d))
		priv.POST("notifications/read-all", controllers.MarkAllRead(d))
		priv.POST("profile/tab", controllers.SetProfileTab(d))
		priv.POST("profile/editing", controllers.SetProfileEditing(d))
	}
}
