package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/coursewave/coursewave-app/internal/app/middleware"
	"github.com/coursewave/coursewave-app/pkg/domain/model"
	article_handler "github.com/coursewave/coursewave-app/pkg/handler/article"
	auth_handler "github.com/coursewave/coursewave-app/pkg/handler/auth"
	course_handler "github.com/coursewave/coursewave-app/pkg/handler/course"
	statistics_handler "github.com/coursewave/coursewave-app/pkg/handler/statistics"
	user_handler "github.com/coursewave/coursewave-app/pkg/handler/user"
)

// Router bundles the application's routes and the handlers they depend on.
type Router struct {
	authHandler       *auth_handler.Handler
	userHandler       *user_handler.Handler
	articleHandler    *article_handler.Handler
	courseHandler     *course_handler.Handler
	statisticsHandler *statistics_handler.Handler
	mw                *middleware.Middleware
}

// NewRouter receives all handlers through dependency injection.
func NewRouter(
	authHandler *auth_handler.Handler,
	userHandler *user_handler.Handler,
	articleHandler *article_handler.Handler,
	courseHandler *course_handler.Handler,
	statisticsHandler *statistics_handler.Handler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		userHandler:       userHandler,
		articleHandler:    articleHandler,
		courseHandler:     courseHandler,
		statisticsHandler: statisticsHandler,
		mw:                mw,
	}
}

// Setup registers every route onto the gin engine. This is the single
// entry point called during application startup.
func (r *Router) Setup(engine *gin.Engine) {
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := engine.Group("/api")

	r.registerAuthRoutes(apiGroup)
	r.registerUserRoutes(apiGroup)
	r.registerArticleRoutes(apiGroup)
	r.registerCourseRoutes(apiGroup)
	r.registerStatisticsRoutes(apiGroup)
}

// registerAuthRoutes wires registration, login and token exchange.
func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh-token", r.authHandler.Refresh)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/captcha", r.authHandler.Captcha)
	}
}

func (r *Router) registerUserRoutes(api *gin.RouterGroup) {
	user := api.Group("/user").Use(r.mw.JWTAuth())
	{
		user.GET("/info", r.authHandler.Me)
	}

	usersAdmin := api.Group("/users").Use(r.mw.JWTAuth(), r.mw.AdminAuth())
	{
		usersAdmin.GET("", r.userHandler.List)
		usersAdmin.GET("/:id", r.userHandler.Get)
		usersAdmin.PUT("/:id/role", r.userHandler.UpdateRole)
	}
}

func (r *Router) registerArticleRoutes(api *gin.RouterGroup) {
	// Management endpoints require an authenticated admin.
	articlesAdmin := api.Group("/articles").Use(r.mw.JWTAuth(), r.mw.AdminAuth())
	{
		articlesAdmin.POST("", r.articleHandler.Create)
		articlesAdmin.GET("", r.articleHandler.List)
		articlesAdmin.GET("/:id", r.articleHandler.Get)
		articlesAdmin.PUT("/:id", r.articleHandler.Update)
		articlesAdmin.DELETE("/:id", r.articleHandler.Delete)
	}

	articlesPublic := api.Group("/public/articles")
	{
		articlesPublic.GET("", r.articleHandler.ListPublished)
		articlesPublic.GET("/search", middleware.RateLimit(rate.Limit(5), 10), r.articleHandler.Search)
		articlesPublic.GET("/categories", r.articleHandler.Categories)
		// Parameterized route last, to avoid shadowing the ones above.
		articlesPublic.GET("/:slug", r.articleHandler.GetBySlug)
	}
}

func (r *Router) registerCourseRoutes(api *gin.RouterGroup) {
	// Instructors manage the catalog alongside admins.
	coursesAdmin := api.Group("/courses").Use(r.mw.JWTAuth(), r.mw.RequireRoles(model.RoleAdmin, model.RoleInstructor))
	{
		coursesAdmin.POST("", r.courseHandler.Create)
		coursesAdmin.GET("", r.courseHandler.List)
		coursesAdmin.GET("/:id", r.courseHandler.Get)
		coursesAdmin.PUT("/:id", r.courseHandler.Update)
		coursesAdmin.DELETE("/:id", r.courseHandler.Delete)
	}

	coursesPublic := api.Group("/public/courses")
	{
		coursesPublic.GET("", r.courseHandler.ListPublished)
		coursesPublic.GET("/:slug", r.courseHandler.GetBySlug)
	}

	// Enrollment needs a logged-in user of any role.
	enrollments := api.Group("/enrollments").Use(r.mw.JWTAuth())
	{
		enrollments.GET("", r.courseHandler.ListEnrollments)
		enrollments.POST("/:id", r.courseHandler.Enroll)
		enrollments.DELETE("/:id", r.courseHandler.Unenroll)
	}
}

func (r *Router) registerStatisticsRoutes(api *gin.RouterGroup) {
	statisticsAdmin := api.Group("/statistics").Use(r.mw.JWTAuth(), r.mw.AdminAuth())
	{
		statisticsAdmin.GET("/articles", r.statisticsHandler.ArticleStats)
	}
}
