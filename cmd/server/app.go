package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-app/internal/app/middleware"
	"github.com/coursewave/coursewave-app/internal/app/task"
	"github.com/coursewave/coursewave-app/internal/infra/persistence/database"
	ent_impl "github.com/coursewave/coursewave-app/internal/infra/persistence/ent"
	"github.com/coursewave/coursewave-app/internal/infra/router"
	"github.com/coursewave/coursewave-app/internal/pkg/version"
	"github.com/coursewave/coursewave-app/pkg/config"
	article_handler "github.com/coursewave/coursewave-app/pkg/handler/article"
	auth_handler "github.com/coursewave/coursewave-app/pkg/handler/auth"
	course_handler "github.com/coursewave/coursewave-app/pkg/handler/course"
	statistics_handler "github.com/coursewave/coursewave-app/pkg/handler/statistics"
	user_handler "github.com/coursewave/coursewave-app/pkg/handler/user"
	"github.com/coursewave/coursewave-app/pkg/idgen"
	article_service "github.com/coursewave/coursewave-app/pkg/service/article"
	"github.com/coursewave/coursewave-app/pkg/service/auth"
	course_service "github.com/coursewave/coursewave-app/pkg/service/course"
	parser_service "github.com/coursewave/coursewave-app/pkg/service/parser"
	"github.com/coursewave/coursewave-app/pkg/service/statistics"
	"github.com/coursewave/coursewave-app/pkg/service/user"
)

// App bundles the application's core components.
type App struct {
	cfg        *config.Config
	engine     *gin.Engine
	taskBroker *task.Broker
	sqlDB      *sql.DB
}

// NewApp performs all initialization and dependency injection work.
func NewApp() (*App, func(), error) {
	// --- Phase 1: load external configuration ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	// --- Phase 2: infrastructure ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating the database pool: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	cleanup := func() {
		log.Println("closing database and redis connections...")
		sqlDB.Close()
		redisClient.Close()
	}
	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, cleanup, fmt.Errorf("initializing the ID encoder: %w", err)
	}

	// --- Phase 3: repositories ---
	userRepo := ent_impl.NewUserRepo(entClient)
	articleRepo := ent_impl.NewArticleRepo(entClient)
	courseRepo := ent_impl.NewCourseRepo(entClient)
	enrollmentRepo := ent_impl.NewEnrollmentRepo(entClient)

	// --- Phase 4: services ---
	parserSvc := parser_service.NewService()
	tokenSvc, err := auth.NewTokenService(cfg, redisClient)
	if err != nil {
		return nil, cleanup, fmt.Errorf("initializing the token service: %w", err)
	}
	captchaSvc := auth.NewCaptchaService()
	authSvc := auth.NewAuthService(userRepo, tokenSvc, captchaSvc, cfg)
	userSvc := user.NewService(userRepo)
	articleSvc := article_service.NewService(articleRepo, userRepo, parserSvc)
	courseSvc := course_service.NewService(courseRepo, enrollmentRepo, parserSvc)
	statisticsSvc := statistics.NewService(articleSvc, redisClient)
	taskBroker := task.NewBroker(statisticsSvc)

	// --- Phase 5: handlers ---
	mw := middleware.NewMiddleware(tokenSvc)
	authHandler := auth_handler.NewHandler(authSvc, userSvc, captchaSvc)
	userHandler := user_handler.NewHandler(userSvc)
	articleHandler := article_handler.NewHandler(articleSvc)
	courseHandler := course_handler.NewHandler(courseSvc)
	statisticsHandler := statistics_handler.NewHandler(statisticsSvc)

	// --- Phase 6: router ---
	appRouter := router.NewRouter(
		authHandler,
		userHandler,
		articleHandler,
		courseHandler,
		statisticsHandler,
		mw,
	)

	// --- Phase 7: gin engine ---
	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, cleanup, fmt.Errorf("setting trusted proxies: %w", err)
	}
	engine.ForwardedByClientIP = true
	engine.Use(middleware.Cors())
	engine.Use(middleware.Metrics())
	appRouter.Setup(engine)

	app := &App{
		cfg:        cfg,
		engine:     engine,
		taskBroker: taskBroker,
		sqlDB:      sqlDB,
	}
	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

func (a *App) DB() *sql.DB {
	return a.sqlDB
}

func (a *App) Run() error {
	if err := a.taskBroker.Start(); err != nil {
		return fmt.Errorf("starting the task broker: %w", err)
	}
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	log.Printf("coursewave %s listening on port %s", version.GetVersion(), port)
	return a.engine.Run(":" + port)
}

func (a *App) Stop() {
	if a.taskBroker != nil {
		a.taskBroker.Stop()
		log.Println("task broker stopped.")
	}
}
