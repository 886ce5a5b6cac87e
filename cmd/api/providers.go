package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/booklibrary/docs" // swagger文档注册
	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	"github.com/xiebiao/booklibrary/internal/infrastructure/cache"
	"github.com/xiebiao/booklibrary/internal/infrastructure/config"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/booklibrary/internal/interface/http/handler"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
	"github.com/xiebiao/booklibrary/pkg/jwt"
	"github.com/xiebiao/booklibrary/pkg/logger"
	"github.com/xiebiao/booklibrary/pkg/metrics"
	"github.com/xiebiao/booklibrary/pkg/response"
)

// App 应用组装结果
// 注入器的最终产出:路由引擎、配置与种子写入器都交给main使用
type App struct {
	Config *config.Config
	Engine *gin.Engine
	Logger *zap.Logger
	Seeder *mysql.Seeder
}

// newApp 组装App
func newApp(cfg *config.Config, engine *gin.Engine, log *zap.Logger, seeder *mysql.Seeder) *App {
	return &App{
		Config: cfg,
		Engine: engine,
		Logger: log,
		Seeder: seeder,
	}
}

// provideLogger 从配置创建zap日志器
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideLocalCache 创建本地缓存层(滑动TTL)
func provideLocalCache(cfg *config.Config) appbook.LocalCache {
	return cache.NewLocalCache(cfg.Cache.LocalTTL)
}

// provideSharedCache 创建共享缓存层(Redis,绝对TTL)
func provideSharedCache(client *goredis.Client, cfg *config.Config, log *zap.Logger) appbook.SharedCache {
	return redis.NewCacheStore(client, cfg.Cache.SharedTTL, log)
}

// provideGinEngine 创建并配置Gin引擎
// 所有路由在此注册:读接口公开,写接口挂JWT认证中间件
func provideGinEngine(
	cfg *config.Config,
	log *zap.Logger,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := authMiddleware.RequireAuth()

	v1 := r.Group("/api/v1")
	{
		// 图书模块:读公开,写需登录
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.GetBooks)
			books.GET("/paged", bookHandler.GetBooksPaged)
			books.GET("/search", bookHandler.SearchBooks)
			books.GET("/search/paged", bookHandler.SearchBooksPaged)
			books.GET("/ratings", bookHandler.GetBookRatings)
			books.GET("/year/:year", bookHandler.GetBooksByYear)
			books.GET("/author/:authorId", bookHandler.GetBooksByAuthor)
			books.GET("/author/:authorId/paged", bookHandler.GetBooksByAuthorPaged)
			books.GET("/category/:categoryId", bookHandler.GetBooksByCategory)
			books.GET("/category/:categoryId/paged", bookHandler.GetBooksByCategoryPaged)
			books.GET("/:id", bookHandler.GetBook)

			books.POST("", requireAuth, bookHandler.CreateBook)
			books.PUT("/:id", requireAuth, bookHandler.UpdateBook)
			books.DELETE("/:id", requireAuth, bookHandler.DeleteBook)
		}

		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)

			authors.POST("", requireAuth, authorHandler.CreateAuthor)
			authors.PUT("/:id", requireAuth, authorHandler.UpdateAuthor)
			authors.DELETE("/:id", requireAuth, authorHandler.DeleteAuthor)
		}

		// 分类模块
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)

			categories.POST("", requireAuth, categoryHandler.CreateCategory)
			categories.PUT("/:id", requireAuth, categoryHandler.UpdateCategory)
			categories.DELETE("/:id", requireAuth, categoryHandler.DeleteCategory)
		}

		// 书评模块
		reviews := v1.Group("/reviews")
		{
			reviews.GET("/book/:bookId", reviewHandler.ListReviewsByBook)
			reviews.GET("/:id", reviewHandler.GetReview)

			reviews.POST("", requireAuth, reviewHandler.CreateReview)
			reviews.PUT("/:id", requireAuth, reviewHandler.UpdateReview)
			reviews.DELETE("/:id", requireAuth, reviewHandler.DeleteReview)
		}
	}

	return r
}
