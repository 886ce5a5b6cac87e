//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/google/wire"

	appauthor "github.com/xiebiao/booklibrary/internal/application/author"
	appbook "github.com/xiebiao/booklibrary/internal/application/book"
	appcategory "github.com/xiebiao/booklibrary/internal/application/category"
	appreview "github.com/xiebiao/booklibrary/internal/application/review"
	"github.com/xiebiao/booklibrary/internal/domain/book"
	"github.com/xiebiao/booklibrary/internal/infrastructure/config"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/booklibrary/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/booklibrary/internal/interface/http/handler"
	"github.com/xiebiao/booklibrary/internal/interface/http/middleware"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	provideLogger,   // zap日志器
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
	mysql.NewAuthorRepository,
	mysql.NewCategoryRepository,
	mysql.NewReviewRepository,
	mysql.NewTxManager,
	mysql.NewSeeder,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// cacheSet 缓存层依赖
var cacheSet = wire.NewSet(
	provideLocalCache,  // 本地缓存(滑动TTL)
	provideSharedCache, // Redis共享缓存(绝对TTL)
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewGetBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewGetBooksByAuthorUseCase,
	appbook.NewGetBooksByCategoryUseCase,
	appbook.NewGetBooksByYearUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewBookRatingsUseCase,
	appbook.NewGetBooksPagedUseCase,
	appbook.NewGetBooksByAuthorPagedUseCase,
	appbook.NewGetBooksByCategoryPagedUseCase,
	appbook.NewSearchBooksPagedUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appauthor.NewUseCase,
	appcategory.NewUseCase,
	appreview.NewUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewReviewHandler,
)

// InitializeApp 初始化整个应用
// Wire会在编译期分析依赖关系，在wire_gen.go中生成初始化代码
func InitializeApp() (*App, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		cacheSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
		newApp,
	)
	return nil, nil
}
