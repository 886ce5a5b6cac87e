// @title           Book Library API
// @version         1.0
// @description     图书目录服务:图书/作者/分类/书评的查询与管理,带两层读缓存
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	// 1. 依赖注入组装(wire_gen.go生成)
	app, err := InitializeApp()
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer func() { _ = app.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. 种子数据(仅开发环境,books表非空时跳过)
	if app.Config.Database.Seed {
		if err := app.Seeder.Seed(ctx); err != nil {
			app.Logger.Fatal("种子数据写入失败", zap.Error(err))
		}
	}

	// 3. 启动HTTP服务
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}

	go func() {
		app.Logger.Info("服务启动",
			zap.String("addr", srv.Addr),
			zap.String("mode", app.Config.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 4. 优雅停机
	<-ctx.Done()
	app.Logger.Info("收到退出信号,开始停机")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("停机超时,强制退出", zap.Error(err))
	}
	app.Logger.Info("服务已退出")
}
