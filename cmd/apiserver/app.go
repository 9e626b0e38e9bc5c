package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/consumer"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/modules/mdanalysis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/repo/rporder"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/handlers/batch"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/handlers/reports"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/handlers/trends"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/routers"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/services/svbatch"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/services/svcallback"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/services/svreport"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/config"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/infra/mysql"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/infra/redis"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/lmstfy"
	"github.com/mahirr476/Paragon-procurement-App-sub000/pkg/logger"
)

// App 应用组件集合
type App struct {
	Engine           *gin.Engine
	CallbackConsumer *consumer.CallbackConsumer
}

// InitializeApp 组装依赖并初始化应用
func InitializeApp(cfg *config.Config, log logger.Logger) (*App, func(), error) {
	// 基础设施
	orderDAO, err := mysql.NewOrderDAO(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("init mysql failed: %w", err)
	}

	pubsub, err := redis.NewPubSub(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		_ = orderDAO.Close()
		return nil, nil, fmt.Errorf("init redis failed: %w", err)
	}

	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		_ = orderDAO.Close()
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("init lmstfy failed: %w", err)
	}

	notifyChannel := cfg.Redis.NotifyChannel
	if notifyChannel == "" {
		notifyChannel = "analysis:result"
	}

	// 仓储与模块
	batchRepo := rporder.NewBatchRepository(orderDAO.DB())
	analysisModule := mdanalysis.NewAnalysisModule(lmstfyClient, pubsub, cfg.Lmstfy.Queue, notifyChannel)

	// 服务
	batchService := svbatch.NewBatchService(batchRepo, analysisModule)
	reportService := svreport.NewReportService(batchRepo)
	callbackService := svcallback.NewCallbackService(batchRepo, pubsub, notifyChannel, log)

	// HTTP 处理器与路由
	batchHandler := batch.NewBatchHandler(batchService)
	trendHandler := trends.NewTrendHandler(reportService)
	reportHandler := reports.NewReportHandler(reportService)
	engine := routers.SetupRoutes(batchHandler, trendHandler, reportHandler)

	// Callback Consumer
	callbackConsumer := consumer.NewCallbackConsumer(lmstfyClient, callbackService, &consumer.Config{
		QueueName:    cfg.Lmstfy.CallbackQueue,
		Timeout:      3 * time.Second,
		TTR:          30 * time.Second,
		PollInterval: time.Second,
	}, log)

	cleanup := func() {
		_ = pubsub.Close()
		_ = orderDAO.Close()
	}

	return &App{
		Engine:           engine,
		CallbackConsumer: callbackConsumer,
	}, cleanup, nil
}
