package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/api"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/config"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/mcp"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/metrics"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/services"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/tracing"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/utils"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ 加载配置失败: %v", err)
	}

	// 验证配置
	if err := cfg.Validate(); err != nil {
		log.Printf("⚠️ 配置验证警告: %v", err)
	}

	log.Printf("✅ 配置加载成功")
	log.Printf("📊 AI 端点: %s", utils.SanitizeURL(cfg.AIEndpoint))
	log.Printf("📊 AI 模型: %s", cfg.AIModel)
	log.Printf("📊 API Key: %s", utils.SanitizeAPIKey(cfg.GroqAPIKey))
	log.Printf("📊 Schema 变体: %s", cfg.Variant.Name)

	// 2. 初始化链路追踪
	otelRT, err := tracing.Setup(ctx, "pumpai-backend", cfg.TraceEnabled, cfg.TraceEndpoint)
	if err != nil {
		log.Fatalf("❌ 链路追踪初始化失败: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelRT.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ 链路追踪关闭失败: %v", err)
		}
	}()

	mux := http.NewServeMux()

	// 3. 初始化指标
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		prom, err := metrics.NewPrometheusRecorder(registry)
		if err != nil {
			log.Fatalf("❌ 指标初始化失败: %v", err)
		}
		recorder = prom
		mux.Handle("/metrics", prom.Handler())
	}

	// 4. 初始化服务
	client := services.NewGroqClient(cfg.AIEndpoint, cfg.GroqAPIKey, cfg.UpstreamTimeout)
	generator := services.NewWebsiteGenerator(cfg, client, recorder)

	// 5. 设置 API 处理器依赖
	api.SetWebsiteGenerator(generator)
	api.SetConfig(cfg)

	// 6. 初始化 MCP 服务器
	if cfg.MCPEnabled {
		mcpSrv := mcp.NewMCPServer(generator)
		mux.Handle("/mcp/", http.StripPrefix("/mcp", server.NewStreamableHTTPServer(mcpSrv.Server())))
		log.Printf("✅ MCP 服务器初始化成功")
	}

	// 7. 设置路由
	mux.HandleFunc("/api/generate-website", api.HandleGenerateWebsite)
	mux.HandleFunc("/api/generate", api.HandleGenerateWebsite)
	mux.HandleFunc("/api/system/status", api.HandleSystemStatus)
	mux.HandleFunc("/health", api.HandleHealth)

	// 8. 应用中间件
	handler := api.WrapMiddleware(mux)

	// 9. 启动服务器
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 服务器启动: http://localhost:%s", cfg.Port)
		log.Printf("🪙 生成接口: http://localhost:%s/api/generate-website", cfg.Port)
		if cfg.MCPEnabled {
			log.Printf("🔗 MCP 端点: http://localhost:%s/mcp", cfg.Port)
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ 服务器启动失败: %v", err)
		}
	case <-ctx.Done():
		log.Printf("🛑 收到退出信号，正在关闭服务器...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ 服务器关闭失败: %v", err)
		}
	}
	log.Printf("👋 服务器已退出")
}
