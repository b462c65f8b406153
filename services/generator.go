package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/config"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/metrics"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"
)

// Temperature is sent with every completion call.
const Temperature = 0.8

// WebsiteGenerator 网站文案生成服务
type WebsiteGenerator struct {
	client       ChatClient
	model        string
	variant      models.SchemaVariant
	systemPrompt string
	timeout      time.Duration
	recorder     metrics.Recorder
}

// NewWebsiteGenerator 创建生成服务
func NewWebsiteGenerator(cfg *config.Config, client ChatClient, recorder metrics.Recorder) *WebsiteGenerator {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &WebsiteGenerator{
		client:       client,
		model:        cfg.AIModel,
		variant:      cfg.Variant,
		systemPrompt: SystemPromptFor(cfg.Variant),
		timeout:      cfg.UpstreamTimeout,
		recorder:     recorder,
	}
}

// Model returns the model identifier sent upstream.
func (g *WebsiteGenerator) Model() string { return g.model }

// Variant returns the active schema variant.
func (g *WebsiteGenerator) Variant() models.SchemaVariant { return g.variant }

// SystemPrompt returns the fixed system instruction.
func (g *WebsiteGenerator) SystemPrompt() string { return g.systemPrompt }

// Generate makes exactly one completion call and extracts its JSON object.
// Callers must validate req first; Generate only fills defaults.
func (g *WebsiteGenerator) Generate(ctx context.Context, req models.GenerationRequest) (map[string]any, error) {
	start := time.Now()
	status := metrics.StatusSuccess
	defer func() {
		g.recorder.ObserveGeneration(g.variant.Name, status, time.Since(start))
	}()

	req = NormalizeRequest(req)
	userMessage, err := BuildUserMessage(req)
	if err != nil {
		status = metrics.StatusUpstreamError
		return nil, fmt.Errorf("%w: %v", ErrUpstreamCallFailed, err)
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	callStart := time.Now()
	rawText, err := g.client.Complete(callCtx, ChatRequest{
		Model: g.model,
		Messages: []models.ChatMessage{
			{Role: "system", Content: g.systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: Temperature,
	})
	if err != nil {
		if isTimeout(err) {
			status = metrics.StatusUpstreamTimeout
			g.recorder.ObserveUpstream("timeout", time.Since(callStart))
			return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
		status = metrics.StatusUpstreamError
		g.recorder.ObserveUpstream("error", time.Since(callStart))
		return nil, fmt.Errorf("%w: %w", ErrUpstreamCallFailed, err)
	}
	g.recorder.ObserveUpstream("ok", time.Since(callStart))

	content, err := ExtractCompletion(rawText, g.variant.CleanCompletion)
	if err != nil {
		status = metrics.StatusInvalidJSON
		var invalid *InvalidCompletionError
		if errors.As(err, &invalid) {
			log.Printf("❌ 模型返回的 JSON 无法解析 (%s/%s): %s", req.ProjectName, req.Ticker, truncate(invalid.Text, 500))
		}
		return nil, err
	}

	log.Printf("✅ 生成完成: %s ($%s) vibe=%s variant=%s 耗时: %v",
		req.ProjectName, req.Ticker, req.Vibe, g.variant.Name, time.Since(start))
	return content, nil
}

// isTimeout reports deadline expiry from either the context or the http.Client.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
