package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maxCompletionBody caps how much of the upstream response is read.
const maxCompletionBody = 1024 * 1024

// ErrMissingAPIKey is returned before any network I/O when no key is configured.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set")

// ChatRequest is a single system+user exchange.
type ChatRequest struct {
	Model       string
	Messages    []models.ChatMessage
	Temperature float64
}

// ChatClient sends a chat completion request and returns the first choice's content.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// GroqClient talks to an OpenAI-compatible /chat/completions endpoint (Groq by default).
type GroqClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewGroqClient 创建上游聊天客户端
func NewGroqClient(endpoint, apiKey string, timeout time.Duration) *GroqClient {
	return &GroqClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer("pumpai/services"),
	}
}

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete posts the request and returns choices[0].message.content. A response without
// choices yields an empty string, not an error.
func (c *GroqClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	ctx, span := c.tracer.Start(ctx, "groq.chat_completion",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.model", req.Model),
			attribute.Float64("llm.temperature", req.Temperature),
		),
	)
	defer span.End()

	content, err := c.complete(ctx, req, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("llm.completion_length", len(content)))
	return content, nil
}

func (c *GroqClient) complete(ctx context.Context, req ChatRequest, span trace.Span) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	hReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	hReq.Header.Set("Content-Type", "application/json")
	hReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(hReq)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCompletionBody))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("⚠️ Groq 返回非 2xx: %d %s | 请求头: %v",
			resp.StatusCode, utils.SanitizeURL(c.endpoint), utils.SanitizeHeaders(hReq.Header))
		if resp.StatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("upstream rejected credentials (status %d): check GROQ_API_KEY", resp.StatusCode)
		}
		return "", fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

// truncate shortens s to at most n bytes for logs and error messages, never splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
