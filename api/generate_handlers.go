package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/services"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/utils"
)

// maxRequestBody bounds the inbound JSON body.
const maxRequestBody = 64 * 1024

const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidBody      = "invalid request body"
	msgInvalidJSON      = "AI returned invalid JSON"
	msgGenerationFailed = "Failed to generate website content"
	msgNotInitialized   = "website generator is not initialized"
)

// WebsiteGenerator produces landing-page content for a validated request.
type WebsiteGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (map[string]any, error)
}

var websiteGenerator WebsiteGenerator

// SetWebsiteGenerator 设置网站文案生成服务
func SetWebsiteGenerator(g WebsiteGenerator) {
	websiteGenerator = g
}

// HandleGenerateWebsite validates the request, runs one generation and relays the
// extracted object.
func HandleGenerateWebsite(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w.Header())

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	if websiteGenerator == nil {
		writeError(w, http.StatusInternalServerError, msgNotInitialized)
		return
	}

	var req models.GenerationRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("⚠️ 请求体解析失败 [%s]: %v", RequestIDFromContext(r.Context()), err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := utils.ValidateGenerationRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, utils.ErrMissingRequiredFields.Error())
		return
	}

	content, err := websiteGenerator.Generate(r.Context(), req)
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, content)
}

func writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	id := RequestIDFromContext(r.Context())

	var invalid *services.InvalidCompletionError
	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   msgInvalidJSON,
			"rawText": invalid.Text,
		})
	case errors.Is(err, services.ErrUpstreamUnavailable):
		log.Printf("❌ Groq API 超时 [%s]: %v", id, err)
		writeError(w, http.StatusGatewayTimeout, msgGenerationFailed)
	default:
		log.Printf("❌ Groq API 错误 [%s]: %v", id, err)
		writeError(w, http.StatusInternalServerError, msgGenerationFailed)
	}
}
