package api

import (
	"net/http"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/config"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/utils"
)

var systemConfig *config.Config

// SetConfig 设置系统状态端点使用的配置
func SetConfig(cfg *config.Config) {
	systemConfig = cfg
}

// HandleHealth 健康检查
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// HandleSystemStatus reports the active model and schema variant. The API key is
// reported as set/unset only.
func HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}
	if systemConfig == nil {
		writeError(w, http.StatusInternalServerError, "config is not initialized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"ai_endpoint":      utils.SanitizeURL(systemConfig.AIEndpoint),
		"ai_model":         systemConfig.AIModel,
		"api_key_set":      systemConfig.GroqAPIKey != "",
		"schema_variant":   systemConfig.Variant.Name,
		"include_theme":    systemConfig.Variant.IncludeTheme,
		"clean_completion": systemConfig.Variant.CleanCompletion,
		"upstream_timeout": systemConfig.UpstreamTimeout.String(),
		"mcp_enabled":      systemConfig.MCPEnabled,
		"metrics_enabled":  systemConfig.MetricsEnabled,
	})
}
