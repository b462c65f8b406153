package utils

import (
	"net/http"
	"net/url"
	"strings"
)

// SanitizeHeaders 脱敏HTTP头（隐藏敏感信息）
func SanitizeHeaders(headers http.Header) http.Header {
	sanitized := headers.Clone()

	sensitiveKeys := []string{
		"Authorization",
		"X-API-Key",
		"Cookie",
		"Set-Cookie",
		"Api-Key",
	}

	for _, key := range sensitiveKeys {
		if val := sanitized.Get(key); val != "" {
			sanitized.Set(key, SanitizeAPIKey(val))
		}
	}

	return sanitized
}

// SanitizeAPIKey 脱敏 API Key（只显示后4位）
func SanitizeAPIKey(apiKey string) string {
	if apiKey == "" {
		return "not set"
	}
	if len(apiKey) > 8 {
		return "***" + apiKey[len(apiKey)-4:]
	}
	return "***"
}

// SanitizeURL 脱敏 URL（隐藏用户信息与敏感查询参数）
func SanitizeURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return "***"
	}
	if u.User != nil {
		u.User = url.User("***")
	}

	sensitiveParams := []string{"token", "key", "password", "secret", "api_key"}
	q := u.Query()
	changed := false
	for name := range q {
		for _, param := range sensitiveParams {
			if strings.EqualFold(name, param) {
				q.Set(name, "***")
				changed = true
			}
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
