package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"
)

// emptyCompletion is parsed when the model returned nothing at all.
const emptyCompletion = "{}"

var (
	openingFence = regexp.MustCompile("^```[A-Za-z0-9_-]*")
	anyFence     = regexp.MustCompile("```")
)

// ErrNotJSONObject is returned when the cleaned text parses as JSON but not as an object.
var ErrNotJSONObject = errors.New("completion is not a JSON object")

// InvalidCompletionError 模型返回的文本无法解析为 JSON 对象
type InvalidCompletionError struct {
	// Text is the cleaned text that failed to parse.
	Text string
	Err  error
}

func (e *InvalidCompletionError) Error() string {
	return fmt.Sprintf("invalid completion JSON: %v", e.Err)
}

func (e *InvalidCompletionError) Unwrap() error {
	return e.Err
}

// CleanCompletion strips markdown fences and cuts the text down to the span between
// the first '{' and the last '}'. Braces are not balanced; text holding two objects
// yields a span covering both.
func CleanCompletion(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return emptyCompletion
	}

	if strings.HasPrefix(text, "```") {
		text = openingFence.ReplaceAllString(text, "")
		text = anyFence.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return text
}

// ExtractCompletion turns a completion into a JSON object. With clean set the text is
// passed through CleanCompletion first; otherwise it is only trimmed.
// The object is returned as parsed: field presence, array lengths and enum values are not checked.
func ExtractCompletion(raw string, clean bool) (map[string]any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		text = emptyCompletion
	}
	if clean {
		text = CleanCompletion(text)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, &InvalidCompletionError{Text: text, Err: err}
	}
	// "null" unmarshals into a nil map without error
	if obj == nil {
		return nil, &InvalidCompletionError{Text: text, Err: ErrNotJSONObject}
	}
	return obj, nil
}

// DecodeWebsiteContent maps an extracted object onto WebsiteContent. Missing fields stay
// empty; fields of the wrong JSON type are an error.
func DecodeWebsiteContent(obj map[string]any) (*models.WebsiteContent, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encode completion: %w", err)
	}
	var content models.WebsiteContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("decode website content: %w", err)
	}
	return &content, nil
}
