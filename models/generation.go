package models

import "encoding/json"

// Vibe is the tone label a caller picks for the generated copy.
type Vibe string

const (
	VibeDegen  Vibe = "degen"
	VibeCute   Vibe = "cute"
	VibeAI     Vibe = "ai"
	VibeFrog   Vibe = "frog"
	VibeSimple Vibe = "simple"
)

// DefaultVibe is used when the caller sends no vibe or one we don't know.
const DefaultVibe = VibeDegen

// Vibes lists every supported vibe in prompt order.
var Vibes = []Vibe{VibeDegen, VibeCute, VibeAI, VibeFrog, VibeSimple}

// Valid reports whether v is one of the known vibes.
func (v Vibe) Valid() bool {
	for _, known := range Vibes {
		if v == known {
			return true
		}
	}
	return false
}

// GenerationRequest 网站文案生成请求
type GenerationRequest struct {
	ProjectName  string `json:"project_name" validate:"required"`
	Ticker       string `json:"ticker" validate:"required"`
	Vibe         Vibe   `json:"vibe"`
	OptionalNote string `json:"optional_note"`
}

// UnmarshalJSON requires string project_name and ticker but tolerates any JSON value for
// vibe and optional_note; non-string values decode as empty.
func (r *GenerationRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProjectName  string          `json:"project_name"`
		Ticker       string          `json:"ticker"`
		Vibe         json.RawMessage `json:"vibe"`
		OptionalNote json.RawMessage `json:"optional_note"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ProjectName = raw.ProjectName
	r.Ticker = raw.Ticker
	r.Vibe = Vibe(optionalString(raw.Vibe))
	r.OptionalNote = optionalString(raw.OptionalNote)
	return nil
}

func optionalString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
