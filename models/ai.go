package models

// WebsiteContent is the landing-page copy the model is asked to produce.
// Array lengths and enum values are requested in the prompt only; nothing enforces them.
type WebsiteContent struct {
	Theme            string         `json:"theme,omitempty"`
	HeroTitle        string         `json:"hero_title"`
	HeroSubtitle     string         `json:"hero_subtitle"`
	Tagline          string         `json:"tagline"`
	Features         []Feature      `json:"features"`
	LoreParagraphs   []string       `json:"lore_paragraphs"`
	TokenomicsPoints []string       `json:"tokenomics_points"`
	RoadmapPhases    []RoadmapPhase `json:"roadmap_phases"`
	FAQ              []FAQItem      `json:"faq"`
}

// Feature 特性卡片
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RoadmapPhase 路线图阶段
type RoadmapPhase struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FAQItem 常见问题
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ChatMessage is one entry of an OpenAI-compatible messages array.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
