package services

import (
	"encoding/json"
	"fmt"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"
)

const promptIntro = `You are a Solana degen copywriter and UX writer for meme coin websites.

You will be given:
- project_name: name of the coin
- ticker: token ticker (e.g. "PUMP")
- vibe: tone style (e.g. "degen", "cute", "frog", "ai", "simple")
- optional_note: any extra info from the user

Return ONLY a valid JSON object in this format, with no extra text:

`

const promptSchemaBody = `  "hero_title": "",
  "hero_subtitle": "",
  "tagline": "",
  "features": [
    { "title": "", "description": "" },
    { "title": "", "description": "" },
    { "title": "", "description": "" }
  ],
  "lore_paragraphs": [
    "",
    "",
    ""
  ],
  "tokenomics_points": [
    "",
    "",
    ""
  ],
  "roadmap_phases": [
    { "title": "", "description": "" },
    { "title": "", "description": "" },
    { "title": "", "description": "" }
  ],
  "faq": [
    { "question": "", "answer": "" },
    { "question": "", "answer": "" },
    { "question": "", "answer": "" },
    { "question": "", "answer": "" }
  ]
}
`

const promptRules = `
Rules:
- hero_title: short, bold, 3–7 words.
- hero_subtitle: 1 short sentence that explains the coin or brand.
- tagline: under 12 words, feels like a slogan.
- features: talk about utility, community, AI aspect, Pump.fun readiness, etc.
- lore_paragraphs: 2–3 fun story paragraphs.
- tokenomics_points: mention things like 1B supply, 3% dev, 97% community, 0% tax if relevant.
- roadmap_phases: Phase 1 (launch), Phase 2 (community + memes), Phase 3 (DEX / integrations).
- faq: common degen questions like “Is this a rug?”, “What does {ticker} actually do?”, “How does Pump AI help?”, “Can the buy link change later?”
`

const promptThemeRule = `- theme: one of "frog", "ai", "cute", "degen", "simple"; pick the one matching vibe, or the closest fit for the project.
`

// VibeTones maps each vibe to the tone instruction given to the model.
var VibeTones = map[models.Vibe]string{
	models.VibeDegen:  "more degen slang but still readable.",
	models.VibeCute:   "playful and light.",
	models.VibeAI:     "futuristic and techy.",
	models.VibeFrog:   "pepe / frog meme style.",
	models.VibeSimple: "straightforward, clean.",
}

const promptOutro = `
Output must be STRICT JSON. 
No markdown, no comments, no additional text outside the JSON object.
`

// ClassicSystemPrompt requests the schema without a theme field.
var ClassicSystemPrompt = buildSystemPrompt(false)

// ThemedSystemPrompt requests the schema with a leading theme field.
var ThemedSystemPrompt = buildSystemPrompt(true)

func buildSystemPrompt(includeTheme bool) string {
	prompt := promptIntro + "{\n"
	if includeTheme {
		prompt += `  "theme": "",` + "\n"
	}
	prompt += promptSchemaBody + promptRules
	if includeTheme {
		prompt += promptThemeRule
	}
	prompt += "\nTone:\n"
	for _, v := range models.Vibes {
		prompt += fmt.Sprintf("- vibe = %q: %s\n", v, VibeTones[v])
	}
	return prompt + promptOutro
}

// SystemPromptFor returns the variant's override, or the built-in prompt for its shape.
func SystemPromptFor(variant models.SchemaVariant) string {
	if variant.SystemPrompt != "" {
		return variant.SystemPrompt
	}
	if variant.IncludeTheme {
		return ThemedSystemPrompt
	}
	return ClassicSystemPrompt
}

// NormalizeRequest fills defaults: unknown or missing vibe becomes degen. Notes that are
// well-formed HTML are flattened to text; every other note is sent as written.
func NormalizeRequest(req models.GenerationRequest) models.GenerationRequest {
	if !req.Vibe.Valid() {
		req.Vibe = models.DefaultVibe
	}
	req.OptionalNote = PlainText(req.OptionalNote)
	return req
}

// BuildUserMessage serialises the normalised request as the user turn.
func BuildUserMessage(req models.GenerationRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode user message: %w", err)
	}
	return string(data), nil
}
