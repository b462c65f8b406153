package models

// Built-in schema variant names.
const (
	VariantThemed  = "themed"
	VariantClassic = "classic"
)

// SchemaVariant selects which JSON shape is requested from the model and
// whether the completion is cleaned before parsing.
type SchemaVariant struct {
	Name            string `yaml:"name" json:"name"`
	IncludeTheme    bool   `yaml:"include_theme" json:"include_theme"`
	CleanCompletion bool   `yaml:"clean_completion" json:"clean_completion"`
	SystemPrompt    string `yaml:"system_prompt" json:"-"`
}

// BuiltinVariant returns the named built-in variant.
func BuiltinVariant(name string) (SchemaVariant, bool) {
	switch name {
	case VariantThemed:
		return SchemaVariant{Name: VariantThemed, IncludeTheme: true, CleanCompletion: true}, true
	case VariantClassic:
		return SchemaVariant{Name: VariantClassic, IncludeTheme: false, CleanCompletion: false}, true
	}
	return SchemaVariant{}, false
}
