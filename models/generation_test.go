package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected GenerationRequest
	}{
		{
			name:     "All strings",
			body:     `{"project_name":"FrogCoin","ticker":"FROG","vibe":"frog","optional_note":"gm"}`,
			expected: GenerationRequest{ProjectName: "FrogCoin", Ticker: "FROG", Vibe: VibeFrog, OptionalNote: "gm"},
		},
		{
			name:     "Numeric vibe",
			body:     `{"project_name":"FrogCoin","ticker":"FROG","vibe":7}`,
			expected: GenerationRequest{ProjectName: "FrogCoin", Ticker: "FROG"},
		},
		{
			name:     "Object note and null vibe",
			body:     `{"project_name":"FrogCoin","ticker":"FROG","vibe":null,"optional_note":{"a":1}}`,
			expected: GenerationRequest{ProjectName: "FrogCoin", Ticker: "FROG"},
		},
		{
			name:     "Array vibe",
			body:     `{"project_name":"FrogCoin","ticker":"FROG","vibe":["cute"],"optional_note":true}`,
			expected: GenerationRequest{ProjectName: "FrogCoin", Ticker: "FROG"},
		},
		{
			name:     "Missing optional fields",
			body:     `{"project_name":"FrogCoin","ticker":"FROG"}`,
			expected: GenerationRequest{ProjectName: "FrogCoin", Ticker: "FROG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GenerationRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGenerationRequest_UnmarshalJSON_RequiredFieldTypes(t *testing.T) {
	for _, body := range []string{
		`{"project_name":42,"ticker":"FROG"}`,
		`{"project_name":"FrogCoin","ticker":["FROG"]}`,
		`[]`,
	} {
		var got GenerationRequest
		assert.Error(t, json.Unmarshal([]byte(body), &got), body)
	}
}
