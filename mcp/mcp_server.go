package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/services"

	"github.com/mark3labs/mcp-go/server"
)

// Generator is the part of services.WebsiteGenerator the MCP surface needs.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (map[string]any, error)
	SystemPrompt() string
}

// MCPServer exposes website generation to MCP clients
type MCPServer struct {
	generator Generator
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(generator Generator) *MCPServer {
	s := &MCPServer{generator: generator}

	s.mcpServer = server.NewMCPServer(
		"pumpai-backend",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Server returns the underlying MCP server
func (s *MCPServer) Server() *server.MCPServer {
	return s.mcpServer
}

// formatWebsiteContent renders generated copy as markdown
func formatWebsiteContent(req models.GenerationRequest, content *models.WebsiteContent) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("# %s ($%s)\n\n", req.ProjectName, req.Ticker))
	result.WriteString(fmt.Sprintf("- **Vibe**: %s\n", req.Vibe))
	if content.Theme != "" {
		result.WriteString(fmt.Sprintf("- **Theme**: %s\n", content.Theme))
	}

	if content.HeroTitle != "" {
		result.WriteString(fmt.Sprintf("\n## %s\n", content.HeroTitle))
	}
	if content.HeroSubtitle != "" {
		result.WriteString(fmt.Sprintf("\n%s\n", content.HeroSubtitle))
	}
	if content.Tagline != "" {
		result.WriteString(fmt.Sprintf("\n> %s\n", content.Tagline))
	}

	if len(content.Features) > 0 {
		result.WriteString("\n## Features\n")
		for _, f := range content.Features {
			result.WriteString(fmt.Sprintf("- **%s**: %s\n", f.Title, f.Description))
		}
	}

	if len(content.LoreParagraphs) > 0 {
		result.WriteString("\n## Lore\n")
		for _, p := range content.LoreParagraphs {
			result.WriteString(fmt.Sprintf("\n%s\n", p))
		}
	}

	if len(content.TokenomicsPoints) > 0 {
		result.WriteString("\n## Tokenomics\n")
		for _, p := range content.TokenomicsPoints {
			result.WriteString(fmt.Sprintf("- %s\n", p))
		}
	}

	if len(content.RoadmapPhases) > 0 {
		result.WriteString("\n## Roadmap\n")
		for _, phase := range content.RoadmapPhases {
			result.WriteString(fmt.Sprintf("\n### %s\n%s\n", phase.Title, phase.Description))
		}
	}

	if len(content.FAQ) > 0 {
		result.WriteString("\n## FAQ\n")
		for _, item := range content.FAQ {
			result.WriteString(fmt.Sprintf("\n**Q: %s**\n\nA: %s\n", item.Question, item.Answer))
		}
	}

	return result.String()
}

// formatRawJSON appends the extracted object so clients can reuse it verbatim
func formatRawJSON(obj map[string]any) string {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\n---\n\n```json\n%s\n```\n", data)
}

// formatVibes lists the accepted vibes and their tone instructions
func formatVibes() string {
	var result strings.Builder
	result.WriteString("# Vibes\n\n")
	result.WriteString(fmt.Sprintf("共 %d 种风格，默认 `%s`\n\n", len(models.Vibes), models.DefaultVibe))
	for _, v := range models.Vibes {
		result.WriteString(fmt.Sprintf("- **%s**: %s\n", v, services.VibeTones[v]))
	}
	return result.String()
}
