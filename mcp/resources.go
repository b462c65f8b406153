package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	promptResourceURI = "pumpai://prompt"
	vibesResourceURI  = "pumpai://vibes"
)

// registerResources registers all MCP resources
func (s *MCPServer) registerResources() {
	promptResource := mcp.NewResource(promptResourceURI,
		"系统提示词",
		mcp.WithMIMEType("text/plain"),
		mcp.WithResourceDescription("当前 schema 变体使用的系统提示词"),
	)
	s.mcpServer.AddResource(promptResource, s.handlePromptResource)

	vibesResource := mcp.NewResource(vibesResourceURI,
		"风格列表",
		mcp.WithMIMEType("text/markdown"),
		mcp.WithResourceDescription("支持的 vibe 及其语气说明"),
	)
	s.mcpServer.AddResource(vibesResource, s.handleVibesResource)
}

func (s *MCPServer) handlePromptResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      promptResourceURI,
			MIMEType: "text/plain",
			Text:     s.generator.SystemPrompt(),
		},
	}, nil
}

func (s *MCPServer) handleVibesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      vibesResourceURI,
			MIMEType: "text/markdown",
			Text:     formatVibes(),
		},
	}, nil
}
