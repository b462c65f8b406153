package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/services"
	"github.com/manishkiranshopifystore-creator/Pumpai-backend/utils"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers all MCP tools
func (s *MCPServer) registerTools() {
	vibes := make([]string, len(models.Vibes))
	for i, v := range models.Vibes {
		vibes[i] = string(v)
	}

	generateTool := mcp.NewTool("generate_website",
		mcp.WithDescription("为 meme coin 生成落地页文案 (hero、特性、故事、代币经济、路线图、FAQ)"),
		mcp.WithString("project_name",
			mcp.Required(),
			mcp.Description("项目名称"),
		),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("代币符号"),
		),
		mcp.WithString("vibe",
			mcp.Description("文案风格，默认 degen"),
			mcp.Enum(vibes...),
		),
		mcp.WithString("optional_note",
			mcp.Description("补充说明"),
		),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerateWebsite)
}

func (s *MCPServer) handleGenerateWebsite(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := models.GenerationRequest{
		ProjectName:  request.GetString("project_name", ""),
		Ticker:       request.GetString("ticker", ""),
		Vibe:         models.Vibe(request.GetString("vibe", "")),
		OptionalNote: request.GetString("optional_note", ""),
	}
	if err := utils.ValidateGenerationRequest(&req); err != nil {
		return mcp.NewToolResultError(utils.ErrMissingRequiredFields.Error()), nil
	}

	obj, err := s.generator.Generate(ctx, req)
	if err != nil {
		var invalid *services.InvalidCompletionError
		if errors.As(err, &invalid) {
			return mcp.NewToolResultError(fmt.Sprintf("AI returned invalid JSON:\n\n%s", invalid.Text)), nil
		}
		log.Printf("❌ MCP 生成失败: %v", err)
		return mcp.NewToolResultError("Failed to generate website content"), nil
	}

	req = services.NormalizeRequest(req)
	content, err := services.DecodeWebsiteContent(obj)
	if err != nil {
		// Shape drifted from the prompt; hand back the object as-is.
		log.Printf("⚠️ 生成结果结构不匹配: %v", err)
		return mcp.NewToolResultText(fmt.Sprintf("# %s ($%s)\n%s", req.ProjectName, req.Ticker, formatRawJSON(obj))), nil
	}

	return mcp.NewToolResultText(formatWebsiteContent(req, content) + formatRawJSON(obj)), nil
}
