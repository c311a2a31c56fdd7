// Package catalogtool exposes the tool library over MCP so downstream
// pipelines can read the schemas records were annotated against.
package catalogtool

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qazaqnlp/qural/pkg/catalog"
	"github.com/qazaqnlp/qural/pkg/models"
	"github.com/qazaqnlp/qural/pkg/server"
	"github.com/qazaqnlp/qural/pkg/tools"
	"github.com/rs/zerolog"
)

type Input struct {
	Action string `json:"action" validate:"required,oneof=list get template"`
	Name   string `json:"name,omitempty"`
}

type Tool struct {
	logger    zerolog.Logger
	validator *validator.Validate
}

func (t *Tool) Register(srv *server.Server) error {
	tool := &mcp.Tool{
		Name:        "catalog",
		Description: "Browse the annotation tool library. Actions: list (all names), get (schema by name), template (argument template by name).",
	}

	mcp.AddTool(&srv.Server, tool, t.CatalogHandler)
	t.logger.Debug().Msg("catalog tool registered")

	return nil
}

func (t *Tool) CatalogHandler(ctx context.Context, _ *mcp.CallToolRequest, input Input) (*mcp.CallToolResult, any, error) {
	if err := t.validator.Struct(input); err != nil {
		return nil, nil, fmt.Errorf("validation error: %w", err)
	}

	var resultText string

	switch input.Action {
	case "list":
		text, err := models.EncodeJSON(catalog.Names(), "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode names: %w", err)
		}
		resultText = text

	case "get":
		if input.Name == "" {
			return nil, nil, fmt.Errorf("name is required for get action")
		}
		schema, ok := catalog.Get(input.Name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown tool %q", input.Name)
		}
		text, err := models.EncodeJSON(schema, "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode schema: %w", err)
		}
		resultText = text

	case "template":
		if input.Name == "" {
			return nil, nil, fmt.Errorf("name is required for template action")
		}
		tmpl, err := catalog.TemplateFor(input.Name)
		if err != nil {
			return nil, nil, err
		}
		resultText = tmpl
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: resultText},
		},
	}, nil, nil
}

func New(logger zerolog.Logger) tools.Tool {
	return &Tool{
		logger:    logger.With().Str("tool", "catalog").Logger(),
		validator: validator.New(),
	}
}
