// Package dataset exposes the saved annotation records over MCP.
package dataset

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qazaqnlp/qural/pkg/export"
	"github.com/qazaqnlp/qural/pkg/models"
	"github.com/qazaqnlp/qural/pkg/server"
	"github.com/qazaqnlp/qural/pkg/storage"
	"github.com/qazaqnlp/qural/pkg/tools"
	"github.com/qazaqnlp/qural/pkg/types"
	"github.com/rs/zerolog"
)

type Input struct {
	Action   string `json:"action" validate:"required,oneof=list get export"`
	ID       string `json:"id,omitempty"`
	Category string `json:"category,omitempty" validate:"omitempty,oneof=tool_awareness planning_multistep_composition api_discovery argument_schema state_context exception_handling answer_synthesis"`
}

type Tool struct {
	logger    zerolog.Logger
	validator *validator.Validate
	store     storage.Storage
}

func (t *Tool) Register(srv *server.Server) error {
	tool := &mcp.Tool{
		Name:        "dataset",
		Description: "Browse saved annotation records. Actions: list (id/category/author table), get (full record by ID), export (delivery JSON for a category).",
	}

	t.store = srv.Storage()

	mcp.AddTool(&srv.Server, tool, t.DatasetHandler)
	t.logger.Debug().Msg("dataset tool registered")

	return nil
}

type listRow struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Author     string `json:"author"`
	CreatedAt  string `json:"created_at"`
}

func (t *Tool) DatasetHandler(ctx context.Context, _ *mcp.CallToolRequest, input Input) (*mcp.CallToolResult, any, error) {
	if err := t.validator.Struct(input); err != nil {
		return nil, nil, fmt.Errorf("validation error: %w", err)
	}

	var resultText string

	switch input.Action {
	case "list":
		records, err := t.store.ListAnnotations(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list records: %w", err)
		}
		rows := make([]listRow, 0, len(records))
		for _, record := range records {
			rows = append(rows, listRow{
				ID:         record.ID,
				Category:   record.Category,
				Difficulty: record.Difficulty,
				Author:     record.Author,
				CreatedAt:  record.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		text, err := models.EncodeJSON(map[string]any{
			"total":   len(rows),
			"records": rows,
		}, "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode listing: %w", err)
		}
		resultText = text

	case "get":
		if input.ID == "" {
			return nil, nil, fmt.Errorf("id is required for get action")
		}
		record, err := t.store.GetAnnotation(ctx, input.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("record not found: %w", err)
		}
		text, err := models.EncodeJSON(record, "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode record: %w", err)
		}
		resultText = text

	case "export":
		if input.Category == "" {
			return nil, nil, fmt.Errorf("category is required for export action")
		}
		exporter := export.NewExporter(t.store, t.logger)
		result, err := exporter.Export(ctx, types.Category(input.Category))
		if err != nil {
			return nil, nil, fmt.Errorf("export failed: %w", err)
		}
		for _, skip := range result.Skipped {
			t.logger.Warn().Str("id", skip.ID).Err(skip.Err).Msg("record skipped during export")
		}
		resultText = string(result.Data)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: resultText},
		},
	}, nil, nil
}

func New(logger zerolog.Logger) tools.Tool {
	return &Tool{
		logger:    logger.With().Str("tool", "dataset").Logger(),
		validator: validator.New(),
	}
}
