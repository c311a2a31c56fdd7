package catalogtool

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qazaqnlp/qural/pkg/catalog"
	"github.com/rs/zerolog"
)

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) != 1 {
		t.Fatal("expected exactly one content item")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestNew(t *testing.T) {
	tool := New(zerolog.New(os.Stdout))
	if tool == nil {
		t.Fatal("expected non-nil tool")
	}
}

func TestCatalogHandler_List(t *testing.T) {
	tool := New(zerolog.Nop()).(*Tool)

	result, _, err := tool.CatalogHandler(context.Background(), nil, Input{Action: "list"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(textContent(t, result)), &names); err != nil {
		t.Fatalf("response is not a name list: %v", err)
	}
	if len(names) != len(catalog.Names()) {
		t.Errorf("expected %d names, got %d", len(catalog.Names()), len(names))
	}
}

func TestCatalogHandler_Get(t *testing.T) {
	tool := New(zerolog.Nop()).(*Tool)

	result, _, err := tool.CatalogHandler(context.Background(), nil, Input{Action: "get", Name: "weather.get"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal([]byte(textContent(t, result)), &schema); err != nil {
		t.Fatalf("response is not a schema: %v", err)
	}
	if schema["name"] != "weather.get" {
		t.Errorf("unexpected schema %v", schema)
	}
}

func TestCatalogHandler_Get_MissingName(t *testing.T) {
	tool := New(zerolog.Nop()).(*Tool)

	if _, _, err := tool.CatalogHandler(context.Background(), nil, Input{Action: "get"}); err == nil {
		t.Error("expected error without name")
	}
}

func TestCatalogHandler_Template_MatchesTemplateFor(t *testing.T) {
	tool := New(zerolog.Nop()).(*Tool)

	result, _, err := tool.CatalogHandler(context.Background(), nil, Input{Action: "template", Name: "flights.search"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := catalog.TemplateFor("flights.search")
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if got := textContent(t, result); got != want {
		t.Errorf("handler template diverged from TemplateFor:\n%s\nvs\n%s", got, want)
	}
}

func TestCatalogHandler_InvalidAction(t *testing.T) {
	tool := New(zerolog.Nop()).(*Tool)

	if _, _, err := tool.CatalogHandler(context.Background(), nil, Input{Action: "drop"}); err == nil {
		t.Error("expected validation error")
	}
}
