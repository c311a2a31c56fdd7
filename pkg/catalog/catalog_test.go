package catalog

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
)

func TestCatalog_KnownTools(t *testing.T) {
	lib := Catalog()
	if len(lib) < 30 {
		t.Fatalf("library unexpectedly small: %d tools", len(lib))
	}

	for _, name := range []string{"weather.get", "flights.search", "bank.transfer", "restaurant.reserve"} {
		tool, ok := lib[name]
		if !ok {
			t.Errorf("expected %s in the library", name)
			continue
		}
		if tool.Name != name {
			t.Errorf("schema name %q does not match key %q", tool.Name, name)
		}
		if tool.Description == "" {
			t.Errorf("%s has no description", name)
		}
		if len(tool.Parameters) == 0 {
			t.Errorf("%s declares no parameters", name)
		}
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != len(Catalog()) {
		t.Fatalf("expected %d names, got %d", len(Catalog()), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("names should be sorted")
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, ok := Get("teleport.now"); ok {
		t.Error("unknown tool should not resolve")
	}
}

func TestTemplateFor_FlightsSearch(t *testing.T) {
	tmpl, err := TemplateFor("flights.search")
	if err != nil {
		t.Fatalf("template: %v", err)
	}

	// Every declared parameter appears as a key, required ones marked.
	var decoded map[string]string
	if err := json.Unmarshal([]byte(tmpl), &decoded); err != nil {
		t.Fatalf("template is not valid JSON: %v\n%s", err, tmpl)
	}

	tool, _ := Get("flights.search")
	if len(decoded) != len(tool.Parameters) {
		t.Fatalf("expected %d keys, got %d", len(tool.Parameters), len(decoded))
	}
	for _, param := range tool.Parameters {
		val, ok := decoded[param.Name]
		if !ok {
			t.Errorf("parameter %s missing from template", param.Name)
			continue
		}
		if !strings.HasPrefix(val, "<"+param.Type+">") {
			t.Errorf("parameter %s placeholder %q lacks type tag", param.Name, val)
		}
		if param.Required != strings.Contains(val, "(required)") {
			t.Errorf("parameter %s required marker wrong: %q", param.Name, val)
		}
	}
}

func TestTemplateFor_UnescapedPlaceholders(t *testing.T) {
	tmpl, err := TemplateFor("weather.get")
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if strings.Contains(tmpl, `\u003c`) {
		t.Errorf("angle brackets were escaped:\n%s", tmpl)
	}
	if !strings.Contains(tmpl, `"city": "<string> (required)"`) {
		t.Errorf("unexpected template:\n%s", tmpl)
	}
}

func TestTemplateFor_UnknownTool(t *testing.T) {
	if _, err := TemplateFor("nope"); err == nil {
		t.Error("expected error for unknown tool")
	}
}
