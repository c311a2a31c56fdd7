// Package export reshapes stored annotation records into the delivery files
// handed to the dataset consumers.
package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qazaqnlp/qural/pkg/models"
	"github.com/qazaqnlp/qural/pkg/storage"
	"github.com/qazaqnlp/qural/pkg/types"
	"github.com/rs/zerolog"
)

// Item is one record in the delivery shape. Tools and Answers are JSON text
// embedded as string values (double-encoded) while Turns stays nested; that
// asymmetry is the consumers' contract, not an accident.
type Item struct {
	ID         string        `json:"id"`
	Category   string        `json:"category"`
	Difficulty string        `json:"difficulty"`
	Query      string        `json:"query"`
	Tools      string        `json:"tools"`
	Answers    string        `json:"answers"`
	Turns      []models.Turn `json:"turns"`
}

// Skip reports a record left out of a delivery because its stored JSON no
// longer parses.
type Skip struct {
	ID  string
	Err error
}

// Result is one generated delivery file.
type Result struct {
	FileName string
	Data     []byte
	Count    int
	Skipped  []Skip
}

type Exporter struct {
	store  storage.Storage
	logger zerolog.Logger
}

func NewExporter(store storage.Storage, logger zerolog.Logger) *Exporter {
	return &Exporter{
		store:  store,
		logger: logger.With().Str("component", "export").Logger(),
	}
}

// Export builds the delivery file for one category. A record whose stored JSON
// fails to re-parse is skipped and reported; the rest of the batch still goes
// out. Unlike saving, export tolerates partial success.
func (e *Exporter) Export(ctx context.Context, category types.Category) (*Result, error) {
	records, err := e.store.ListAnnotationsByCategory(ctx, string(category))
	if err != nil {
		return nil, fmt.Errorf("read annotations: %w", err)
	}

	items := make([]Item, 0, len(records))
	var skipped []Skip
	for _, record := range records {
		item, err := reshape(record)
		if err != nil {
			e.logger.Warn().Str("id", record.ID).Err(err).Msg("skipping corrupt record")
			skipped = append(skipped, Skip{ID: record.ID, Err: err})
			continue
		}
		items = append(items, item)
	}

	payload, err := models.EncodeJSON(items, "    ")
	if err != nil {
		return nil, fmt.Errorf("encode delivery file: %w", err)
	}

	return &Result{
		FileName: types.ExportFileName(category),
		Data:     []byte(payload),
		Count:    len(items),
		Skipped:  skipped,
	}, nil
}

// reshape re-parses the stored columns and re-serializes tools and answers as
// embedded JSON strings.
func reshape(record models.Annotation) (Item, error) {
	var tools []models.ToolSchema
	if err := json.Unmarshal([]byte(record.ToolsJSON), &tools); err != nil {
		return Item{}, fmt.Errorf("tools_json: %w", err)
	}
	var answers []models.AnswerEntry
	if err := json.Unmarshal([]byte(record.AnswersJSON), &answers); err != nil {
		return Item{}, fmt.Errorf("answers_json: %w", err)
	}
	var turns []models.Turn
	if err := json.Unmarshal([]byte(record.TurnsJSON), &turns); err != nil {
		return Item{}, fmt.Errorf("turns_json: %w", err)
	}

	toolsText, err := models.EncodeJSON(tools, "")
	if err != nil {
		return Item{}, fmt.Errorf("re-encode tools: %w", err)
	}
	answersText, err := models.EncodeJSON(answers, "")
	if err != nil {
		return Item{}, fmt.Errorf("re-encode answers: %w", err)
	}

	return Item{
		ID:         record.ID,
		Category:   record.Category,
		Difficulty: record.Difficulty,
		Query:      record.Query,
		Tools:      toolsText,
		Answers:    answersText,
		Turns:      turns,
	}, nil
}
