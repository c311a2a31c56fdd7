// Package dialogue assembles annotation records from the step editor's form
// state. Build either returns a complete record or an error; it never leaves a
// partial one behind.
package dialogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/qazaqnlp/qural/pkg/models"
	"github.com/qazaqnlp/qural/pkg/types"
)

// ErrEmptyQuery blocks a save whose user query is blank.
var ErrEmptyQuery = errors.New("user query is empty")

// StepError reports which editor step broke the save. Step is 1-based, the way
// the form numbers them.
type StepError struct {
	Step int
	Tool string
	Err  error
}

func (e *StepError) Error() string {
	if e.Tool != "" {
		return fmt.Sprintf("step %d (%s): %v", e.Step, e.Tool, e.Err)
	}
	return fmt.Sprintf("step %d: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Step is one row of the step editor. Tool holds types.NoCallSentinel when the
// step makes no call; Args and Output carry raw textarea contents.
type Step struct {
	Plan    string
	Thought string
	Tool    string
	Args    string
	Output  string
}

// Draft is the in-progress record carried between form renders. Nothing in it
// touches the store until Build succeeds and the caller upserts the result.
type Draft struct {
	ID            string
	Category      types.Category
	Difficulty    types.Difficulty
	Query         string
	SelectedTools []string
	Steps         []Step
	FinalAnswer   string
	Author        string
}

// Build turns the draft into a persistable annotation record:
//
//	user turn -> per step [assistant thought?, assistant tool_call?, tool result?] -> final assistant turn
//
// plus the parallel answers list of every call issued. library supplies the
// schemas for the snapshot and for the save-time call checks: a step calling a
// tool outside the draft's selection, or omitting a declared required
// parameter, aborts the whole build.
func Build(draft Draft, library map[string]models.ToolSchema) (*models.Annotation, error) {
	if strings.TrimSpace(draft.Query) == "" {
		return nil, ErrEmptyQuery
	}

	selected := make(map[string]bool, len(draft.SelectedTools))
	snapshot := make([]models.ToolSchema, 0, len(draft.SelectedTools))
	for _, name := range draft.SelectedTools {
		schema, ok := library[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool %q in selection", name)
		}
		selected[name] = true
		snapshot = append(snapshot, schema)
	}

	turns := []models.Turn{{Role: models.RoleUser, Content: draft.Query}}
	answers := []models.AnswerEntry{}

	for i, step := range draft.Steps {
		if step.Thought != "" || step.Plan != "" {
			content := step.Thought
			if content == "" {
				// Plan without a written thought still gets a turn.
				content = "..."
			}
			turns = append(turns, models.Turn{
				Role:    models.RoleAssistant,
				Content: content,
				Meta:    &models.TurnMeta{Plan: step.Plan},
			})
		}

		if step.Tool == "" || step.Tool == types.NoCallSentinel {
			continue
		}

		if !selected[step.Tool] {
			return nil, &StepError{Step: i + 1, Tool: step.Tool,
				Err: errors.New("unknown tool: not among the record's selected tools")}
		}

		var args map[string]any
		if err := json.Unmarshal([]byte(step.Args), &args); err != nil {
			return nil, &StepError{Step: i + 1, Tool: step.Tool,
				Err: fmt.Errorf("invalid argument JSON: %w", err)}
		}

		for _, param := range library[step.Tool].Parameters {
			if !param.Required {
				continue
			}
			if _, present := args[param.Name]; !present {
				return nil, &StepError{Step: i + 1, Tool: step.Tool,
					Err: fmt.Errorf("missing required parameter %q", param.Name)}
			}
		}

		turns = append(turns, models.Turn{
			Role:     models.RoleAssistant,
			ToolCall: &models.ToolCall{Name: step.Tool, Arguments: args},
		})
		turns = append(turns, models.Turn{
			Role:    models.RoleTool,
			Content: step.Output,
		})
		answers = append(answers, models.AnswerEntry{Name: step.Tool, Arguments: args})
	}

	// Final answer closes the transcript even when left empty.
	turns = append(turns, models.Turn{Role: models.RoleAssistant, Content: draft.FinalAnswer})

	toolsJSON, err := models.EncodeJSON(snapshot, "")
	if err != nil {
		return nil, fmt.Errorf("encode tools: %w", err)
	}
	answersJSON, err := models.EncodeJSON(answers, "")
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	turnsJSON, err := models.EncodeJSON(turns, "")
	if err != nil {
		return nil, fmt.Errorf("encode turns: %w", err)
	}

	return &models.Annotation{
		ID:          draft.ID,
		Category:    string(draft.Category),
		Difficulty:  string(draft.Difficulty),
		Query:       draft.Query,
		ToolsJSON:   toolsJSON,
		AnswersJSON: answersJSON,
		TurnsJSON:   turnsJSON,
		Author:      draft.Author,
	}, nil
}
