package dialogue

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/qazaqnlp/qural/pkg/catalog"
	"github.com/qazaqnlp/qural/pkg/models"
	"github.com/qazaqnlp/qural/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTurns(t *testing.T, record *models.Annotation) []models.Turn {
	t.Helper()
	var turns []models.Turn
	require.NoError(t, json.Unmarshal([]byte(record.TurnsJSON), &turns))
	return turns
}

func decodeAnswers(t *testing.T, record *models.Annotation) []models.AnswerEntry {
	t.Helper()
	var answers []models.AnswerEntry
	require.NoError(t, json.Unmarshal([]byte(record.AnswersJSON), &answers))
	return answers
}

func TestBuild_SingleCall(t *testing.T) {
	draft := Draft{
		ID:            "kk_tool_awareness_001",
		Category:      types.CategoryToolAwareness,
		Difficulty:    types.DifficultyEasy,
		Query:         "Алматыда ауа райы қандай?",
		SelectedTools: []string{"weather.get"},
		Steps: []Step{{
			Plan:    "Check current weather",
			Thought: "Ауа райы қызметін шақырамын.",
			Tool:    "weather.get",
			Args:    `{"city": "Almaty"}`,
			Output:  `{"temp": -2, "conditions": "snow"}`,
		}},
		FinalAnswer: "Алматыда қазір -2 градус, қар жауып тұр.",
		Author:      "aigerim",
	}

	record, err := Build(draft, catalog.Catalog())
	require.NoError(t, err)

	turns := decodeTurns(t, record)
	require.Len(t, turns, 5)

	assert.Equal(t, models.RoleUser, turns[0].Role)
	assert.Equal(t, draft.Query, turns[0].Content)

	assert.Equal(t, models.RoleAssistant, turns[1].Role)
	assert.Equal(t, "Ауа райы қызметін шақырамын.", turns[1].Content)
	require.NotNil(t, turns[1].Meta)
	assert.Equal(t, "Check current weather", turns[1].Meta.Plan)

	assert.Equal(t, models.RoleAssistant, turns[2].Role)
	require.NotNil(t, turns[2].ToolCall)
	assert.Equal(t, "weather.get", turns[2].ToolCall.Name)
	assert.Equal(t, "Almaty", turns[2].ToolCall.Arguments["city"])

	assert.Equal(t, models.RoleTool, turns[3].Role)
	assert.Equal(t, `{"temp": -2, "conditions": "snow"}`, turns[3].Content)

	assert.Equal(t, models.RoleAssistant, turns[4].Role)
	assert.Equal(t, draft.FinalAnswer, turns[4].Content)

	answers := decodeAnswers(t, record)
	require.Len(t, answers, 1)
	assert.Equal(t, "weather.get", answers[0].Name)
	assert.Equal(t, "Almaty", answers[0].Arguments["city"])
}

func TestBuild_EmptyQuery(t *testing.T) {
	_, err := Build(Draft{Query: "   "}, catalog.Catalog())
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestBuild_PlanWithoutThoughtGetsEllipsis(t *testing.T) {
	draft := Draft{
		ID:       "kk_state_context_001",
		Category: types.CategoryStateContext,
		Query:    "сұрақ",
		Steps:    []Step{{Plan: "Retry with lower limit"}},
	}

	record, err := Build(draft, catalog.Catalog())
	require.NoError(t, err)

	turns := decodeTurns(t, record)
	// user, thought, final
	require.Len(t, turns, 3)
	assert.Equal(t, "...", turns[1].Content)
	require.NotNil(t, turns[1].Meta)
	assert.Equal(t, "Retry with lower limit", turns[1].Meta.Plan)
}

func TestBuild_NoCallStepEmitsNoCall(t *testing.T) {
	draft := Draft{
		Query: "сұрақ",
		Steps: []Step{{Thought: "ойланып тұрмын", Tool: types.NoCallSentinel}},
	}

	record, err := Build(draft, catalog.Catalog())
	require.NoError(t, err)

	turns := decodeTurns(t, record)
	require.Len(t, turns, 3)
	for _, turn := range turns {
		assert.Nil(t, turn.ToolCall)
	}
	assert.Empty(t, decodeAnswers(t, record))
}

func TestBuild_InvalidArgumentJSONAbortsEverything(t *testing.T) {
	draft := Draft{
		Query:         "сұрақ",
		SelectedTools: []string{"weather.get", "images.search"},
		Steps: []Step{
			{Thought: "бірінші", Tool: "weather.get", Args: `{"city": "Almaty"}`},
			{Thought: "екінші", Tool: "images.search", Args: `{"city": "Almaty"`}, // truncated
			{Thought: "үшінші", Tool: "weather.get", Args: `{"city": "Astana"}`},
		},
	}

	record, err := Build(draft, catalog.Catalog())
	assert.Nil(t, record)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 2, stepErr.Step)
	assert.Equal(t, "images.search", stepErr.Tool)
	assert.Contains(t, stepErr.Error(), "step 2")
}

func TestBuild_ToolOutsideSelectionRejected(t *testing.T) {
	draft := Draft{
		Query:         "сұрақ",
		SelectedTools: []string{"weather.get"},
		Steps: []Step{{
			Thought: "басқа құрал",
			Tool:    "sms.send",
			Args:    `{"to": "+77010000000", "message": "hi"}`,
		}},
	}

	_, err := Build(draft, catalog.Catalog())
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, 1, stepErr.Step)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestBuild_MissingRequiredParameterRejected(t *testing.T) {
	draft := Draft{
		Query:         "сұрақ",
		SelectedTools: []string{"flights.search"},
		Steps: []Step{{
			Thought: "рейс іздеймін",
			Tool:    "flights.search",
			Args:    `{"from": "ALA", "to": "IST"}`, // date missing
		}},
	}

	_, err := Build(draft, catalog.Catalog())
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Contains(t, err.Error(), `missing required parameter "date"`)
}

func TestBuild_SnapshotKeepsSelectionOrder(t *testing.T) {
	draft := Draft{
		Query:         "сұрақ",
		SelectedTools: []string{"wiki.search", "weather.get"},
	}

	record, err := Build(draft, catalog.Catalog())
	require.NoError(t, err)

	var snapshot []models.ToolSchema
	require.NoError(t, json.Unmarshal([]byte(record.ToolsJSON), &snapshot))
	require.Len(t, snapshot, 2)
	assert.Equal(t, "wiki.search", snapshot[0].Name)
	assert.Equal(t, "weather.get", snapshot[1].Name)
}

func TestBuild_UnknownSelectedTool(t *testing.T) {
	_, err := Build(Draft{
		Query:         "сұрақ",
		SelectedTools: []string{"teleport.now"},
	}, catalog.Catalog())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyQuery))
}

func TestBuild_EmptyFinalAnswerAccepted(t *testing.T) {
	record, err := Build(Draft{Query: "сұрақ"}, catalog.Catalog())
	require.NoError(t, err)

	turns := decodeTurns(t, record)
	require.Len(t, turns, 2)
	last := turns[len(turns)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.Empty(t, last.Content)
}
