package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/qazaqnlp/qural/pkg/catalog"
	"github.com/qazaqnlp/qural/pkg/dialogue"
	"github.com/qazaqnlp/qural/pkg/types"
)

type stepView struct {
	Index   int
	Plan    string
	Thought string
	Tool    string
	Args    string
	Output  string
}

type annotatePageData struct {
	Username     string
	IsAdmin      bool
	Categories   []types.Category
	Difficulties []types.Difficulty
	ToolNames    []string
	Draft        dialogue.Draft
	Steps        []stepView
	Sentinel     string
	Error        string
	Success      string
}

// saveRequest carries the fields checked before the builder runs. Presence
// checks only; argument contents are the builder's job.
type saveRequest struct {
	ID         string `validate:"required"`
	Category   string `validate:"required,oneof=tool_awareness planning_multistep_composition api_discovery argument_schema state_context exception_handling answer_synthesis"`
	Difficulty string `validate:"required,oneof=easy hard"`
	Query      string `validate:"required"`
}

func (s *Server) annotatePage(w http.ResponseWriter, r *http.Request, username string) {
	draft := dialogue.Draft{
		ID:       fmt.Sprintf("kk_%s_001", types.CategoryToolAwareness),
		Category: types.CategoryToolAwareness,
		Steps:    []dialogue.Step{{}},
	}
	s.renderAnnotate(w, username, draft, "", "")
}

// annotateAction handles every step-editor button: add_step and remove_step
// re-render the draft without touching the store, save runs the builder and
// upserts. Failures keep the draft on screen with an inline message.
func (s *Server) annotateAction(w http.ResponseWriter, r *http.Request, username string) {
	draft := parseDraft(r)
	draft.Author = username

	switch r.FormValue("action") {
	case "add_step":
		if len(draft.Steps) < maxSteps {
			draft.Steps = append(draft.Steps, dialogue.Step{})
		}
		s.renderAnnotate(w, username, draft, "", "")

	case "remove_step":
		if len(draft.Steps) > 0 {
			draft.Steps = draft.Steps[:len(draft.Steps)-1]
		}
		s.renderAnnotate(w, username, draft, "", "")

	case "refresh":
		// Re-render so empty argument fields pick up the tool's template.
		s.renderAnnotate(w, username, draft, "", "")

	case "save":
		s.save(w, r, username, draft)

	default:
		s.renderAnnotate(w, username, draft, "Unknown action", "")
	}
}

func (s *Server) save(w http.ResponseWriter, r *http.Request, username string, draft dialogue.Draft) {
	req := saveRequest{
		ID:         draft.ID,
		Category:   string(draft.Category),
		Difficulty: string(draft.Difficulty),
		Query:      strings.TrimSpace(draft.Query),
	}
	if err := s.validator.Struct(req); err != nil {
		s.renderAnnotate(w, username, draft, validationMessage(err), "")
		return
	}

	record, err := dialogue.Build(draft, catalog.Catalog())
	if err != nil {
		s.renderAnnotate(w, username, draft, buildMessage(err), "")
		return
	}

	if err := s.store.UpsertAnnotation(r.Context(), record); err != nil {
		s.logger.Error().Err(err).Str("id", record.ID).Msg("upsert failed")
		s.renderAnnotate(w, username, draft, "Saving failed, try again", "")
		return
	}

	s.logger.Info().Str("id", record.ID).Str("author", username).Msg("record saved")
	success := fmt.Sprintf("Record %s saved (%d steps)", record.ID, len(draft.Steps))
	s.renderAnnotate(w, username, draft, "", success)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return "Check these fields: " + strings.Join(fields, ", ")
	}
	return "Fill in id, query, category and difficulty"
}

func buildMessage(err error) string {
	var stepErr *dialogue.StepError
	switch {
	case errors.Is(err, dialogue.ErrEmptyQuery):
		return "Enter the user query"
	case errors.As(err, &stepErr):
		return "Save aborted: " + stepErr.Error()
	default:
		return "Save aborted: " + err.Error()
	}
}

func parseDraft(r *http.Request) dialogue.Draft {
	_ = r.ParseForm()

	count, _ := strconv.Atoi(r.FormValue("step_count"))
	if count < 0 {
		count = 0
	}
	if count > maxSteps {
		count = maxSteps
	}

	steps := make([]dialogue.Step, 0, count)
	for i := 0; i < count; i++ {
		steps = append(steps, dialogue.Step{
			Plan:    r.FormValue(fmt.Sprintf("plan_%d", i)),
			Thought: r.FormValue(fmt.Sprintf("thought_%d", i)),
			Tool:    r.FormValue(fmt.Sprintf("tool_%d", i)),
			Args:    r.FormValue(fmt.Sprintf("args_%d", i)),
			Output:  r.FormValue(fmt.Sprintf("output_%d", i)),
		})
	}

	return dialogue.Draft{
		ID:            strings.TrimSpace(r.FormValue("id")),
		Category:      types.Category(r.FormValue("category")),
		Difficulty:    types.Difficulty(r.FormValue("difficulty")),
		Query:         r.FormValue("query"),
		SelectedTools: r.Form["tools"],
		Steps:         steps,
		FinalAnswer:   r.FormValue("final_answer"),
	}
}

func (s *Server) renderAnnotate(w http.ResponseWriter, username string, draft dialogue.Draft, errMsg, success string) {
	views := make([]stepView, 0, len(draft.Steps))
	for i, step := range draft.Steps {
		view := stepView{
			Index:   i,
			Plan:    step.Plan,
			Thought: step.Thought,
			Tool:    step.Tool,
			Args:    step.Args,
			Output:  step.Output,
		}
		// Seed the argument field with the tool's template so the annotator
		// overwrites placeholders instead of typing JSON from scratch.
		if view.Args == "" && view.Tool != "" && view.Tool != types.NoCallSentinel {
			if tmpl, err := catalog.TemplateFor(view.Tool); err == nil {
				view.Args = tmpl
			}
		}
		if view.Output == "" {
			view.Output = "{}"
		}
		views = append(views, view)
	}

	s.render(w, "annotate.html", annotatePageData{
		Username:     username,
		IsAdmin:      s.isAdmin(username),
		Categories:   types.Categories(),
		Difficulties: types.Difficulties(),
		ToolNames:    catalog.Names(),
		Draft:        draft,
		Steps:        views,
		Sentinel:     types.NoCallSentinel,
		Error:        errMsg,
		Success:      success,
	})
}
