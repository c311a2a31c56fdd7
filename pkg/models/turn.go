package models

// Turn is one entry in a dialogue transcript, tagged by role. A well-formed
// transcript starts with the user turn and ends with the assistant's final
// answer; tool calls sit between the two as
// assistant(thought) -> assistant(tool_call) -> tool(result) groups.
type Turn struct {
	Role     string    `json:"role"`
	Content  string    `json:"content,omitempty"`
	Meta     *TurnMeta `json:"meta,omitempty"`
	ToolCall *ToolCall `json:"tool_call,omitempty"`
}

// TurnMeta carries the side-channel plan string on assistant thought turns.
type TurnMeta struct {
	Plan string `json:"plan"`
}

// ToolCall is the tool invocation attached to an assistant turn.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// AnswerEntry records one tool call actually issued in a transcript, in issue
// order. The answers list is the dataset's ground-truth label.
type AnswerEntry struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)
