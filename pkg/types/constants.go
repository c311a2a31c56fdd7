// Package types holds the fixed enums and constants shared across the annotator.
package types

// Category classifies the task type of an annotation record. The set is fixed;
// export files are grouped by these tags.
type Category string

const (
	CategoryToolAwareness Category = "tool_awareness"
	CategoryPlanning      Category = "planning_multistep_composition"
	CategoryAPIDiscovery  Category = "api_discovery"
	CategoryArgSchema     Category = "argument_schema"
	CategoryStateContext  Category = "state_context"
	CategoryException     Category = "exception_handling"
	CategorySynthesis     Category = "answer_synthesis"
)

// Difficulty labels how hard a record is considered to be.
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

const (
	// DefaultAdminUser and DefaultAdminPassword seed the very first account
	// when the users table is empty.
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin123"

	// NoCallSentinel is the step editor's "this step makes no tool call" choice.
	NoCallSentinel = "(no call)"
)

// Categories returns every category tag in display order.
func Categories() []Category {
	return []Category{
		CategoryToolAwareness,
		CategoryPlanning,
		CategoryAPIDiscovery,
		CategoryArgSchema,
		CategoryStateContext,
		CategoryException,
		CategorySynthesis,
	}
}

// Difficulties returns both difficulty tags in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyHard}
}

// Valid reports whether c is one of the fixed category tags.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Valid reports whether d is one of the fixed difficulty tags.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyHard
}

// ExportFileName maps a category to its delivery file name. Total over the
// category enum: every tag, including ones added later, gets a distinct name.
func ExportFileName(c Category) string {
	return string(c) + ".json"
}
