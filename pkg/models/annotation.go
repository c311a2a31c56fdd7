package models

import (
	"time"
)

// Annotation is one saved dataset record. The tools/answers/turns columns hold
// JSON text (UTF-8, non-ASCII kept unescaped) so the table stays readable with
// plain sqlite tooling; the export pipeline re-parses them.
type Annotation struct {
	ID          string    `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Category    string    `gorm:"type:varchar(64);index;not null" json:"category"`
	Difficulty  string    `gorm:"type:varchar(16)" json:"difficulty"`
	Query       string    `gorm:"type:text" json:"query"`
	ToolsJSON   string    `gorm:"type:text" json:"tools_json"`
	AnswersJSON string    `gorm:"type:text" json:"answers_json"`
	TurnsJSON   string    `gorm:"type:text" json:"turns_json"`
	Author      string    `gorm:"type:varchar(255)" json:"author"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is one annotator account. Password holds the hex digest of the
// plaintext, never the plaintext itself.
type User struct {
	Username string `gorm:"primaryKey;type:varchar(255)" json:"username"`
	Password string `gorm:"type:varchar(64)" json:"-"`
}
