package canvas

import (
	"encoding/json"
	"time"
)

// Kind classifies a normalized item. Kinds are mutually exclusive and
// resolved by priority order: quiz > discussion > assignment > event.
type Kind string

const (
	KindAssignment Kind = "assignment"
	KindQuiz       Kind = "quiz"
	KindDiscussion Kind = "discussion"
	KindEvent      Kind = "event"
)

// Glyph returns the emoji used to decorate calendar summaries and listings.
func (k Kind) Glyph() string {
	switch k {
	case KindQuiz:
		return "✏️"
	case KindDiscussion:
		return "💬"
	case KindAssignment:
		return "📝"
	default:
		return "📅"
	}
}

// Label returns the human-readable type label.
func (k Kind) Label() string {
	switch k {
	case KindQuiz:
		return "Quiz"
	case KindDiscussion:
		return "Discussion"
	case KindAssignment:
		return "Assignment"
	default:
		return "Event"
	}
}

// Course is a Canvas course with an active enrollment.
type Course struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code"`
}

// RawItem is a record from either Canvas feed. Field presence varies by
// shape: flat assignments carry name/due_at at the top level, calendar
// event wrappers carry title/context_name at the top level and the
// assignment fields one level down. Every field access is optional.
type RawItem struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Name            string          `json:"name"`
	DueAt           string          `json:"due_at"`
	HTMLURL         string          `json:"html_url"`
	Description     string          `json:"description"`
	PointsPossible  *float64        `json:"points_possible"`
	Published       *bool           `json:"published"`
	QuizID          int64           `json:"quiz_id"`
	DiscussionTopic json.RawMessage `json:"discussion_topic"`
	SubmissionTypes []string        `json:"submission_types"`
	ContextName     string          `json:"context_name"`

	// Assignment is the nested sub-record present on calendar event wrappers.
	Assignment *RawItem `json:"assignment"`
}

// Assignment is the canonical normalized item. Title and DueAt are always
// populated; records that cannot resolve both never become an Assignment.
type Assignment struct {
	ID             string
	Title          string
	Kind           Kind
	DueAt          time.Time // absolute UTC instant
	PointsPossible *float64
	CourseName     string
	URL            string
	Description    string
}
