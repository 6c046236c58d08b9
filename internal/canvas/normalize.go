package canvas

import (
	"bytes"
	"strconv"
	"time"
)

// Canvas submission type markers.
const (
	submissionOnlineQuiz      = "online_quiz"
	submissionDiscussionTopic = "discussion_topic"
)

// Normalize converts a raw Canvas record into a canonical Assignment.
// courseName annotates the item with its owning course; pass "" for feeds
// that carry their own context (the wrapper shape's context_name is used
// as a fallback). Returns nil when no title or no parseable due date can
// be resolved — the caller decides how to count the drop.
func Normalize(raw *RawItem, courseName string) *Assignment {
	if raw == nil {
		return nil
	}

	title, ok := resolveTitle(raw)
	if !ok {
		return nil
	}
	dueAt, ok := resolveDueAt(raw)
	if !ok {
		return nil
	}

	return &Assignment{
		ID:             resolveID(raw),
		Title:          title,
		Kind:           classify(raw),
		DueAt:          dueAt.UTC(),
		PointsPossible: resolvePoints(raw),
		CourseName:     resolveCourse(raw, courseName),
		URL:            resolveURL(raw),
		Description:    resolveDescription(raw),
	}
}

// classify resolves the item kind by priority order. Quiz wins every
// tie-break, then discussion, then anything assignment-shaped; generic
// event is the fallback.
func classify(raw *RawItem) Kind {
	if hasQuizMarker(raw) {
		return KindQuiz
	}
	if hasDiscussionMarker(raw) {
		return KindDiscussion
	}
	if hasAssignmentMarker(raw) {
		return KindAssignment
	}
	return KindEvent
}

func hasQuizMarker(raw *RawItem) bool {
	if raw.QuizID != 0 || hasSubmissionType(raw.SubmissionTypes, submissionOnlineQuiz) {
		return true
	}
	if nested := raw.Assignment; nested != nil {
		return nested.QuizID != 0 || hasSubmissionType(nested.SubmissionTypes, submissionOnlineQuiz)
	}
	return false
}

func hasDiscussionMarker(raw *RawItem) bool {
	if presentJSON(raw.DiscussionTopic) || hasSubmissionType(raw.SubmissionTypes, submissionDiscussionTopic) {
		return true
	}
	if nested := raw.Assignment; nested != nil {
		return presentJSON(nested.DiscussionTopic) || hasSubmissionType(nested.SubmissionTypes, submissionDiscussionTopic)
	}
	return false
}

func hasAssignmentMarker(raw *RawItem) bool {
	// A nested assignment sub-record or a submission type set marks the
	// record as assignment-shaped.
	return raw.Assignment != nil || raw.SubmissionTypes != nil
}

func hasSubmissionType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

// presentJSON reports whether a raw JSON field carries a real value.
func presentJSON(v []byte) bool {
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}

// Field resolution below follows one pattern: an ordered list of places
// the field may live, first success wins.

func resolveTitle(raw *RawItem) (string, bool) {
	for _, candidate := range []string{raw.Title, raw.Name, nestedString(raw, func(a *RawItem) string { return a.Name })} {
		if candidate != "" {
			return candidate, true
		}
	}
	return "", false
}

func resolveDueAt(raw *RawItem) (time.Time, bool) {
	for _, candidate := range []string{raw.DueAt, nestedString(raw, func(a *RawItem) string { return a.DueAt })} {
		if candidate == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, candidate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func resolveID(raw *RawItem) string {
	id := raw.ID
	if id == 0 && raw.Assignment != nil {
		id = raw.Assignment.ID
	}
	return strconv.FormatInt(id, 10)
}

func resolvePoints(raw *RawItem) *float64 {
	if raw.PointsPossible != nil {
		return raw.PointsPossible
	}
	if raw.Assignment != nil {
		return raw.Assignment.PointsPossible
	}
	return nil
}

func resolveURL(raw *RawItem) string {
	for _, candidate := range []string{raw.HTMLURL, nestedString(raw, func(a *RawItem) string { return a.HTMLURL })} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func resolveDescription(raw *RawItem) string {
	for _, candidate := range []string{raw.Description, nestedString(raw, func(a *RawItem) string { return a.Description })} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func resolveCourse(raw *RawItem, stamped string) string {
	if stamped != "" {
		return stamped
	}
	return raw.ContextName
}

func nestedString(raw *RawItem, pick func(*RawItem) string) string {
	if raw.Assignment == nil {
		return ""
	}
	return pick(raw.Assignment)
}
