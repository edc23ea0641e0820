package model

import "time"

// Blog lifecycle states. A blog starts in draft and becomes publicly
// listable only once published.
const (
	StateDraft     = "draft"
	StatePublished = "published"
)

// Blog represents a post in the `blogs` collection. Titles are globally
// unique. Author holds the creating user's identifier as raw text; no
// foreign-key relationship is enforced by the store.
//
// ReadingTime is computed once at creation from the body and is not
// recalculated on later updates, even when the body changes.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	State       string    `json:"state"`
	ReadCount   int       `json:"read_count"`
	ReadingTime int       `json:"reading_time"`
	Tags        []string  `json:"tags"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}
