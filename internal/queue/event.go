// Package queue publishes domain events to the message broker. Publishing is
// best-effort: failures are logged and returned so callers can ignore them
// without interrupting the request flow.
package queue

// BlogPublishedEvent is emitted when a draft blog transitions to published.
// It carries enough information for downstream consumers (feeds, notifiers,
// analytics) to act without querying the primary database.
type BlogPublishedEvent struct {
	BlogID      string   `json:"blog_id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	ReadingTime int      `json:"reading_time"`
	PublishedAt string   `json:"published_at"`
}
