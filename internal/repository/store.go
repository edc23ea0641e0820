package repository

import (
	"context"

	"github.com/iliyamo/blog-api/internal/model"
)

// UserStore is the persistence contract for the users collection. Handlers
// depend on this interface so tests can substitute an in-memory store.
type UserStore interface {
	// Insert stores a new user, generating its id and creation time.
	// Returns ErrEmailExists when the email is already taken.
	Insert(ctx context.Context, u *model.User) error
	// FindByEmail returns the user with the given (normalized) email or
	// ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// FindByID returns the user with the given id or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (model.User, error)
}

// BlogStore is the persistence contract for the blogs collection.
type BlogStore interface {
	// Insert stores a new blog, generating its id and creation time and
	// applying the draft/zero-count defaults when unset. Returns
	// ErrTitleExists when the title is already taken.
	Insert(ctx context.Context, b *model.Blog) error
	// FindByID returns the blog with the given id or ErrBlogNotFound.
	FindByID(ctx context.Context, id string) (model.Blog, error)
	// FindByState returns all blogs in the given lifecycle state, in
	// creation order.
	FindByState(ctx context.Context, state string) ([]model.Blog, error)
	// FindByAuthor returns all blogs created by the given user id, in
	// creation order.
	FindByAuthor(ctx context.Context, author string) ([]model.Blog, error)
	// UpdateByID overwrites exactly the fields set in patch. Fields left
	// nil keep their stored value. Returns ErrBlogNotFound for unknown ids
	// and ErrTitleExists when a title change collides.
	UpdateByID(ctx context.Context, id string, patch BlogPatch) error
	// DeleteByID removes the blog or returns ErrBlogNotFound.
	DeleteByID(ctx context.Context, id string) error
}

// BlogPatch describes a partial overwrite of a blog. A nil field means "leave
// unchanged". Every stored field except id and created_at can be overwritten,
// including state, read_count and author; the API deliberately does not
// restrict which fields an update may touch.
type BlogPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Author      *string   `json:"author"`
	State       *string   `json:"state"`
	ReadCount   *int      `json:"read_count"`
	ReadingTime *int      `json:"reading_time"`
	Tags        *[]string `json:"tags"`
	Body        *string   `json:"body"`
}

// IsZero reports whether the patch sets no fields at all.
func (p BlogPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Author == nil &&
		p.State == nil && p.ReadCount == nil && p.ReadingTime == nil &&
		p.Tags == nil && p.Body == nil
}
