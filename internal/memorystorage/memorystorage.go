// Package memorystorage provides in-memory implementations of the repository
// store contracts. They back the handler and router tests so no MySQL
// instance is needed, and mirror the sentinel-error behavior of the real
// repositories.
package memorystorage

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/blog-api/internal/model"
	"github.com/iliyamo/blog-api/internal/repository"
)

// UserStorage is an in-memory repository.UserStore.
type UserStorage struct {
	mu    sync.Mutex
	users []model.User
}

func NewUserStorage() *UserStorage { return &UserStorage{} }

func (s *UserStorage) Insert(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(u.Email))
	for _, existing := range s.users {
		if existing.Email == email {
			return repository.ErrEmailExists
		}
	}
	u.ID = uuid.NewString()
	u.Email = email
	u.CreatedAt = time.Now().UTC()
	s.users = append(s.users, *u)
	return nil
}

func (s *UserStorage) FindByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (s *UserStorage) FindByID(_ context.Context, id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

// BlogStorage is an in-memory repository.BlogStore. Blogs are kept in
// insertion order, matching the creation-order listing of the MySQL repo.
type BlogStorage struct {
	mu    sync.Mutex
	blogs []model.Blog
}

func NewBlogStorage() *BlogStorage { return &BlogStorage{} }

func (s *BlogStorage) Insert(_ context.Context, b *model.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.blogs {
		if existing.Title == b.Title {
			return repository.ErrTitleExists
		}
	}
	b.ID = uuid.NewString()
	if b.State == "" {
		b.State = model.StateDraft
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	b.CreatedAt = time.Now().UTC()
	s.blogs = append(s.blogs, *b)
	return nil
}

func (s *BlogStorage) FindByID(_ context.Context, id string) (model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Blog{}, repository.ErrBlogNotFound
}

func (s *BlogStorage) FindByState(_ context.Context, state string) ([]model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Blog, 0)
	for _, b := range s.blogs {
		if b.State == state {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BlogStorage) FindByAuthor(_ context.Context, author string) ([]model.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Blog, 0)
	for _, b := range s.blogs {
		if b.Author == author {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BlogStorage) UpdateByID(_ context.Context, id string, patch repository.BlogPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID != id {
			continue
		}
		if patch.Title != nil {
			for j := range s.blogs {
				if j != i && s.blogs[j].Title == *patch.Title {
					return repository.ErrTitleExists
				}
			}
			s.blogs[i].Title = *patch.Title
		}
		if patch.Description != nil {
			s.blogs[i].Description = *patch.Description
		}
		if patch.Author != nil {
			s.blogs[i].Author = *patch.Author
		}
		if patch.State != nil {
			s.blogs[i].State = *patch.State
		}
		if patch.ReadCount != nil {
			s.blogs[i].ReadCount = *patch.ReadCount
		}
		if patch.ReadingTime != nil {
			s.blogs[i].ReadingTime = *patch.ReadingTime
		}
		if patch.Tags != nil {
			s.blogs[i].Tags = append([]string{}, (*patch.Tags)...)
		}
		if patch.Body != nil {
			s.blogs[i].Body = *patch.Body
		}
		return nil
	}
	return repository.ErrBlogNotFound
}

func (s *BlogStorage) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return nil
		}
	}
	return repository.ErrBlogNotFound
}
