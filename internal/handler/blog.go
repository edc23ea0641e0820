package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-api/internal/middleware"
	"github.com/iliyamo/blog-api/internal/model"
	"github.com/iliyamo/blog-api/internal/queue"
	"github.com/iliyamo/blog-api/internal/repository"
)

// BlogHandler bundles dependencies for the blog endpoints. Events may be nil
// when no broker is configured; publishing is then skipped.
type BlogHandler struct {
	Blogs  repository.BlogStore
	Events *queue.Publisher
}

func NewBlogHandler(blogs repository.BlogStore, events *queue.Publisher) *BlogHandler {
	return &BlogHandler{Blogs: blogs, Events: events}
}

type createBlogReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body"`
}

// Create stores a new draft blog authored by the caller. The reading time
// is estimated from the body here and never recomputed afterwards.
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	b := model.Blog{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Body:        req.Body,
		Author:      middleware.UserID(c),
		ReadingTime: readingTime(req.Body),
	}
	if err := h.Blogs.Insert(ctx, &b); err != nil {
		if errors.Is(err, repository.ErrTitleExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "title already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create blog failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "blog created in draft"})
}

// Publish moves a blog to the published state. Any valid token may publish
// any blog; authorship is not checked. On success a blog.published event is
// emitted best-effort.
func (h *BlogHandler) Publish(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqContext(c)
	defer cancel()

	b, err := h.Blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "blog not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	state := model.StatePublished
	if err := h.Blogs.UpdateByID(ctx, id, repository.BlogPatch{State: &state}); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "blog not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	_ = h.Events.PublishBlogPublished(ctx, queue.BlogPublishedEvent{
		BlogID:      b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Tags:        b.Tags,
		ReadingTime: b.ReadingTime,
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "blog published"})
}

// ListPublished returns every published blog; drafts never appear here.
func (h *BlogHandler) ListPublished(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	blogs, err := h.Blogs.FindByState(ctx, model.StatePublished)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, blogs)
}

// GetOne returns a single blog and bumps its read count. The increment is a
// read followed by a separate write, so two concurrent reads of the same
// blog can lose one increment; the stored count stays non-negative either
// way.
func (h *BlogHandler) GetOne(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqContext(c)
	defer cancel()

	b, err := h.Blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "blog not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	b.ReadCount++
	if err := h.Blogs.UpdateByID(ctx, id, repository.BlogPatch{ReadCount: &b.ReadCount}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, b)
}

// ListMine returns every blog authored by the caller, drafts included.
func (h *BlogHandler) ListMine(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	blogs, err := h.Blogs.FindByAuthor(ctx, middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, blogs)
}

// Update overwrites the fields supplied in the body, including state,
// read_count and author; fields left out keep their values and unknown keys
// are ignored. Authorship is not checked. The reading time is deliberately
// not recomputed when the body changes.
func (h *BlogHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var patch repository.BlogPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Blogs.UpdateByID(ctx, id, patch); err != nil {
		switch {
		case errors.Is(err, repository.ErrBlogNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "blog not found"})
		case errors.Is(err, repository.ErrTitleExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "title already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "blog updated"})
}

// Delete removes a blog. Authorship is not checked.
func (h *BlogHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Blogs.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "blog not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "blog deleted"})
}
