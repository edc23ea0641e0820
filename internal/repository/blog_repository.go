package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/blog-api/internal/model"
)

// BlogRepo is the MySQL-backed BlogStore over the `blogs` table. The tags
// sequence is stored JSON-encoded in a text column; every other field maps
// to a plain column.
type BlogRepo struct{ DB *sql.DB }

func NewBlogRepo(db *sql.DB) *BlogRepo { return &BlogRepo{DB: db} }

const blogColumns = "id,title,description,author,state,read_count,reading_time,tags,body,created_at"

// Insert stores the blog and fills in the generated id, the draft default
// and the creation time.
func (r *BlogRepo) Insert(ctx context.Context, b *model.Blog) error {
	b.ID = uuid.NewString()
	if b.State == "" {
		b.State = model.StateDraft
	}
	b.CreatedAt = time.Now().UTC()
	tags, err := encodeTags(b.Tags)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO blogs ("+blogColumns+") VALUES (?,?,?,?,?,?,?,?,?,?)",
		b.ID, b.Title, b.Description, b.Author, b.State, b.ReadCount, b.ReadingTime, tags, b.Body, b.CreatedAt)
	if err != nil {
		// error 1062 = duplicate entry for the unique title index
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTitleExists
		}
		return err
	}
	return nil
}

// FindByID fetches a single blog by id.
func (r *BlogRepo) FindByID(ctx context.Context, id string) (model.Blog, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+blogColumns+" FROM blogs WHERE id=? LIMIT 1", id)
	b, err := scanBlog(row)
	if err == sql.ErrNoRows {
		return model.Blog{}, ErrBlogNotFound
	}
	return b, err
}

// FindByState returns all blogs in the given state in creation order.
func (r *BlogRepo) FindByState(ctx context.Context, state string) ([]model.Blog, error) {
	return r.findMany(ctx, "state", state)
}

// FindByAuthor returns all blogs created by the given user in creation order.
func (r *BlogRepo) FindByAuthor(ctx context.Context, author string) ([]model.Blog, error) {
	return r.findMany(ctx, "author", author)
}

func (r *BlogRepo) findMany(ctx context.Context, column, value string) ([]model.Blog, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+blogColumns+" FROM blogs WHERE "+column+"=? ORDER BY created_at", value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateByID overwrites exactly the fields set in the patch. The SET clause
// is built dynamically so untouched columns keep their values.
func (r *BlogRepo) UpdateByID(ctx context.Context, id string, patch BlogPatch) error {
	if patch.IsZero() {
		return r.exists(ctx, id)
	}

	set := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(col string, v any) {
		set = append(set, col+"=?")
		args = append(args, v)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Author != nil {
		add("author", *patch.Author)
	}
	if patch.State != nil {
		add("state", *patch.State)
	}
	if patch.ReadCount != nil {
		add("read_count", *patch.ReadCount)
	}
	if patch.ReadingTime != nil {
		add("reading_time", *patch.ReadingTime)
	}
	if patch.Tags != nil {
		tags, err := encodeTags(*patch.Tags)
		if err != nil {
			return err
		}
		add("tags", tags)
	}
	if patch.Body != nil {
		add("body", *patch.Body)
	}
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx,
		"UPDATE blogs SET "+strings.Join(set, ",")+" WHERE id=?", args...)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTitleExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// MySQL also reports zero rows when the new values equal the old
		// ones, so distinguish "unchanged" from "missing" explicitly.
		return r.exists(ctx, id)
	}
	return nil
}

// DeleteByID removes a blog by id.
func (r *BlogRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM blogs WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepo) exists(ctx context.Context, id string) error {
	var one int
	err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM blogs WHERE id=? LIMIT 1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrBlogNotFound
	}
	return err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanBlog(s scanner) (model.Blog, error) {
	var (
		b    model.Blog
		tags string
	)
	err := s.Scan(&b.ID, &b.Title, &b.Description, &b.Author, &b.State,
		&b.ReadCount, &b.ReadingTime, &tags, &b.Body, &b.CreatedAt)
	if err != nil {
		return model.Blog{}, err
	}
	if err := json.Unmarshal([]byte(tags), &b.Tags); err != nil {
		return model.Blog{}, err
	}
	return b, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
