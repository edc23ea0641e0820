// Package repository defines the store contracts for the two collections the
// API persists (users and blogs) together with their MySQL implementations.
// Sentinel errors let handlers map failures to HTTP responses without
// inspecting driver-specific error text.
package repository

import "errors"

// ErrUserNotFound is returned when no user matches the given email or id.
var ErrUserNotFound = errors.New("user not found")

// ErrBlogNotFound is returned when no blog matches the given id.
var ErrBlogNotFound = errors.New("blog not found")

// ErrEmailExists is returned when an insert violates the unique email index.
var ErrEmailExists = errors.New("email already exists")

// ErrTitleExists is returned when an insert violates the unique title index.
var ErrTitleExists = errors.New("title already exists")
