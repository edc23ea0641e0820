package model

import "time"

// User represents an account record as stored in the `users` collection.
// The password is kept only as a bcrypt hash; the plaintext never touches
// the store. Emails are globally unique.
//
// Fields:
//  ID           - generated identifier (UUID string).
//  FirstName    - given name supplied at signup.
//  LastName     - family name supplied at signup.
//  Email        - unique email address, stored lowercased.
//  PasswordHash - bcrypt hash of the signup password.
//  CreatedAt    - timestamp of account creation.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
