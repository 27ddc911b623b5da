package model

// User represents a row in the `users` table. The password hash is kept
// internal and never serialized into a response body.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name supplied at registration.
//  Email        – unique email address (must contain "@").
//  PasswordHash – bcrypt hashed password.
type User struct {
	ID           uint64 `json:"id"`    // users.id
	Name         string `json:"name"`  // users.name
	Email        string `json:"email"` // users.email
	PasswordHash string `json:"-"`     // users.password_hash
}
