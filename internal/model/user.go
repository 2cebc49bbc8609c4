package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Only the bcrypt hash of the password is persisted.  The json
// tags are omitted here because these structs are used internally by
// the repository layer; handlers define separate response types.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}

// SessionToken models an entry in the `session_tokens` table.  Each
// session belongs to a user; only the SHA-256 hash of the JWT ID is
// stored so a leaked table cannot be replayed as live sessions.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the session.
//  TokenHash – SHA-256 hex digest of the session token ID.
//  ExpiresAt – expiration timestamp of the session.
//  RevokedAt – when the session was revoked (null while active).
//  CreatedAt – timestamp of creation.
type SessionToken struct {
	ID        uint64     // session_tokens.id
	UserID    uint64     // session_tokens.user_id
	TokenHash string     // session_tokens.token_hash
	ExpiresAt time.Time  // session_tokens.expires_at
	RevokedAt *time.Time // session_tokens.revoked_at (nullable)
	CreatedAt time.Time  // session_tokens.created_at
}
