package domain

import (
	"context"
	"time"
)

// User represents an account in the campus system: a student, a teacher or
// an administrator.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Role      string    // "student", "teacher" or "admin"
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves users by the given IDs. Missing ids are simply
	// absent from the result, not an error.
	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error
}

// UserDirectory resolves user ids to display names for enrichment. It never
// fails on an unknown id: unresolved ids map to UnknownUserName.
type UserDirectory interface {
	GetDisplayNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

// UserNameCache caches id -> display-name lookups.
type UserNameCache interface {
	MGetNames(ctx context.Context, ids []int64) (map[int64]string, error)
	SetNames(ctx context.Context, names map[int64]string) error
}
