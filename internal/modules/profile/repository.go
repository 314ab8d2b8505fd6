package profile

import "context"

// Repository defines the interface for user and profile data storage.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	CreateProfile(ctx context.Context, p *Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (*Profile, error)
}
