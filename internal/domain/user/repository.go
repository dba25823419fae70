package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPosition(ctx context.Context, position string) (bool, error)
	UpdateProfile(ctx context.Context, id string, name string) (User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
