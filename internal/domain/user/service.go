package user

import "context"

// UserService defines business logic for user provisioning and profiles.
type UserService interface {
	// Create provisions a new staff account (admin only). Email and position
	// must be unused.
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// List returns all users (admin only).
	List(ctx context.Context) (ListUsersResponse, error)

	// GetMe returns the authenticated user's profile.
	GetMe(ctx context.Context) (UserResponse, error)

	// UpdateProfile updates the authenticated user's display name.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)

	// ChangePassword replaces the authenticated user's password after
	// verifying the current one.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
