package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh rotates a refresh token: the old one is revoked and a new pair
	// is issued.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// ForgotPassword mails a single-use reset link when the address is known.
	// Unknown addresses are ignored silently.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
