package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desadigital/absensi-backend-go/internal/domain/user"
	"github.com/desadigital/absensi-backend-go/internal/pkg/database"
	"github.com/desadigital/absensi-backend-go/internal/pkg/email"
	"github.com/desadigital/absensi-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	emailService email.EmailService
	frontendURL  string
}

func NewUserService(db *database.DB, userRepo user.UserRepository, emailService email.EmailService, frontendURL string) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepo,
		emailService:   emailService,
		frontendURL:    frontendURL,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	newUser := user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Position:     req.Position,
		Role:         user.Role(req.Role),
		PasswordHash: &passwordHash,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emailTaken, err := s.UserRepository.ExistsByEmail(txCtx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if emailTaken {
			return user.ErrEmailExists
		}

		positionTaken, err := s.UserRepository.ExistsByPosition(txCtx, req.Position)
		if err != nil {
			return fmt.Errorf("failed to check position: %w", err)
		}
		if positionTaken {
			return user.ErrPositionTaken
		}

		newUser, err = s.UserRepository.Create(txCtx, newUser)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	// Best effort; account creation already committed.
	if err := s.emailService.SendWelcome(newUser.Email, newUser.Name, newUser.Position, s.frontendURL); err != nil {
		slog.Error("Failed to send welcome email", "email", newUser.Email, "error", err)
	}

	return user.ToUserResponse(newUser), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) (user.ListUsersResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	resp := user.ListUsersResponse{Users: make([]user.UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, user.ToUserResponse(u))
	}
	return resp, nil
}

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context) (user.UserResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.UpdateProfile(ctx, userID, req.Name)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(u), nil
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.PasswordHash == nil {
		return user.ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.UpdatePassword(ctx, userID, string(hash))
}
