package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrPositionTaken          = errors.New("position already has a holder")
	ErrWrongPassword          = errors.New("current password is incorrect")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
