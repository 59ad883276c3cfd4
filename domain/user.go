package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetCart  = "cart retrieved successfully"
	MessageSuccessAddCart  = "item added to cart"
	MessageSuccessRemove   = "item removed from cart"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetCart    = "failed to retrieve cart"
	MessageFailedUpdateCart = "failed to update cart"

	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user doesn't exist")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrWeakPassword      = errors.New("please enter a strong password")
	ErrCredentialsWrong  = errors.New("invalid credentials")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token string `json:"token"`
	}

	CartUpdateRequest struct {
		ItemID string `json:"itemId" validate:"required,uuid"`
	}
)
