package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFood    = "food added"
	MessageSuccessListFood   = "foods retrieved successfully"
	MessageSuccessRemoveFood = "food removed"

	MessageFailedAddFood    = "failed to add food"
	MessageFailedListFood   = "failed to retrieve foods"
	MessageFailedRemoveFood = "failed to remove food"

	ErrFoodNotFound       = errors.New("food not found")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	AddFoodRequest struct {
		Name        string                `json:"name" form:"name" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Price       float64               `json:"price" form:"price" validate:"required,gt=0"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Image       *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RemoveFoodRequest struct {
		ID string `json:"id" validate:"required,uuid"`
	}

	FoodResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Price       float64   `json:"price"`
		Category    string    `json:"category"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
