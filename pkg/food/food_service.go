package food

import (
	"context"
	"errors"
	"fmt"

	"food-delivery-backend/domain"
	"food-delivery-backend/entities"
	"food-delivery-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error)
		GetFoods(ctx context.Context) ([]domain.FoodResponse, error)
		RemoveFood(ctx context.Context, id string) error
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error) {
	if req.Price <= 0 {
		return domain.FoodResponse{}, domain.ErrInvalidPrice
	}
	if !storage.ContentTypeAllowed(req.Image.Header.Get("Content-Type"), storage.AllowImage) {
		return domain.FoodResponse{}, domain.ErrInvalidImageFormat
	}

	food := &entities.Food{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}

	fileName := fmt.Sprintf("food-%s", food.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	food.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.FoodResponse{}, err
	}

	return domain.FoodResponse{
		ID:          food.ID.String(),
		Name:        food.Name,
		Description: food.Description,
		Price:       food.Price,
		Category:    food.Category,
		ImageURL:    food.ImageURL,
		CreatedAt:   food.CreatedAt,
	}, nil
}

func (s *foodService) GetFoods(ctx context.Context) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.FoodResponse
	for _, food := range foods {
		response = append(response, domain.FoodResponse{
			ID:          food.ID.String(),
			Name:        food.Name,
			Description: food.Description,
			Price:       food.Price,
			Category:    food.Category,
			ImageURL:    food.ImageURL,
			CreatedAt:   food.CreatedAt,
		})
	}

	return response, nil
}

func (s *foodService) RemoveFood(ctx context.Context, id string) error {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	// Image lifecycle follows the record, best-effort.
	if food.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(food.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFood(ctx, id)
}
