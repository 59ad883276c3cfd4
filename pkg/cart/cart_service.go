package cart

import (
	"context"
	"errors"

	"food-delivery-backend/domain"
	"food-delivery-backend/entities"
	"food-delivery-backend/pkg/food"
	"food-delivery-backend/pkg/user"

	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, userID string, itemID string) error
		RemoveFromCart(ctx context.Context, userID string, itemID string) error
		GetCart(ctx context.Context, userID string) (entities.CartData, error)
	}

	cartService struct {
		userRepository user.UserRepository
		foodRepository food.FoodRepository
	}
)

func NewCartService(userRepository user.UserRepository, foodRepository food.FoodRepository) CartService {
	return &cartService{
		userRepository: userRepository,
		foodRepository: foodRepository,
	}
}

func (s *cartService) AddToCart(ctx context.Context, userID string, itemID string) error {
	if _, err := s.foodRepository.GetFoodByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodNotFound
		}
		return err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	cart := u.CartData
	if cart == nil {
		cart = entities.CartData{}
	}
	cart[itemID]++

	return s.userRepository.UpdateCart(ctx, userID, cart)
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID string, itemID string) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	cart := u.CartData
	if cart == nil {
		cart = entities.CartData{}
	}
	if cart[itemID] > 0 {
		cart[itemID]--
	}
	if cart[itemID] == 0 {
		delete(cart, itemID)
	}

	return s.userRepository.UpdateCart(ctx, userID, cart)
}

func (s *cartService) GetCart(ctx context.Context, userID string) (entities.CartData, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if u.CartData == nil {
		return entities.CartData{}, nil
	}
	return u.CartData, nil
}
