package config

import (
	"os"
	"time"

	"food-delivery-backend/internal/api/handlers"
	"food-delivery-backend/internal/api/routes"
	"food-delivery-backend/internal/middleware"
	"food-delivery-backend/internal/utils"
	"food-delivery-backend/internal/utils/mailing"
	"food-delivery-backend/internal/utils/storage"
	"food-delivery-backend/pkg/cart"
	"food-delivery-backend/pkg/food"
	"food-delivery-backend/pkg/jwt"
	"food-delivery-backend/pkg/order"
	"food-delivery-backend/pkg/payment"
	"food-delivery-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	gateway := payment.NewMidtransGateway()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, s3)
	cartService := cart.NewCartService(userRepository, foodRepository)
	orderService := order.NewOrderService(
		orderRepository,
		userRepository,
		gateway,
		order.NewPricingFromConfig(),
		utils.GetConfig("FRONTEND_URL"),
		mailing.SendMail,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		FoodHandler:  foodHandler,
		CartHandler:  cartHandler,
		OrderHandler: orderHandler,
		Middleware:   middlewares,
		JWTService:   jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
