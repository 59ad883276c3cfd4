package routes

import (
	"food-delivery-backend/internal/api/handlers"
	"food-delivery-backend/internal/middleware"
	"food-delivery-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	FoodHandler  handlers.FoodHandler
	CartHandler  handlers.CartHandler
	OrderHandler handlers.OrderHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Food()
	c.Cart()
	c.Order()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/user")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Food() {
	food := c.App.Group("/api/food")
	{
		food.Post("/add", c.FoodHandler.AddFood)
		food.Get("/list", c.FoodHandler.ListFood)
		food.Post("/remove", c.FoodHandler.RemoveFood)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Post("/add", c.CartHandler.AddToCart)
		cart.Post("/remove", c.CartHandler.RemoveFromCart)
		cart.Post("/get", c.CartHandler.GetCart)
	}
}

func (c *Config) Order() {
	order := c.App.Group("/api/order")
	{
		order.Post("/place", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.PlaceOrder)
		order.Post("/userorders", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.UserOrders)
		order.Post("/verify", c.OrderHandler.VerifyOrder)
		order.Get("/list", c.OrderHandler.ListOrders)
		order.Post("/status", c.OrderHandler.UpdateStatus)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/payment", c.OrderHandler.PaymentWebhook)
}
