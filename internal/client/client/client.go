package client

import (
	"context"

	"github.com/Under67/stellar-burgers/internal/client/models"
)

// Client is the transport-agnostic contract of the burger shop backend.
type Client interface {
	GetIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetFeed(ctx context.Context) (*models.Feed, error)
	GetUserOrders(ctx context.Context) ([]models.Order, error)
	GetOrderByNumber(ctx context.Context, number int) ([]models.Order, error)
	CreateOrder(ctx context.Context, ingredientIDs []string) (*models.SubmittedOrder, error)

	Register(ctx context.Context, data models.RegisterData) (*models.AuthResult, error)
	Login(ctx context.Context, data models.LoginData) (*models.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
}

// TokenStore supplies and receives the session credentials used by
// authorized calls. credentials.Store implements it.
type TokenStore interface {
	AccessToken() string
	RefreshToken(ctx context.Context) (string, error)
	Save(ctx context.Context, access, refresh, email string) error
}
