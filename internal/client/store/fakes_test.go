package store

import (
	"context"
	"sync"

	"github.com/Under67/stellar-burgers/internal/client/client"
	"github.com/Under67/stellar-burgers/internal/client/models"
)

// fakeClient implements client.Client; unset funcs fail the call.
type fakeClient struct {
	ingredientsFn func(ctx context.Context) ([]models.Ingredient, error)
	feedFn        func(ctx context.Context) (*models.Feed, error)
	userOrdersFn  func(ctx context.Context) ([]models.Order, error)
	orderByNumFn  func(ctx context.Context, number int) ([]models.Order, error)
	createOrderFn func(ctx context.Context, ids []string) (*models.SubmittedOrder, error)
	registerFn    func(ctx context.Context, data models.RegisterData) (*models.AuthResult, error)
	loginFn       func(ctx context.Context, data models.LoginData) (*models.AuthResult, error)
	refreshFn     func(ctx context.Context, token string) (*models.AuthResult, error)
	logoutFn      func(ctx context.Context, token string) error
	userFn        func(ctx context.Context) (*models.User, error)
	updateUserFn  func(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	mu    sync.Mutex
	calls []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	f.record("GetIngredients")
	if f.ingredientsFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.ingredientsFn(ctx)
}

func (f *fakeClient) GetFeed(ctx context.Context) (*models.Feed, error) {
	f.record("GetFeed")
	if f.feedFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.feedFn(ctx)
}

func (f *fakeClient) GetUserOrders(ctx context.Context) ([]models.Order, error) {
	f.record("GetUserOrders")
	if f.userOrdersFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.userOrdersFn(ctx)
}

func (f *fakeClient) GetOrderByNumber(ctx context.Context, number int) ([]models.Order, error) {
	f.record("GetOrderByNumber")
	if f.orderByNumFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.orderByNumFn(ctx, number)
}

func (f *fakeClient) CreateOrder(ctx context.Context, ids []string) (*models.SubmittedOrder, error) {
	f.record("CreateOrder")
	if f.createOrderFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.createOrderFn(ctx, ids)
}

func (f *fakeClient) Register(ctx context.Context, data models.RegisterData) (*models.AuthResult, error) {
	f.record("Register")
	if f.registerFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.registerFn(ctx, data)
}

func (f *fakeClient) Login(ctx context.Context, data models.LoginData) (*models.AuthResult, error) {
	f.record("Login")
	if f.loginFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.loginFn(ctx, data)
}

func (f *fakeClient) RefreshToken(ctx context.Context, token string) (*models.AuthResult, error) {
	f.record("RefreshToken")
	if f.refreshFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.refreshFn(ctx, token)
}

func (f *fakeClient) Logout(ctx context.Context, token string) error {
	f.record("Logout")
	if f.logoutFn == nil {
		return client.ErrUnavailable
	}
	return f.logoutFn(ctx, token)
}

func (f *fakeClient) GetUser(ctx context.Context) (*models.User, error) {
	f.record("GetUser")
	if f.userFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.userFn(ctx)
}

func (f *fakeClient) UpdateUser(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.record("UpdateUser")
	if f.updateUserFn == nil {
		return nil, client.ErrUnavailable
	}
	return f.updateUserFn(ctx, upd)
}

// fakeCreds is an in-memory Credentials.
type fakeCreds struct {
	mu      sync.Mutex
	access  string
	refresh string
	email   string

	saveErr  error
	clearErr error
	readErr  error
}

func (c *fakeCreds) HasRefreshToken(context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh != "", c.readErr
}

func (c *fakeCreds) RefreshToken(context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refresh, c.readErr
}

func (c *fakeCreds) Save(_ context.Context, access, refresh, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saveErr != nil {
		return c.saveErr
	}
	c.access, c.refresh = access, refresh
	if email != "" {
		c.email = email
	}
	return nil
}

func (c *fakeCreds) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clearErr != nil {
		return c.clearErr
	}
	c.access, c.refresh = "", ""
	return nil
}

func newTestStore(fc *fakeClient, creds *fakeCreds) *Store {
	if creds == nil {
		creds = &fakeCreds{}
	}
	return New(Options{Client: fc, Credentials: creds})
}

var (
	bunB1   = models.Ingredient{ID: "b1", Name: "Fluorescent bun", Type: models.IngredientBun, Price: 100}
	bunB2   = models.Ingredient{ID: "b2", Name: "Crater bun", Type: models.IngredientBun, Price: 60}
	sauceS1 = models.Ingredient{ID: "s1", Name: "Spicy-X sauce", Type: models.IngredientSauce, Price: 20}
	mainM1  = models.Ingredient{ID: "m1", Name: "Meteorite patty", Type: models.IngredientMain, Price: 300}
	catalog = []models.Ingredient{bunB1, bunB2, sauceS1, mainM1}
)

func withCatalog(items []models.Ingredient) *fakeClient {
	return &fakeClient{ingredientsFn: func(context.Context) ([]models.Ingredient, error) {
		return items, nil
	}}
}
