package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Under67/stellar-burgers/internal/client/client"
	"github.com/Under67/stellar-burgers/internal/client/config"
	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/client/store"
	"github.com/Under67/stellar-burgers/internal/logging"
)

// fakeAPI is a canned client.Client; a nil result with a nil error means
// the backend is down.
type fakeAPI struct {
	ingredients []models.Ingredient
	feed        *models.Feed
	userOrders  []models.Order
	byNumber    map[int]models.Order
	submitted   *models.SubmittedOrder
	auth        *models.AuthResult
	user        *models.User
	err         error

	createdWith []string
	logins      []models.LoginData
	updates     []models.ProfileUpdate
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) fail() error {
	if f.err != nil {
		return f.err
	}
	return client.ErrUnavailable
}

func (f *fakeAPI) GetIngredients(context.Context) ([]models.Ingredient, error) {
	if f.ingredients == nil {
		return nil, f.fail()
	}
	return f.ingredients, nil
}

func (f *fakeAPI) GetFeed(context.Context) (*models.Feed, error) {
	if f.feed == nil {
		return nil, f.fail()
	}
	return f.feed, nil
}

func (f *fakeAPI) GetUserOrders(context.Context) ([]models.Order, error) {
	if f.userOrders == nil {
		return nil, f.fail()
	}
	return f.userOrders, nil
}

func (f *fakeAPI) GetOrderByNumber(_ context.Context, n int) ([]models.Order, error) {
	if f.byNumber == nil {
		return nil, f.fail()
	}
	if o, ok := f.byNumber[n]; ok {
		return []models.Order{o}, nil
	}
	return []models.Order{}, nil
}

func (f *fakeAPI) CreateOrder(_ context.Context, ids []string) (*models.SubmittedOrder, error) {
	f.createdWith = ids
	if f.submitted == nil {
		return nil, f.fail()
	}
	return f.submitted, nil
}

func (f *fakeAPI) Register(context.Context, models.RegisterData) (*models.AuthResult, error) {
	if f.auth == nil {
		return nil, f.fail()
	}
	return f.auth, nil
}

func (f *fakeAPI) Login(_ context.Context, d models.LoginData) (*models.AuthResult, error) {
	f.logins = append(f.logins, d)
	if f.auth == nil {
		return nil, f.fail()
	}
	return f.auth, nil
}

func (f *fakeAPI) RefreshToken(context.Context, string) (*models.AuthResult, error) {
	if f.auth == nil {
		return nil, f.fail()
	}
	return &models.AuthResult{AccessToken: f.auth.AccessToken, RefreshToken: f.auth.RefreshToken}, nil
}

func (f *fakeAPI) Logout(context.Context, string) error {
	if f.auth == nil {
		return f.fail()
	}
	return nil
}

func (f *fakeAPI) GetUser(context.Context) (*models.User, error) {
	if f.user == nil {
		return nil, f.fail()
	}
	return f.user, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.updates = append(f.updates, upd)
	if f.user == nil {
		return nil, f.fail()
	}
	u := *f.user
	if upd.Name != "" {
		u.Name = upd.Name
	}
	return &u, nil
}

type memCreds struct {
	refresh string
	email   string
}

func (m *memCreds) HasRefreshToken(context.Context) (bool, error) { return m.refresh != "", nil }
func (m *memCreds) RefreshToken(context.Context) (string, error)  { return m.refresh, nil }
func (m *memCreds) LastEmail(context.Context) (string, error)     { return m.email, nil }

func (m *memCreds) Save(_ context.Context, _, refresh, email string) error {
	m.refresh = refresh
	if email != "" {
		m.email = email
	}
	return nil
}

func (m *memCreds) Clear(context.Context) error {
	m.refresh = ""
	return nil
}

var (
	testBun   = models.Ingredient{ID: "b1", Name: "Fluorescent bun", Type: models.IngredientBun, Price: 100}
	testSauce = models.Ingredient{ID: "s1", Name: "Spicy-X sauce", Type: models.IngredientSauce, Price: 20}
	testMain  = models.Ingredient{ID: "m1", Name: "Meteorite patty", Type: models.IngredientMain, Price: 300}
)

func newTestApp(t *testing.T, api *fakeAPI, input string) (*App, *bytes.Buffer, *memCreds) {
	t.Helper()
	creds := &memCreds{}
	out := &bytes.Buffer{}
	st := store.New(store.Options{Client: api, Credentials: creds})
	return &App{
		config: &config.Config{},
		store:  st,
		hints:  creds,
		log:    logging.Discard(),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}, out, creds
}

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		i++
		return answers[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
