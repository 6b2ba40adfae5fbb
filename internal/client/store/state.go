package store

import (
	"slices"

	"github.com/Under67/stellar-burgers/internal/client/models"
)

type SessionState struct {
	User            *models.User
	IsAuthChecked   bool
	IsAuthenticated bool

	LoginError     string
	RegisterError  string
	FetchUserError string
	RefreshError   string
	LogoutError    string
	UpdateError    string

	LoginPending    bool
	RegisterPending bool
	UpdatePending   bool
}

type CatalogState struct {
	Items     []models.Ingredient
	IsLoading bool
	Error     string
}

type FeedState struct {
	Orders     []models.Order
	Total      int
	TotalToday int
	IsLoading  bool
	Error      string
}

// OrdersState holds the order builder, the last submission and the user's
// order history. BuilderList keeps the bun id at both ends when a bun is
// chosen.
type OrdersState struct {
	Orders               []models.Order
	CurrentOrderDetail   *models.Order
	CurrentOrderDetailID string

	IsLoadingOrders      bool
	IsLoadingOrderDetail bool
	IsLoadingSubmission  bool

	ErrorOrders      string
	ErrorOrderDetail string
	ErrorSubmission  string

	BuilderList      []string
	SubmissionResult *models.SubmittedOrder
}

// State is the process-wide application state.
type State struct {
	Session SessionState
	Catalog CatalogState
	Feed    FeedState
	Orders  OrdersState
}

// clone returns a deep copy so a snapshot handed to callers shares nothing
// with the store.
func (s State) clone() State {
	out := s

	if s.Session.User != nil {
		u := *s.Session.User
		out.Session.User = &u
	}

	out.Catalog.Items = slices.Clone(s.Catalog.Items)
	out.Feed.Orders = cloneOrders(s.Feed.Orders)

	out.Orders.Orders = cloneOrders(s.Orders.Orders)
	out.Orders.BuilderList = slices.Clone(s.Orders.BuilderList)
	if s.Orders.CurrentOrderDetail != nil {
		o := cloneOrder(*s.Orders.CurrentOrderDetail)
		out.Orders.CurrentOrderDetail = &o
	}
	if s.Orders.SubmissionResult != nil {
		r := *s.Orders.SubmissionResult
		r.Ingredients = slices.Clone(r.Ingredients)
		out.Orders.SubmissionResult = &r
	}
	return out
}

func cloneOrder(o models.Order) models.Order {
	o.Ingredients = slices.Clone(o.Ingredients)
	return o
}

func cloneOrders(orders []models.Order) []models.Order {
	if orders == nil {
		return nil
	}
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}
