package store

import (
	"context"
	"slices"

	"github.com/Under67/stellar-burgers/internal/client/models"
)

const (
	msgOwnOrdersFailed   = "failed to load your orders"
	msgSubmitFailed      = "order was not placed"
	msgOrderDetailFailed = "failed to load order"
)

func (s *Store) AddIngredient(ing models.Ingredient) {
	s.Dispatch(AddIngredientAction{Ingredient: ing})
}

func (s *Store) RemoveIngredient(id string) {
	s.Dispatch(RemoveIngredientAction{ID: id})
}

func (s *Store) MoveIngredient(index int, dir Direction) {
	s.Dispatch(MoveIngredientAction{Index: index, Direction: dir})
}

// ClearOrder dismisses the submission confirmation.
func (s *Store) ClearOrder() {
	s.Dispatch(ClearOrderAction{})
}

func (s *Store) ClearOrderDetail() {
	s.Dispatch(ClearOrderDetailAction{})
}

func (s *Store) SetCurrentOrderDetailID(id string) {
	s.Dispatch(SetCurrentOrderDetailIDAction{ID: id})
}

// SubmitOrder places an order made of ids. On success the builder is
// emptied; on failure it is kept so the user can retry.
func (s *Store) SubmitOrder(ctx context.Context, ids []string) error {
	n := s.begin(opSubmitOrder)

	order, err := s.client.CreateOrder(ctx, slices.Clone(ids))
	if err != nil {
		return s.fail(ctx, opSubmitOrder, n, err, msgSubmitFailed)
	}

	s.finish(ctx, opSubmitOrder, n, orderSubmitted{order: *order})
	s.log.Info(ctx, "order placed", "number", order.Number)
	return nil
}

// PlaceOrder submits the current builder contents. It refuses without a
// bun or a session and ignores the call while a submission is in flight.
func (s *Store) PlaceOrder(ctx context.Context) error {
	st := s.State()

	switch {
	case st.Orders.IsLoadingSubmission:
		return ErrSubmissionInFlight
	case BuilderContents(st).Bun == nil:
		return ErrNoBun
	case !st.Session.IsAuthenticated:
		return ErrNotAuthenticated
	}
	return s.SubmitOrder(ctx, st.Orders.BuilderList)
}

// FetchOrderDetail loads the order with the given number into
// CurrentOrderDetail, or nil when the backend knows no such order.
func (s *Store) FetchOrderDetail(ctx context.Context, number int) error {
	n := s.begin(opOrderDetail)

	orders, err := s.client.GetOrderByNumber(ctx, number)
	if err != nil {
		return s.fail(ctx, opOrderDetail, n, err, msgOrderDetailFailed)
	}

	var order *models.Order
	if len(orders) > 0 {
		o := orders[0]
		order = &o
	}
	s.finish(ctx, opOrderDetail, n, orderDetailLoaded{order: order})
	return nil
}

// FetchOwnOrders replaces the user's order history.
func (s *Store) FetchOwnOrders(ctx context.Context) error {
	n := s.begin(opOwnOrders)

	orders, err := s.client.GetUserOrders(ctx)
	if err != nil {
		return s.fail(ctx, opOwnOrders, n, err, msgOwnOrdersFailed)
	}

	s.finish(ctx, opOwnOrders, n, ownOrdersLoaded{orders: orders})
	return nil
}
