package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/client/store"
)

const feedBoardLimit = 10

func (a *App) Feed(ctx context.Context) error {
	if err := a.store.FetchFeed(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load the feed:", a.store.State().Feed.Error)
		return err
	}

	st := a.store.State()
	renderOrders(a.out, st.Feed.Orders)
	renderFeedBoard(a.out, st.Feed, feedBoardLimit)
	return nil
}

// Orders prints the signed-in user's order history.
func (a *App) Orders(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to see your orders")
		return nil
	}
	if err := a.store.FetchOwnOrders(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not load your orders:", a.store.State().Orders.ErrorOrders)
		return err
	}

	renderOrders(a.out, a.store.State().Orders.Orders)
	return nil
}

// Show prints one order. Orders already in the feed or the history are
// shown from there; others are fetched by number.
func (a *App) Show(ctx context.Context, number string) error {
	n, err := strconv.Atoi(number)
	if err != nil {
		fmt.Fprintln(a.out, "Order number must be a number:", number)
		return nil
	}

	a.store.SetCurrentOrderDetailID(number)
	st := a.store.State()

	order := findOrder(n, st.Feed.Orders, st.Orders.Orders)
	if order == nil {
		if err := a.store.FetchOrderDetail(ctx, n); err != nil {
			fmt.Fprintln(a.out, "Could not load the order:", a.store.State().Orders.ErrorOrderDetail)
			return err
		}
		st = a.store.State()
		order = st.Orders.CurrentOrderDetail
		if order == nil {
			fmt.Fprintf(a.out, "Order #%d not found\n", n)
			return nil
		}
	}

	info, ready := store.OrderDetail(order, st.Catalog.Items)
	if !ready {
		fmt.Fprintln(a.out, "Loading... ingredients are not available yet, try 'catalog' first")
		return nil
	}
	renderOrderInfo(a.out, info)
	return nil
}

func findOrder(number int, lists ...[]models.Order) *models.Order {
	for _, list := range lists {
		for i := range list {
			if list[i].Number == number {
				o := list[i]
				return &o
			}
		}
	}
	return nil
}
