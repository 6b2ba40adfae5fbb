package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/client/store"
)

// Catalog prints the ingredients with how many of each the burger holds.
// It loads the catalog first if an earlier load failed.
func (a *App) Catalog(ctx context.Context) error {
	st := a.store.State()
	if len(st.Catalog.Items) == 0 {
		if err := a.store.FetchCatalog(ctx); err != nil {
			fmt.Fprintln(a.out, "Could not load ingredients:", a.store.State().Catalog.Error)
			return err
		}
		st = a.store.State()
	}

	renderCatalog(a.out, st.Catalog.Items, store.UsageCounters(st))
	return nil
}

// findIngredient resolves ref as an ingredient id or as the 1-based number
// shown by Catalog.
func findIngredient(items []models.Ingredient, ref string) (models.Ingredient, bool) {
	for _, it := range items {
		if it.ID == ref {
			return it, true
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], true
	}
	return models.Ingredient{}, false
}

func (a *App) Add(ctx context.Context, ref string) error {
	ing, ok := findIngredient(a.store.State().Catalog.Items, ref)
	if !ok {
		fmt.Fprintln(a.out, "No such ingredient:", ref)
		return nil
	}

	a.store.AddIngredient(ing)
	fmt.Fprintf(a.out, "Added %s\n", ing.Name)
	return nil
}

func (a *App) Remove(ctx context.Context, id string) error {
	if ing, ok := findIngredient(a.store.State().Catalog.Items, id); ok {
		id = ing.ID
	}
	a.store.RemoveIngredient(id)
	return a.Burger(ctx)
}

func (a *App) Move(ctx context.Context, index string, dir store.Direction) error {
	n, err := strconv.Atoi(index)
	if err != nil {
		fmt.Fprintln(a.out, "Position must be a number:", index)
		return nil
	}
	a.store.MoveIngredient(n, dir)
	return a.Burger(ctx)
}

func (a *App) Burger(ctx context.Context) error {
	renderBuilder(a.out, a.store.State())
	return nil
}

// Order places the current burger and prints the confirmation.
func (a *App) Order(ctx context.Context) error {
	err := a.store.PlaceOrder(ctx)
	switch {
	case errors.Is(err, store.ErrNoBun), errors.Is(err, store.ErrNotAuthenticated),
		errors.Is(err, store.ErrSubmissionInFlight):
		fmt.Fprintln(a.out, capitalize(err.Error()))
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Order failed:", a.store.State().Orders.ErrorSubmission)
		return err
	}

	res := a.store.State().Orders.SubmissionResult
	if res != nil {
		fmt.Fprintf(a.out, "Order #%d placed: %s\n", res.Number, res.Name)
		fmt.Fprintln(a.out, "Your order is being prepared. Type 'dismiss' to close.")
	}
	return nil
}

func (a *App) Dismiss(ctx context.Context) error {
	a.store.ClearOrder()
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
