package cli

import (
	"context"
	"fmt"

	"github.com/Under67/stellar-burgers/internal/client/store"
)

// getStatus renders the prompt prefix: who is signed in and what the
// current burger costs.
func (a *App) getStatus() string {
	st := a.store.State()

	s := ""
	if u := st.Session.User; st.Session.IsAuthenticated && u != nil {
		s = u.Name + " "
	}
	if n := len(st.Orders.BuilderList); n > 0 {
		s += fmt.Sprintf("%d items, %d", n, store.Price(store.BuilderContents(st)))
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Stellar Burgers CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
