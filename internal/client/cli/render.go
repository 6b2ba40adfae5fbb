package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/client/store"
)

const timeLayout = "2006-01-02 15:04"

var typeTitles = map[models.IngredientType]string{
	models.IngredientBun:   "Buns",
	models.IngredientSauce: "Sauces",
	models.IngredientMain:  "Mains",
}

// renderCatalog lists ingredients grouped by type with a running number
// usable in "add #". counts marks how many of each are in the burger.
func renderCatalog(w io.Writer, items []models.Ingredient, counts map[string]int) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No ingredients loaded")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, typ := range []models.IngredientType{models.IngredientBun, models.IngredientSauce, models.IngredientMain} {
		fmt.Fprintf(tw, "%s\n", typeTitles[typ])
		for i, it := range items {
			if it.Type != typ {
				continue
			}
			used := ""
			if n := counts[it.ID]; n > 0 {
				used = fmt.Sprintf("x%d", n)
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%d\t%s\n", i+1, it.ID, it.Name, it.Price, used)
		}
	}
	tw.Flush()
}

// renderBuilder prints the builder list with the indices "up"/"down" take.
func renderBuilder(w io.Writer, st store.State) {
	if len(st.Orders.BuilderList) == 0 {
		fmt.Fprintln(w, "Your burger is empty. Pick a bun and fillings with 'add'.")
		return
	}

	names := make(map[string]models.Ingredient, len(st.Catalog.Items))
	for _, it := range st.Catalog.Items {
		names[it.ID] = it
	}

	burger := store.BuilderContents(st)
	last := len(st.Orders.BuilderList) - 1

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, id := range st.Orders.BuilderList {
		ing, ok := names[id]
		name := ing.Name
		if !ok {
			name = id + " (unknown)"
		}
		mark := ""
		if burger.Bun != nil && id == burger.Bun.ID {
			switch i {
			case 0:
				mark = "(top)"
			case last:
				mark = "(bottom)"
			}
		}
		fmt.Fprintf(tw, "[%d]\t%s\t%s\t%d\n", i, name, mark, ing.Price)
	}
	tw.Flush()

	if burger.Bun == nil {
		fmt.Fprintln(w, "Choose a bun")
	}
	fmt.Fprintf(w, "Total: %d\n", store.Price(burger))
}

func renderOrders(w io.Writer, orders []models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tNAME\tSTATUS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\n", o.Number, o.Name, o.Status.Title(), o.CreatedAt.Local().Format(timeLayout))
	}
	tw.Flush()
}

// renderFeedBoard prints the counters and up to limit ready and in-progress
// order numbers, like the feed page's board.
func renderFeedBoard(w io.Writer, feed store.FeedState, limit int) {
	var done, pending []string
	for _, o := range feed.Orders {
		switch o.Status {
		case models.OrderStatusDone:
			if len(done) < limit {
				done = append(done, fmt.Sprint(o.Number))
			}
		case models.OrderStatusPending:
			if len(pending) < limit {
				pending = append(pending, fmt.Sprint(o.Number))
			}
		}
	}

	fmt.Fprintf(w, "Ready: %s\n", strings.Join(done, " "))
	fmt.Fprintf(w, "In progress: %s\n", strings.Join(pending, " "))
	fmt.Fprintf(w, "Completed all time: %d\n", feed.Total)
	fmt.Fprintf(w, "Completed today: %d\n", feed.TotalToday)
}

func renderOrderInfo(w io.Writer, info store.OrderInfo) {
	o := info.Order
	fmt.Fprintf(w, "#%d %s\n", o.Number, o.Name)
	fmt.Fprintf(w, "Status: %s\n", o.Status.Title())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range info.Items {
		fmt.Fprintf(tw, "  %s\t%d x %d\n", it.Ingredient.Name, it.Count, it.Ingredient.Price)
	}
	tw.Flush()

	fmt.Fprintf(w, "%s  Total: %d\n", info.CreatedAt.Local().Format(timeLayout), info.Total)
}
