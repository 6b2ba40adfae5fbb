package store

import (
	"time"

	"github.com/Under67/stellar-burgers/internal/client/models"
)

// Burger is the structured view of the builder list.
type Burger struct {
	Bun         *models.Ingredient
	Ingredients []models.Ingredient
}

// IDs flattens b into the wire list, the bun at both ends.
func (b Burger) IDs() []string {
	ids := make([]string, 0, len(b.Ingredients)+2)
	if b.Bun != nil {
		ids = append(ids, b.Bun.ID)
	}
	for _, ing := range b.Ingredients {
		ids = append(ids, ing.ID)
	}
	if b.Bun != nil {
		ids = append(ids, b.Bun.ID)
	}
	return ids
}

// OrderItem is one distinct ingredient of an order with its count.
type OrderItem struct {
	Ingredient models.Ingredient
	Count      int
}

// OrderInfo is an order resolved against the catalog.
type OrderInfo struct {
	Order     models.Order
	Items     []OrderItem
	Total     int
	CreatedAt time.Time
}

func catalogIndex(items []models.Ingredient) map[string]models.Ingredient {
	idx := make(map[string]models.Ingredient, len(items))
	for _, it := range items {
		idx[it.ID] = it
	}
	return idx
}

// BuilderContents splits the builder list into the bun and the fillings.
// Ids missing from the catalog are dropped.
func BuilderContents(st State) Burger {
	idx := catalogIndex(st.Catalog.Items)

	var b Burger
	bunID := ""
	for _, id := range st.Orders.BuilderList {
		if ing, ok := idx[id]; ok && ing.IsBun() {
			bun := ing
			b.Bun = &bun
			bunID = id
			break
		}
	}

	for _, id := range st.Orders.BuilderList {
		if b.Bun != nil && id == bunID {
			continue
		}
		if ing, ok := idx[id]; ok {
			b.Ingredients = append(b.Ingredients, ing)
		}
	}
	return b
}

// Price counts the bun twice, once per end.
func Price(b Burger) int {
	total := 0
	if b.Bun != nil {
		total = 2 * b.Bun.Price
	}
	for _, ing := range b.Ingredients {
		total += ing.Price
	}
	return total
}

// OrderDetail groups the ingredients of order by id and prices them. ready
// is false when order is nil or any id is not in catalog yet.
func OrderDetail(order *models.Order, catalog []models.Ingredient) (OrderInfo, bool) {
	if order == nil {
		return OrderInfo{}, false
	}
	idx := catalogIndex(catalog)

	counts := make(map[string]int, len(order.Ingredients))
	var items []OrderItem
	for _, id := range order.Ingredients {
		if counts[id] == 0 {
			ing, ok := idx[id]
			if !ok {
				return OrderInfo{}, false
			}
			items = append(items, OrderItem{Ingredient: ing})
		}
		counts[id]++
	}

	info := OrderInfo{Order: *order, CreatedAt: order.CreatedAt}
	for _, it := range items {
		it.Count = counts[it.Ingredient.ID]
		info.Total += it.Ingredient.Price * it.Count
		info.Items = append(info.Items, it)
	}
	return info, true
}

// UsageCounters counts each id in the builder list. The bun reads 2.
func UsageCounters(st State) map[string]int {
	counts := make(map[string]int, len(st.Orders.BuilderList))
	for _, id := range st.Orders.BuilderList {
		counts[id]++
	}
	if bun := BuilderContents(st).Bun; bun != nil {
		counts[bun.ID] = 2
	}
	return counts
}
