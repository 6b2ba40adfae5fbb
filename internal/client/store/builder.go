package store

import (
	"slices"

	"github.com/Under67/stellar-burgers/internal/client/models"
)

// addToBuilder returns list with ing added. A bun replaces both ends and
// keeps the interior; with fewer than two elements there is no interior and
// the result is [bun, bun]. Any other ingredient goes right before the last
// element, which is reserved for the bun.
func addToBuilder(list []string, ing models.Ingredient) []string {
	if ing.IsBun() {
		var interior []string
		if len(list) >= 2 {
			interior = list[1 : len(list)-1]
		}
		out := make([]string, 0, len(interior)+2)
		out = append(out, ing.ID)
		out = append(out, interior...)
		return append(out, ing.ID)
	}

	if len(list) == 0 {
		return []string{ing.ID}
	}
	return slices.Insert(slices.Clone(list), len(list)-1, ing.ID)
}

// removeFromBuilder drops the first occurrence of id.
func removeFromBuilder(list []string, id string) []string {
	i := slices.Index(list, id)
	if i < 0 {
		return list
	}
	return slices.Delete(slices.Clone(list), i, i+1)
}

// moveInBuilder swaps the element at index with its neighbour. Out of range
// indices leave list as is.
func moveInBuilder(list []string, index int, dir Direction) []string {
	target := index + 1
	if dir == Up {
		target = index - 1
	}
	if index < 0 || index >= len(list) || target < 0 || target >= len(list) {
		return list
	}
	out := slices.Clone(list)
	out[index], out[target] = out[target], out[index]
	return out
}
