// Package models defines the client-side data models of the burger shop:
// catalog ingredients, orders, the public feed and the user profile.
package models

// IngredientType classifies a catalog ingredient.
type IngredientType string

const (
	IngredientBun   IngredientType = "bun"
	IngredientSauce IngredientType = "sauce"
	IngredientMain  IngredientType = "main"
)

// Ingredient is a purchasable catalog item. It is immutable once loaded and
// is referenced by ID from builder lists and orders.
type Ingredient struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Type          IngredientType `json:"type"`
	Proteins      int            `json:"proteins"`
	Fat           int            `json:"fat"`
	Carbohydrates int            `json:"carbohydrates"`
	Calories      int            `json:"calories"`
	Price         int            `json:"price"`
	Image         string         `json:"image"`
	ImageLarge    string         `json:"image_large"`
	ImageMobile   string         `json:"image_mobile"`
}

func (i Ingredient) IsBun() bool {
	return i.Type == IngredientBun
}
