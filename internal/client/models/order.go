package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrderStatus is the backend's lifecycle value for an order. Unknown values
// are kept verbatim.
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPending OrderStatus = "pending"
	OrderStatusDone    OrderStatus = "done"
)

// Title is the human label shown for a status.
func (s OrderStatus) Title() string {
	switch s {
	case OrderStatusCreated:
		return "Created"
	case OrderStatusPending:
		return "Preparing"
	case OrderStatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// IDList is an ordered list of ingredient IDs. On the wire the backend sends
// either plain IDs or full ingredient objects (order creation does the
// latter); both decode to IDs.
type IDList []string

func (l *IDList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*l = nil
		return nil
	}

	ids := make(IDList, 0, len(raw))
	for _, item := range raw {
		var id string
		if err := json.Unmarshal(item, &id); err == nil {
			ids = append(ids, id)
			continue
		}
		var obj struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return fmt.Errorf("ingredient ref: %w", err)
		}
		ids = append(ids, obj.ID)
	}
	*l = ids
	return nil
}

// Order is a placed order as seen in the feed, in a user's history or in the
// detail view. Records are replaced wholesale on every fetch.
type Order struct {
	ID          string      `json:"_id"`
	Number      int         `json:"number"`
	Name        string      `json:"name"`
	Status      OrderStatus `json:"status"`
	Ingredients IDList      `json:"ingredients"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SubmittedOrder is the backend's confirmation for a just-placed order.
type SubmittedOrder struct {
	Name        string `json:"name"`
	Number      int    `json:"number"`
	Ingredients IDList `json:"ingredients"`
}

// Feed is the public order stream together with its counters.
type Feed struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalToday int     `json:"totalToday"`
}
