package store

import "github.com/Under67/stellar-burgers/internal/client/models"

// Action is a state change applied by the reducer.
type Action interface {
	isAction()
}

// Direction of a MoveIngredientAction. Up moves toward index 0.
type Direction int

const (
	Up Direction = iota
	Down
)

type AddIngredientAction struct {
	Ingredient models.Ingredient
}

type RemoveIngredientAction struct {
	ID string
}

type MoveIngredientAction struct {
	Index     int
	Direction Direction
}

// ClearOrderAction dismisses the submission confirmation. It does not touch
// the builder list.
type ClearOrderAction struct{}

type ClearOrderDetailAction struct{}

type SetCurrentOrderDetailIDAction struct {
	ID string
}

func (AddIngredientAction) isAction()           {}
func (RemoveIngredientAction) isAction()        {}
func (MoveIngredientAction) isAction()          {}
func (ClearOrderAction) isAction()              {}
func (ClearOrderDetailAction) isAction()        {}
func (SetCurrentOrderDetailIDAction) isAction() {}

// operation names a network operation; it keys the in-flight sequence
// counters and selects the state slots its outcome writes to.
type operation string

const (
	opLogin       operation = "login"
	opRegister    operation = "register"
	opFetchUser   operation = "fetch_user"
	opRefresh     operation = "refresh"
	opLogout      operation = "logout"
	opUpdateUser  operation = "update_user"
	opCatalog     operation = "catalog"
	opFeed        operation = "feed"
	opOwnOrders   operation = "own_orders"
	opOrderDetail operation = "order_detail"
	opSubmitOrder operation = "submit_order"
)

type requestStarted struct {
	op operation
}

type requestFailed struct {
	op      operation
	message string
}

// authenticated carries the user returned by login, register, fetch-user
// and profile update.
type authenticated struct {
	op   operation
	user models.User
}

// sessionRefreshed carries the user only when the refresh answer had one.
type sessionRefreshed struct {
	user *models.User
}

type loggedOut struct{}

type catalogLoaded struct {
	items []models.Ingredient
}

type feedLoaded struct {
	feed models.Feed
}

type ownOrdersLoaded struct {
	orders []models.Order
}

type orderDetailLoaded struct {
	order *models.Order
}

type orderSubmitted struct {
	order models.SubmittedOrder
}

func (requestStarted) isAction()    {}
func (requestFailed) isAction()     {}
func (authenticated) isAction()     {}
func (sessionRefreshed) isAction()  {}
func (loggedOut) isAction()         {}
func (catalogLoaded) isAction()     {}
func (feedLoaded) isAction()        {}
func (ownOrdersLoaded) isAction()   {}
func (orderDetailLoaded) isAction() {}
func (orderSubmitted) isAction()    {}
