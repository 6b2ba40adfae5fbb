package store

// reduce returns the state after applying a. It never mutates slices of st
// in place, so earlier snapshots stay valid.
func reduce(st State, a Action) State {
	switch a := a.(type) {
	case AddIngredientAction:
		st.Orders.BuilderList = addToBuilder(st.Orders.BuilderList, a.Ingredient)
	case RemoveIngredientAction:
		st.Orders.BuilderList = removeFromBuilder(st.Orders.BuilderList, a.ID)
	case MoveIngredientAction:
		st.Orders.BuilderList = moveInBuilder(st.Orders.BuilderList, a.Index, a.Direction)
	case ClearOrderAction:
		st.Orders.SubmissionResult = nil
	case ClearOrderDetailAction:
		st.Orders.CurrentOrderDetail = nil
	case SetCurrentOrderDetailIDAction:
		st.Orders.CurrentOrderDetailID = a.ID

	case requestStarted:
		st = reduceStarted(st, a.op)
	case requestFailed:
		st = reduceFailed(st, a.op, a.message)

	case authenticated:
		user := a.user
		st.Session.User = &user
		st.Session.IsAuthenticated = true
		st.Session.IsAuthChecked = true
		switch a.op {
		case opLogin:
			st.Session.LoginPending = false
			st.Session.LoginError = ""
		case opRegister:
			st.Session.RegisterPending = false
			st.Session.RegisterError = ""
		case opFetchUser:
			st.Session.FetchUserError = ""
		case opUpdateUser:
			st.Session.UpdatePending = false
			st.Session.UpdateError = ""
		}
	case sessionRefreshed:
		st.Session.IsAuthChecked = true
		st.Session.RefreshError = ""
		if a.user != nil {
			user := *a.user
			st.Session.User = &user
			st.Session.IsAuthenticated = true
		}
	case loggedOut:
		st.Session.User = nil
		st.Session.IsAuthenticated = false
		st.Session.IsAuthChecked = true
		st.Session.LogoutError = ""

	case catalogLoaded:
		st.Catalog.Items = a.items
		st.Catalog.IsLoading = false
		st.Catalog.Error = ""
	case feedLoaded:
		st.Feed.Orders = a.feed.Orders
		st.Feed.Total = a.feed.Total
		st.Feed.TotalToday = a.feed.TotalToday
		st.Feed.IsLoading = false
		st.Feed.Error = ""
	case ownOrdersLoaded:
		st.Orders.Orders = a.orders
		st.Orders.IsLoadingOrders = false
		st.Orders.ErrorOrders = ""
	case orderDetailLoaded:
		st.Orders.CurrentOrderDetail = a.order
		st.Orders.IsLoadingOrderDetail = false
		st.Orders.ErrorOrderDetail = ""
	case orderSubmitted:
		order := a.order
		st.Orders.SubmissionResult = &order
		st.Orders.BuilderList = []string{}
		st.Orders.IsLoadingSubmission = false
		st.Orders.ErrorSubmission = ""
	}
	return st
}

func reduceStarted(st State, op operation) State {
	switch op {
	case opLogin:
		st.Session.LoginPending = true
		st.Session.LoginError = ""
	case opRegister:
		st.Session.RegisterPending = true
		st.Session.RegisterError = ""
	case opUpdateUser:
		st.Session.UpdatePending = true
		st.Session.UpdateError = ""
	case opCatalog:
		st.Catalog.IsLoading = true
		st.Catalog.Error = ""
	case opFeed:
		st.Feed.IsLoading = true
		st.Feed.Error = ""
	case opOwnOrders:
		st.Orders.IsLoadingOrders = true
		st.Orders.ErrorOrders = ""
	case opOrderDetail:
		st.Orders.IsLoadingOrderDetail = true
		st.Orders.ErrorOrderDetail = ""
	case opSubmitOrder:
		st.Orders.IsLoadingSubmission = true
		st.Orders.ErrorSubmission = ""
	}
	return st
}

func reduceFailed(st State, op operation, msg string) State {
	switch op {
	case opLogin:
		st.Session.LoginPending = false
		st.Session.LoginError = msg
		st.Session.IsAuthChecked = true
	case opRegister:
		st.Session.RegisterPending = false
		st.Session.RegisterError = msg
		st.Session.IsAuthChecked = true
	case opFetchUser:
		st.Session.User = nil
		st.Session.IsAuthenticated = false
		st.Session.IsAuthChecked = true
		st.Session.FetchUserError = msg
	case opRefresh:
		st.Session.IsAuthChecked = true
		st.Session.RefreshError = msg
	case opLogout:
		st.Session.IsAuthChecked = true
		st.Session.LogoutError = msg
	case opUpdateUser:
		st.Session.UpdatePending = false
		st.Session.UpdateError = msg
	case opCatalog:
		st.Catalog.IsLoading = false
		st.Catalog.Error = msg
	case opFeed:
		st.Feed.IsLoading = false
		st.Feed.Error = msg
	case opOwnOrders:
		st.Orders.IsLoadingOrders = false
		st.Orders.ErrorOrders = msg
	case opOrderDetail:
		st.Orders.IsLoadingOrderDetail = false
		st.Orders.ErrorOrderDetail = msg
	case opSubmitOrder:
		st.Orders.IsLoadingSubmission = false
		st.Orders.ErrorSubmission = msg
	}
	return st
}
