// Package http exposes the point-of-sale use cases over a JSON API.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pizzapos/internal/core/application/usecases/commands"
	"pizzapos/internal/core/application/usecases/queries"
	"pizzapos/internal/core/domain/model/catalog"
	"pizzapos/internal/core/domain/model/order"
	"pizzapos/internal/core/domain/model/terminal"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	AddToCart           commands.AddToCartCommandHandler
	ApplyTemplate       commands.ApplyTemplateCommandHandler
	UpdateCartItem      commands.UpdateCartItemCommandHandler
	UpdateQuantity      commands.UpdateQuantityCommandHandler
	RemoveCartItem      commands.RemoveCartItemCommandHandler
	DuplicateItem       commands.DuplicateItemCommandHandler
	ClearCart           commands.ClearCartCommandHandler
	UndoLastAction      commands.UndoLastActionCommandHandler
	AddTab              commands.AddTabCommandHandler
	CloseTab            commands.CloseTabCommandHandler
	SetActiveTab        commands.SetActiveTabCommandHandler
	HoldOrder           commands.HoldOrderCommandHandler
	ResumeOrder         commands.ResumeOrderCommandHandler
	StartCustomizing    commands.StartCustomizingCommandHandler
	StartEditing        commands.StartEditingCommandHandler
	CancelCustomizing   commands.CancelCustomizingCommandHandler
	UpdateStock         commands.UpdateStockCommandHandler
	UpdateToppingStatus commands.UpdateToppingStatusCommandHandler
	ProcessTransaction  commands.ProcessTransactionCommandHandler
	UpdateSettings      commands.UpdateTerminalSettingsCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetProducts      queries.GetProductsQueryHandler
	GetToppings      queries.GetToppingsQueryHandler
	GetCart          queries.GetCartQueryHandler
	GetTabs          queries.GetTabsQueryHandler
	GetHeldOrders    queries.GetHeldOrdersQueryHandler
	GetSessions      queries.GetCustomizingSessionsQueryHandler
	GetLiveOrders    queries.GetLiveOrdersQueryHandler
	GetOrdersArchive queries.GetOrdersArchiveQueryHandler
	GetKitchenStatus queries.GetKitchenStatusQueryHandler
	GetSettings      queries.GetSettingsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates an HTTP server backed by the given handlers.
func NewServer(cmds Commands, qrys Queries) *Server {
	return &Server{commands: cmds, queries: qrys}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)
	api.PUT("/products/:id/stock", s.UpdateStock)
	api.GET("/toppings", s.GetToppings)
	api.PUT("/toppings/:id/status", s.UpdateToppingStatus)

	api.GET("/cart", s.GetCart)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/cart/items", s.AddToCart)
	api.PUT("/cart/items/:cartId", s.UpdateCartItem)
	api.DELETE("/cart/items/:cartId", s.RemoveCartItem)
	api.PUT("/cart/items/:cartId/quantity", s.UpdateQuantity)
	api.POST("/cart/items/:cartId/duplicate", s.DuplicateItem)
	api.POST("/cart/templates/:id", s.ApplyTemplate)
	api.POST("/cart/undo", s.UndoLastAction)

	api.GET("/tabs", s.GetTabs)
	api.POST("/tabs", s.AddTab)
	api.DELETE("/tabs/:index", s.CloseTab)
	api.PUT("/tabs/active", s.SetActiveTab)

	api.GET("/holds", s.GetHeldOrders)
	api.POST("/holds", s.HoldOrder)
	api.POST("/holds/:id/resume", s.ResumeOrder)

	api.GET("/customizations", s.GetCustomizingSessions)
	api.POST("/customizations", s.StartCustomizing)
	api.POST("/cart/items/:cartId/edit", s.StartEditing)
	api.DELETE("/customizations/:tempId", s.CancelCustomizing)

	api.POST("/checkout", s.Checkout)

	api.GET("/orders/live", s.GetLiveOrders)
	api.GET("/orders/archive", s.GetOrdersArchive)
	api.GET("/kitchen/status", s.GetKitchenStatus)

	api.GET("/settings", s.GetSettings)
	api.PUT("/settings", s.UpdateSettings)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery(
		ctx.QueryParam("search"),
		ctx.QueryParam("category"),
	)

	response, err := s.queries.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve products")
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetToppings handles GET /api/v1/toppings.
func (s *Server) GetToppings(ctx echo.Context) error {
	response, err := s.queries.GetToppings.Handle(ctx.Request().Context(), queries.NewGetToppingsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve toppings")
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	response, err := s.queries.GetCart.Handle(ctx.Request().Context(), queries.NewGetCartQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve cart")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"items":        newCartItemDTOs(response.Items),
		"subtotal":     response.Subtotal,
		"tax":          response.Tax,
		"total":        response.Total,
		"displayTotal": response.DisplayTotal,
		"canUndo":      response.CanUndo,
	})
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(ctx echo.Context) error {
	var req AddToCartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddToCartCommand(req.ProductID, req.Customization.toDomain())
	if err != nil {
		return badRequest(ctx, "Invalid cart data: "+err.Error())
	}

	if err := s.commands.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to add product to cart")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ApplyTemplate handles POST /api/v1/cart/templates/:id.
func (s *Server) ApplyTemplate(ctx echo.Context) error {
	cmd, err := commands.NewApplyTemplateCommand(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid template data: "+err.Error())
	}

	if err := s.commands.ApplyTemplate.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to apply template")
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCartItem handles PUT /api/v1/cart/items/:cartId.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	var req UpdateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemCommand(ctx.Param("cartId"), req.Customization.toDomain())
	if err != nil {
		return badRequest(ctx, "Invalid cart data: "+err.Error())
	}

	if err := s.commands.UpdateCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to update cart item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateQuantity handles PUT /api/v1/cart/items/:cartId/quantity.
func (s *Server) UpdateQuantity(ctx echo.Context) error {
	var req UpdateQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateQuantityCommand(ctx.Param("cartId"), req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity data: "+err.Error())
	}

	if err := s.commands.UpdateQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to update quantity")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:cartId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCartItemCommand(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart data: "+err.Error())
	}

	if err := s.commands.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to remove cart item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DuplicateItem handles POST /api/v1/cart/items/:cartId/duplicate.
func (s *Server) DuplicateItem(ctx echo.Context) error {
	cmd, err := commands.NewDuplicateItemCommand(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart data: "+err.Error())
	}

	if err := s.commands.DuplicateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to duplicate cart item")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd := commands.NewClearCartCommand()

	if err := s.commands.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to clear cart")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UndoLastAction handles POST /api/v1/cart/undo.
func (s *Server) UndoLastAction(ctx echo.Context) error {
	cmd := commands.NewUndoLastActionCommand()

	if err := s.commands.UndoLastAction.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to undo last action")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTabs handles GET /api/v1/tabs.
func (s *Server) GetTabs(ctx echo.Context) error {
	response, err := s.queries.GetTabs.Handle(ctx.Request().Context(), queries.NewGetTabsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve tabs")
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddTab handles POST /api/v1/tabs.
func (s *Server) AddTab(ctx echo.Context) error {
	cmd := commands.NewAddTabCommand()

	if err := s.commands.AddTab.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to open tab")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CloseTab handles DELETE /api/v1/tabs/:index.
func (s *Server) CloseTab(ctx echo.Context) error {
	var index int
	if err := echo.PathParamsBinder(ctx).Int("index", &index).BindError(); err != nil {
		return badRequest(ctx, "Invalid tab index")
	}

	cmd, err := commands.NewCloseTabCommand(index)
	if err != nil {
		return badRequest(ctx, "Invalid tab data: "+err.Error())
	}

	if err := s.commands.CloseTab.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to close tab")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetActiveTab handles PUT /api/v1/tabs/active.
func (s *Server) SetActiveTab(ctx echo.Context) error {
	var req SetActiveTabRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetActiveTabCommand(req.Index)
	if err != nil {
		return badRequest(ctx, "Invalid tab data: "+err.Error())
	}

	if err := s.commands.SetActiveTab.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to switch tab")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHeldOrders handles GET /api/v1/holds.
func (s *Server) GetHeldOrders(ctx echo.Context) error {
	response, err := s.queries.GetHeldOrders.Handle(ctx.Request().Context(), queries.NewGetHeldOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve held orders")
	}

	return ctx.JSON(http.StatusOK, response)
}

// HoldOrder handles POST /api/v1/holds.
func (s *Server) HoldOrder(ctx echo.Context) error {
	var req HoldOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewHoldOrderCommand(req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid hold data: "+err.Error())
	}

	if err := s.commands.HoldOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to hold order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResumeOrder handles POST /api/v1/holds/:id/resume.
func (s *Server) ResumeOrder(ctx echo.Context) error {
	cmd, err := commands.NewResumeOrderCommand(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid hold data: "+err.Error())
	}

	if err := s.commands.ResumeOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to resume order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomizingSessions handles GET /api/v1/customizations.
func (s *Server) GetCustomizingSessions(ctx echo.Context) error {
	response, err := s.queries.GetSessions.Handle(ctx.Request().Context(), queries.NewGetCustomizingSessionsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve customization sessions")
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartCustomizing handles POST /api/v1/customizations.
func (s *Server) StartCustomizing(ctx echo.Context) error {
	var req StartCustomizingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartCustomizingCommand(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid customization data: "+err.Error())
	}

	if err := s.commands.StartCustomizing.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to start customization")
	}

	return ctx.NoContent(http.StatusCreated)
}

// StartEditing handles POST /api/v1/cart/items/:cartId/edit.
func (s *Server) StartEditing(ctx echo.Context) error {
	cmd, err := commands.NewStartEditingCommand(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart data: "+err.Error())
	}

	if err := s.commands.StartEditing.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to start editing")
	}

	return ctx.NoContent(http.StatusCreated)
}

// CancelCustomizing handles DELETE /api/v1/customizations/:tempId.
func (s *Server) CancelCustomizing(ctx echo.Context) error {
	cmd, err := commands.NewCancelCustomizingCommand(ctx.Param("tempId"))
	if err != nil {
		return badRequest(ctx, "Invalid customization data: "+err.Error())
	}

	if err := s.commands.CancelCustomizing.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to cancel customization")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStock handles PUT /api/v1/products/:id/stock.
func (s *Server) UpdateStock(ctx echo.Context) error {
	var req UpdateStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStockCommand(ctx.Param("id"), req.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid stock data: "+err.Error())
	}

	if err := s.commands.UpdateStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to update stock")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateToppingStatus handles PUT /api/v1/toppings/:id/status.
func (s *Server) UpdateToppingStatus(ctx echo.Context) error {
	var req UpdateToppingStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateToppingStatusCommand(
		ctx.Param("id"),
		catalog.StockStatus(req.Status),
	)
	if err != nil {
		return badRequest(ctx, "Invalid topping data: "+err.Error())
	}

	if err := s.commands.UpdateToppingStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to update topping status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewProcessTransactionCommand(order.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err := s.commands.ProcessTransaction.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to process transaction")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetLiveOrders handles GET /api/v1/orders/live.
func (s *Server) GetLiveOrders(ctx echo.Context) error {
	response, err := s.queries.GetLiveOrders.Handle(ctx.Request().Context(), queries.NewGetLiveOrdersQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve live orders")
	}

	return ctx.JSON(http.StatusOK, echo.Map{"orders": newOrderDTOs(response.Orders)})
}

// GetOrdersArchive handles GET /api/v1/orders/archive.
func (s *Server) GetOrdersArchive(ctx echo.Context) error {
	response, err := s.queries.GetOrdersArchive.Handle(ctx.Request().Context(), queries.NewGetOrdersArchiveQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve order history")
	}

	return ctx.JSON(http.StatusOK, echo.Map{"orders": newOrderDTOs(response.Orders)})
}

// GetKitchenStatus handles GET /api/v1/kitchen/status.
func (s *Server) GetKitchenStatus(ctx echo.Context) error {
	response, err := s.queries.GetKitchenStatus.Handle(ctx.Request().Context(), queries.NewGetKitchenStatusQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve kitchen status")
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(ctx echo.Context) error {
	response, err := s.queries.GetSettings.Handle(ctx.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve settings")
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateSettings handles PUT /api/v1/settings.
func (s *Server) UpdateSettings(ctx echo.Context) error {
	var req UpdateSettingsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	patch := commands.SettingsPatch{
		RushMode:          req.RushMode,
		ShowReadinessView: req.ShowReadinessView,
		SearchQuery:       req.SearchQuery,
		SelectedCategory:  req.SelectedCategory,
	}
	if req.UserRole != nil {
		role := terminal.Role(*req.UserRole)
		patch.UserRole = &role
	}

	cmd, err := commands.NewUpdateTerminalSettingsCommand(patch)
	if err != nil {
		return badRequest(ctx, "Invalid settings data: "+err.Error())
	}

	if err := s.commands.UpdateSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to update settings")
	}

	return ctx.NoContent(http.StatusNoContent)
}
