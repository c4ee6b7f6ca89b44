package http

import (
	"pizzapos/internal/core/application/usecases/queries"
	"pizzapos/internal/core/domain/model/cart"
	"pizzapos/internal/core/domain/model/pizza"
)

// Error is the JSON body every failed request carries.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomizationDTO is the wire form of a pizza configuration.
type CustomizationDTO struct {
	SizeID       string               `json:"sizeId"`
	CrustID      string               `json:"crustId"`
	Sauce        SauceSelectionDTO    `json:"sauce"`
	Cheese       CheeseSelectionDTO   `json:"cheese"`
	Toppings     []SelectedToppingDTO `json:"toppings"`
	Cooking      CookingDTO           `json:"cooking"`
	Instructions []string             `json:"instructions,omitempty"`
}

type SauceSelectionDTO struct {
	ID        string `json:"id"`
	Side      string `json:"side"`
	Quantity  int    `json:"quantity"`
	IsDrizzle bool   `json:"isDrizzle"`
}

type CheeseSelectionDTO struct {
	ID       string `json:"id"`
	Side     string `json:"side"`
	Quantity int    `json:"quantity"`
}

type SelectedToppingDTO struct {
	ToppingID        string  `json:"toppingId"`
	Side             string  `json:"side"`
	Quantity         float64 `json:"quantity"`
	IsBaseIngredient bool    `json:"isBaseIngredient"`
}

type CookingDTO struct {
	Bake   string `json:"bake"`
	Cut    string `json:"cut"`
	Slices int    `json:"slices"`
}

func (d *CustomizationDTO) toDomain() *pizza.Customization {
	if d == nil {
		return nil
	}
	toppings := make([]pizza.SelectedTopping, 0, len(d.Toppings))
	for _, t := range d.Toppings {
		toppings = append(toppings, pizza.SelectedTopping{
			ToppingID:        t.ToppingID,
			Side:             pizza.Portion(t.Side),
			Quantity:         pizza.Quantity(t.Quantity),
			IsBaseIngredient: t.IsBaseIngredient,
		})
	}
	return &pizza.Customization{
		SizeID:  d.SizeID,
		CrustID: d.CrustID,
		Sauce: pizza.SauceSelection{
			ID:        d.Sauce.ID,
			Side:      pizza.Portion(d.Sauce.Side),
			Quantity:  d.Sauce.Quantity,
			IsDrizzle: d.Sauce.IsDrizzle,
		},
		Cheese: pizza.CheeseSelection{
			ID:       d.Cheese.ID,
			Side:     pizza.Portion(d.Cheese.Side),
			Quantity: d.Cheese.Quantity,
		},
		Toppings:     toppings,
		Cooking:      pizza.Cooking{Bake: d.Cooking.Bake, Cut: d.Cooking.Cut, Slices: d.Cooking.Slices},
		Instructions: d.Instructions,
	}
}

func newCustomizationDTO(c *pizza.Customization) *CustomizationDTO {
	if c == nil {
		return nil
	}
	toppings := make([]SelectedToppingDTO, 0, len(c.Toppings))
	for _, t := range c.Toppings {
		toppings = append(toppings, SelectedToppingDTO{
			ToppingID:        t.ToppingID,
			Side:             string(t.Side),
			Quantity:         float64(t.Quantity),
			IsBaseIngredient: t.IsBaseIngredient,
		})
	}
	return &CustomizationDTO{
		SizeID:  c.SizeID,
		CrustID: c.CrustID,
		Sauce: SauceSelectionDTO{
			ID:        c.Sauce.ID,
			Side:      string(c.Sauce.Side),
			Quantity:  c.Sauce.Quantity,
			IsDrizzle: c.Sauce.IsDrizzle,
		},
		Cheese: CheeseSelectionDTO{
			ID:       c.Cheese.ID,
			Side:     string(c.Cheese.Side),
			Quantity: c.Cheese.Quantity,
		},
		Toppings:     toppings,
		Cooking:      CookingDTO{Bake: c.Cooking.Bake, Cut: c.Cooking.Cut, Slices: c.Cooking.Slices},
		Instructions: c.Instructions,
	}
}

// CartItemDTO is the wire form of one cart line.
type CartItemDTO struct {
	CartID        string            `json:"cartId"`
	ProductID     string            `json:"productId"`
	Name          string            `json:"name"`
	Price         float64           `json:"price"`
	BasePrice     float64           `json:"basePrice"`
	Quantity      int               `json:"quantity"`
	Category      string            `json:"category"`
	Image         string            `json:"image,omitempty"`
	Customization *CustomizationDTO `json:"customization,omitempty"`
}

func newCartItemDTOs(items []cart.Item) []CartItemDTO {
	dtos := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, CartItemDTO{
			CartID:        item.CartID,
			ProductID:     item.ProductID,
			Name:          item.Name,
			Price:         item.Price,
			BasePrice:     item.BasePrice,
			Quantity:      item.Quantity,
			Category:      item.Category,
			Image:         item.Image,
			Customization: newCustomizationDTO(item.Customization),
		})
	}
	return dtos
}

// OrderDTO is the wire form of a placed order.
type OrderDTO struct {
	ID               string            `json:"id"`
	Token            string            `json:"token"`
	OrderType        string            `json:"orderType"`
	PaymentMethod    string            `json:"paymentMethod"`
	Items            []OrderItemDTO    `json:"items"`
	Subtotal         float64           `json:"subtotal"`
	Tax              float64           `json:"tax"`
	Total            float64           `json:"total"`
	PlacedAt         string            `json:"placedAt"`
	RemainingMinutes float64           `json:"remainingMinutes"`
	StationProgress  map[string]string `json:"stationProgress"`
	DelayReason      string            `json:"delayReason,omitempty"`
	IsReady          bool              `json:"isReady"`
}

type OrderItemDTO struct {
	CartID   string  `json:"cartId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

func newOrderDTOs(orders []queries.OrderResponse) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, placed := range orders {
		items := make([]OrderItemDTO, 0, len(placed.Items))
		for _, item := range placed.Items {
			items = append(items, OrderItemDTO{
				CartID:   item.CartID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Status:   string(item.Status),
			})
		}
		progress := make(map[string]string, len(placed.StationProgress))
		for station, status := range placed.StationProgress {
			progress[string(station)] = string(status)
		}
		dtos = append(dtos, OrderDTO{
			ID:               placed.ID,
			Token:            placed.Token,
			OrderType:        string(placed.OrderType),
			PaymentMethod:    string(placed.PaymentMethod),
			Items:            items,
			Subtotal:         placed.Subtotal,
			Tax:              placed.Tax,
			Total:            placed.Total,
			PlacedAt:         placed.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
			RemainingMinutes: placed.RemainingMinutes,
			StationProgress:  progress,
			DelayReason:      placed.DelayReason,
			IsReady:          placed.IsReady,
		})
	}
	return dtos
}

// Request bodies.

type AddToCartRequest struct {
	ProductID     string            `json:"productId"`
	Customization *CustomizationDTO `json:"customization,omitempty"`
}

type UpdateCartItemRequest struct {
	Customization *CustomizationDTO `json:"customization"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SetActiveTabRequest struct {
	Index int `json:"index"`
}

type HoldOrderRequest struct {
	Reason string `json:"reason"`
}

type StartCustomizingRequest struct {
	ProductID string `json:"productId"`
}

type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

type UpdateToppingStatusRequest struct {
	Status string `json:"status"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

type UpdateSettingsRequest struct {
	UserRole          *string `json:"userRole,omitempty"`
	RushMode          *bool   `json:"rushMode,omitempty"`
	ShowReadinessView *bool   `json:"showReadinessView,omitempty"`
	SearchQuery       *string `json:"searchQuery,omitempty"`
	SelectedCategory  *string `json:"selectedCategory,omitempty"`
}
