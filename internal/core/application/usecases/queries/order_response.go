package queries

import (
	"time"

	"pizzapos/internal/core/domain/model/order"
)

// OrderItemResponse is the read model for one line of a placed order.
type OrderItemResponse struct {
	CartID   string
	Name     string
	Quantity int
	Price    float64
	Status   order.ItemStatus
}

// OrderResponse is the read model for a placed order.
type OrderResponse struct {
	ID               string
	Token            string
	OrderType        order.OrderType
	PaymentMethod    order.PaymentMethod
	Items            []OrderItemResponse
	Subtotal         float64
	Tax              float64
	Total            float64
	PlacedAt         time.Time
	RemainingMinutes float64
	StationProgress  map[order.Station]order.StationStatus
	DelayReason      string
	IsReady          bool
}

func newOrderResponse(placed *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(placed.Items()))
	for _, item := range placed.Items() {
		items = append(items, OrderItemResponse{
			CartID:   item.CartID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Status:   item.Status,
		})
	}

	totals := placed.Totals()

	return OrderResponse{
		ID:               placed.ID().String(),
		Token:            placed.Token(),
		OrderType:        placed.OrderType(),
		PaymentMethod:    placed.PaymentMethod(),
		Items:            items,
		Subtotal:         totals.Subtotal,
		Tax:              totals.Tax,
		Total:            totals.Total,
		PlacedAt:         placed.PlacedAt(),
		RemainingMinutes: placed.RemainingMinutes(),
		StationProgress:  placed.StationProgress(),
		DelayReason:      placed.DelayReason(),
		IsReady:          placed.IsReady(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, placed := range orders {
		responses = append(responses, newOrderResponse(placed))
	}
	return responses
}
