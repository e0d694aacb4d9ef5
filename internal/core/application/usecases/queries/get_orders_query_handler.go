package queries

import (
	"context"
	"strings"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// GetOrdersQueryHandler retrieves orders from the store. It takes a single
// snapshot and filters it purely in memory, so one listing call never
// observes an order in two different states: creations that committed before
// the snapshot are included, later ones are not.
type GetOrdersQueryHandler struct {
	repo ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler reading from the given repository.
func NewGetOrdersQueryHandler(repo ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{repo: repo}
}

// Handle executes the query. Results keep store insertion order. Filters
// apply conjunctively: customer name as a case-insensitive substring match,
// status as an exact match against the closed enumeration. A status filter
// naming no valid status yields an empty result, not an error.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statusFilter := order.Unknown
	if query.Status() != "" {
		parsed, ok := order.StatusFromString(query.Status())
		if !ok {
			return []GetOrdersQueryResponse{}, nil
		}
		statusFilter = parsed
	}

	snapshot, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	nameFilter := strings.ToLower(query.CustomerName())

	orders := make([]GetOrdersQueryResponse, 0, len(snapshot))
	for _, stored := range snapshot {
		if nameFilter != "" && !strings.Contains(strings.ToLower(stored.CustomerName()), nameFilter) {
			continue
		}
		if statusFilter != order.Unknown && stored.Status() != statusFilter {
			continue
		}

		orders = append(orders, GetOrdersQueryResponse{
			OrderID:      stored.ID().String(),
			CustomerName: stored.CustomerName(),
			OrderAmount:  stored.OrderAmount(),
			OrderDate:    stored.OrderDate(),
			Status:       stored.Status().String(),
		})
	}

	return orders, nil
}

// GetOrdersQueryResponse is one order as seen by the read side.
type GetOrdersQueryResponse struct {
	OrderID      string
	CustomerName string
	OrderAmount  float64
	OrderDate    time.Time
	Status       string
}
