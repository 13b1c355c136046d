package api

import (
	"context"
	"net/http"

	"tiendita/internal/domain"
)

type OrderClient struct{ core *Client }

func NewOrderClient(core *Client) *OrderClient { return &OrderClient{core: core} }

// ListByStatus returns every order grouped the way the backend's status
// listing serves them.
func (o *OrderClient) ListByStatus(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := o.core.doJSON(ctx, http.MethodGet, "orders/status", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *OrderClient) ListByUser(ctx context.Context, userUuid string) ([]domain.Order, error) {
	var out []domain.Order
	if err := o.core.doJSON(ctx, http.MethodGet, "orders/user/"+userUuid, true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *OrderClient) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	var out domain.Order
	if err := o.core.doJSON(ctx, http.MethodPost, "orders", true, order, &out); err != nil {
		return domain.Order{}, err
	}
	return out, nil
}

// Update PUTs the full order record; the backend replaces it wholesale.
func (o *OrderClient) Update(ctx context.Context, uuid string, order domain.Order) (domain.Order, error) {
	var out domain.Order
	if err := o.core.doJSON(ctx, http.MethodPut, "orders/"+uuid, true, order, &out); err != nil {
		return domain.Order{}, err
	}
	return out, nil
}

func (o *OrderClient) Delete(ctx context.Context, uuid string) error {
	return o.core.doJSON(ctx, http.MethodDelete, "orders/"+uuid, true, nil, nil)
}
