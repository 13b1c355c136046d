package services

import (
	"context"
	"sync"

	"tiendita/internal/api"
	"tiendita/internal/domain"
	"tiendita/internal/lifecycle"
)

// Placeholder strings shown when a per-item lookup fails. Batch assembly
// never aborts on one bad lookup; the hole is papered over locally.
const (
	userNameFallback    = "Nombre no disponible"
	productNameFallback = "Producto no disponible"
)

// OrderView is an order decorated for rendering: resolved names, a status
// label and the actions the viewing role may take.
type OrderView struct {
	domain.Order
	UserName    string
	StatusLabel string
	Details     []DetailView
	Actions     []lifecycle.Action
}

type DetailView struct {
	domain.OrderDetail
	ProductName string
}

// OrdersViewService assembles order screens. Name lookups for distinct users
// and products run concurrently and independently; each failure substitutes a
// placeholder instead of failing the batch.
type OrdersViewService struct {
	Orders   *api.OrderClient
	Users    *api.UserClient
	Products *api.ProductClient
}

// Board lists every order for the seller's order board.
func (s *OrdersViewService) Board(ctx context.Context) ([]OrderView, error) {
	orders, err := s.Orders.ListByStatus(ctx)
	if err != nil {
		return nil, err
	}

	userNames := s.resolveUserNames(ctx, orders)
	productNames := s.resolveProductNames(ctx, orders)

	return decorate(orders, domain.RoleSeller, userNames, productNames), nil
}

// History lists one customer's own orders.
func (s *OrdersViewService) History(ctx context.Context, userUuid string) ([]OrderView, error) {
	orders, err := s.Orders.ListByUser(ctx, userUuid)
	if err != nil {
		return nil, err
	}
	productNames := s.resolveProductNames(ctx, orders)
	return decorate(orders, domain.RoleCustomer, nil, productNames), nil
}

func (s *OrdersViewService) resolveUserNames(ctx context.Context, orders []domain.Order) map[string]string {
	// Distinct uuids go in a slice up front; the goroutines below are the
	// only writers of the map and hold the lock for every write.
	var uuids []string
	seen := make(map[string]bool)
	for _, o := range orders {
		if !seen[o.UserUuid] {
			seen[o.UserUuid] = true
			uuids = append(uuids, o.UserUuid)
		}
	}

	names := make(map[string]string, len(uuids))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, uuid := range uuids {
		wg.Add(1)
		go func(uuid string) {
			defer wg.Done()
			name := userNameFallback
			if u, err := s.Users.Get(ctx, uuid); err == nil && u.FullName != "" {
				name = u.FullName
			}
			mu.Lock()
			names[uuid] = name
			mu.Unlock()
		}(uuid)
	}
	wg.Wait()
	return names
}

func (s *OrdersViewService) resolveProductNames(ctx context.Context, orders []domain.Order) map[string]string {
	var uuids []string
	seen := make(map[string]bool)
	for _, o := range orders {
		for _, d := range o.OrderDetails {
			if !seen[d.ProductUuid] {
				seen[d.ProductUuid] = true
				uuids = append(uuids, d.ProductUuid)
			}
		}
	}

	names := make(map[string]string, len(uuids))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, uuid := range uuids {
		wg.Add(1)
		go func(uuid string) {
			defer wg.Done()
			name := productNameFallback
			if p, err := s.Products.Get(ctx, uuid); err == nil && p.Name != "" {
				name = p.Name
			}
			mu.Lock()
			names[uuid] = name
			mu.Unlock()
		}(uuid)
	}
	wg.Wait()
	return names
}

func decorate(orders []domain.Order, role domain.Role, userNames, productNames map[string]string) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v := OrderView{
			Order:       o,
			StatusLabel: domain.Status(o.StatusUuid).Label(),
			Actions:     lifecycle.ActionsFor(domain.Status(o.StatusUuid), role),
		}
		if userNames != nil {
			v.UserName = userNames[o.UserUuid]
		}
		for _, d := range o.OrderDetails {
			v.Details = append(v.Details, DetailView{OrderDetail: d, ProductName: productNames[d.ProductUuid]})
		}
		views = append(views, v)
	}
	return views
}
