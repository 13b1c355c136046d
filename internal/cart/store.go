// Package cart is the client-local shopping cart: an ordered list of product
// snapshots with quantities, persisted as JSON text under a fixed key in the
// session's local store. The backend never sees the cart until checkout.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"tiendita/internal/api"
	"tiendita/internal/domain"
	"tiendita/internal/localstore"
)

// Storage is the slice of the local store the cart needs.
type Storage interface {
	Get(sid, key string) (string, bool)
	Put(sid, key, value string) error
	Delete(sid, key string) error
}

type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store { return &Store{storage: storage} }

// Lines reads the persisted cart. A missing or corrupt entry reads as an
// empty cart, never an error.
func (s *Store) Lines(sid string) []domain.CartLine {
	raw, ok := s.storage.Get(sid, localstore.KeyCart)
	if !ok {
		return nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil
	}
	return lines
}

func (s *Store) persist(sid string, lines []domain.CartLine) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.storage.Put(sid, localstore.KeyCart, string(b))
}

// Add puts one more unit of the product in the cart: an existing line's
// quantity grows by 1, otherwise a new line with quantity 1 is appended.
// There is never more than one line per product.
func (s *Store) Add(sid string, p domain.Product) error {
	lines := s.Lines(sid)
	for i := range lines {
		if lines[i].Uuid == p.Uuid {
			lines[i].Quantity++
			return s.persist(sid, lines)
		}
	}
	lines = append(lines, domain.CartLine{Product: p, Quantity: 1})
	return s.persist(sid, lines)
}

func (s *Store) Remove(sid, productUuid string) error {
	lines := s.Lines(sid)
	kept := lines[:0]
	for _, l := range lines {
		if l.Uuid != productUuid {
			kept = append(kept, l)
		}
	}
	return s.persist(sid, kept)
}

// SetQuantity replaces a line's quantity. Non-positive values are ignored:
// a line never disappears by zeroing it, only Remove deletes lines.
func (s *Store) SetQuantity(sid, productUuid string, n int) error {
	if n <= 0 {
		return nil
	}
	lines := s.Lines(sid)
	for i := range lines {
		if lines[i].Uuid == productUuid {
			lines[i].Quantity = n
			return s.persist(sid, lines)
		}
	}
	return nil
}

// Total renders the cart total with two-decimal precision.
func (s *Store) Total(sid string) string {
	total := 0.0
	for _, l := range s.Lines(sid) {
		total += l.SubTotal()
	}
	return fmt.Sprintf("%.2f", total)
}

// Checkout submits the cart as a new order owned by user. The cart is cleared
// only after the backend acknowledges the order; on failure it stays intact
// so the user can retry.
func (s *Store) Checkout(ctx context.Context, orders *api.OrderClient, sid string, user domain.User) (domain.Order, error) {
	lines := s.Lines(sid)
	total, _ := strconv.ParseFloat(s.Total(sid), 64)

	details := make([]domain.OrderDetail, 0, len(lines))
	for _, l := range lines {
		details = append(details, domain.OrderDetail{
			ProductUuid: l.Uuid,
			Quantity:    l.Quantity,
			SubTotal:    l.SubTotal(),
		})
	}
	order := domain.Order{
		UserUuid:     user.Uuid,
		TotalAmount:  total,
		StatusUuid:   string(domain.StatusProcessing),
		OrderDetails: details,
	}

	created, err := orders.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	_ = s.storage.Delete(sid, localstore.KeyCart)
	return created, nil
}
