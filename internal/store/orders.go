package store

import (
	"fmt"
	"time"

	"github.com/creditbook-dev/creditbook/internal/id"
	"github.com/creditbook-dev/creditbook/internal/model"
)

// AddBreadOrder appends a bread pre-order. A zero unit price falls back to
// the configured bread unit price, and a zero total is computed from
// quantity and unit price.
func (s *Store) AddBreadOrder(o model.BreadOrder) (model.BreadOrder, error) {
	if o.Name == "" {
		return model.BreadOrder{}, ValidationError{Field: "name", Description: "required"}
	}
	if o.Quantity <= 0 {
		return model.BreadOrder{}, ValidationError{Field: "quantity", Description: "must be positive"}
	}

	s.mu.Lock()
	if o.CustomerID != nil && s.customerIndex(*o.CustomerID) < 0 {
		s.mu.Unlock()
		return model.BreadOrder{}, fmt.Errorf("customer %s: %w", *o.CustomerID, ErrNotFound)
	}
	if o.ID == "" {
		o.ID = id.NewAllocator(breadOrderIDs(s.data.BreadOrders)).Next()
	}
	if o.UnitPrice.IsZero() {
		o.UnitPrice = s.data.Settings.BreadUnitPrice
	}
	if o.TotalAmount.IsZero() {
		o.TotalAmount = o.UnitPrice.Mul(decimalFromInt(o.Quantity))
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	s.data.BreadOrders = append(s.data.BreadOrders, o)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return o, err
	}
	s.notify()
	return o, nil
}

// UpdateBreadOrder replaces a bread order by id, recomputing the total from
// quantity and unit price.
func (s *Store) UpdateBreadOrder(o model.BreadOrder) error {
	if o.Quantity <= 0 {
		return ValidationError{Field: "quantity", Description: "must be positive"}
	}

	s.mu.Lock()
	i := s.breadOrderIndex(o.ID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("bread order %s: %w", o.ID, ErrNotFound)
	}
	o.TotalAmount = o.UnitPrice.Mul(decimalFromInt(o.Quantity))
	s.data.BreadOrders[i] = o
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteBreadOrder removes a bread order.
func (s *Store) DeleteBreadOrder(orderID string) error {
	s.mu.Lock()
	i := s.breadOrderIndex(orderID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("bread order %s: %w", orderID, ErrNotFound)
	}
	s.data.BreadOrders = append(s.data.BreadOrders[:i], s.data.BreadOrders[i+1:]...)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Store) breadOrderIndex(orderID string) int {
	for i, o := range s.data.BreadOrders {
		if o.ID == orderID {
			return i
		}
	}
	return -1
}

func breadOrderIDs(orders []model.BreadOrder) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}
