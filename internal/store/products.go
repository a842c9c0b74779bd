package store

import (
	"fmt"

	"github.com/creditbook-dev/creditbook/internal/id"
	"github.com/creditbook-dev/creditbook/internal/model"
)

// AddProduct appends a catalog product.
func (s *Store) AddProduct(p model.Product) (model.Product, error) {
	if p.Name == "" {
		return model.Product{}, ValidationError{Field: "name", Description: "required"}
	}
	if p.Stock < 0 {
		return model.Product{}, ValidationError{Field: "stock", Description: "must not be negative"}
	}

	s.mu.Lock()
	if p.ID == "" {
		p.ID = id.NewAllocator(productIDs(s.data.Products)).Next()
	} else if s.productIndex(p.ID) >= 0 {
		s.mu.Unlock()
		return model.Product{}, fmt.Errorf("product %s: %w", p.ID, ErrDuplicateID)
	}
	s.data.Products = append(s.data.Products, p)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return p, err
	}
	s.notify()
	return p, nil
}

// UpdateProduct replaces a product by id.
func (s *Store) UpdateProduct(p model.Product) error {
	if p.Name == "" {
		return ValidationError{Field: "name", Description: "required"}
	}
	if p.Stock < 0 {
		return ValidationError{Field: "stock", Description: "must not be negative"}
	}

	s.mu.Lock()
	i := s.productIndex(p.ID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
	}
	s.data.Products[i] = p
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteProduct removes a product from the catalog.
func (s *Store) DeleteProduct(productID string) error {
	s.mu.Lock()
	i := s.productIndex(productID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	s.data.Products = append(s.data.Products[:i], s.data.Products[i+1:]...)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// ProductByID returns a product by id.
func (s *Store) ProductByID(productID string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.productIndex(productID); i >= 0 {
		return s.data.Products[i], true
	}
	return model.Product{}, false
}

// ProductByBarcode returns a product by barcode, the register's scan lookup.
func (s *Store) ProductByBarcode(barcode string) (model.Product, bool) {
	if barcode == "" {
		return model.Product{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.data.Products {
		if p.Barcode == barcode {
			return p, true
		}
	}
	return model.Product{}, false
}

// productIndex returns the slice index of productID, or -1. Caller holds s.mu.
func (s *Store) productIndex(productID string) int {
	for i, p := range s.data.Products {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func productIDs(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
