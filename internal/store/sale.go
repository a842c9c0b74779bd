package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/creditbook-dev/creditbook/internal/model"
)

// CartItem is one register line: a product and the quantity sold.
type CartItem struct {
	ProductID string
	Quantity  int
}

// Payment describes how a sale is settled. An empty CustomerID means a
// walk-in cash sale, which must cover the full total; with a customer
// attached, any shortfall becomes a debt on the customer's ledger.
type Payment struct {
	CustomerID string
	AmountPaid decimal.Decimal
}

// SaleResult reports the committed effects of a sale.
type SaleResult struct {
	Reference     string // receipt reference, stamped on the ledger entry
	Total         decimal.Decimal
	AmountPaid    decimal.Decimal
	Remainder     decimal.Decimal // added to the customer balance, zero for cash sales
	TransactionID string          // empty when no ledger entry was created
}

// ProcessSale rings up a cart. It touches product stock, the ledger, and the
// customer balance, but appears atomic to the caller: every line effect is
// computed and validated before any mutation is applied, so a failure on the
// last line leaves the first untouched.
//
// Stock policy: a line that would drive stock negative rejects the whole
// sale. Stock never goes negative.
func (s *Store) ProcessSale(cart []CartItem, payment Payment) (SaleResult, error) {
	if len(cart) == 0 {
		return SaleResult{}, ErrEmptyCart
	}

	s.mu.Lock()

	// Validation pass: resolve every line, accumulate per-product quantities
	// (the same product may appear on several lines), and total the sale.
	// Nothing is mutated until the whole cart checks out.
	qtyByProduct := make(map[string]int, len(cart))
	total := decimal.Zero
	for _, line := range cart {
		if line.Quantity <= 0 {
			s.mu.Unlock()
			return SaleResult{}, ValidationError{Field: "quantity", Description: "must be positive"}
		}
		pi := s.productIndex(line.ProductID)
		if pi < 0 {
			s.mu.Unlock()
			return SaleResult{}, fmt.Errorf("product %s: %w", line.ProductID, ErrNotFound)
		}
		p := s.data.Products[pi]

		qtyByProduct[line.ProductID] += line.Quantity
		if qtyByProduct[line.ProductID] > p.Stock {
			s.mu.Unlock()
			return SaleResult{}, fmt.Errorf("product %s (stock %d, selling %d): %w",
				p.Name, p.Stock, qtyByProduct[line.ProductID], ErrInsufficientStock)
		}
		total = total.Add(p.SellingPrice.Mul(decimalFromInt(line.Quantity)))
	}

	ci := -1
	if payment.CustomerID != "" {
		if ci = s.customerIndex(payment.CustomerID); ci < 0 {
			s.mu.Unlock()
			return SaleResult{}, fmt.Errorf("customer %s: %w", payment.CustomerID, ErrNotFound)
		}
	}

	remainder := total.Sub(payment.AmountPaid)
	if remainder.IsNegative() {
		// Overpayment is change handed back, not credit.
		remainder = decimal.Zero
	}
	if ci < 0 && remainder.IsPositive() {
		s.mu.Unlock()
		return SaleResult{}, fmt.Errorf("cash sale of %s paid %s: %w",
			total.StringFixed(2), payment.AmountPaid.StringFixed(2), ErrInsufficientPayment)
	}

	// Commit pass: all checks passed, apply every effect together.
	result := SaleResult{
		Reference:  uuid.NewString(),
		Total:      total,
		AmountPaid: payment.AmountPaid,
		Remainder:  remainder,
	}

	for pid, qty := range qtyByProduct {
		pi := s.productIndex(pid)
		s.data.Products[pi].Stock -= qty
	}

	if ci >= 0 && remainder.IsPositive() {
		txn := model.Transaction{
			CustomerID:  payment.CustomerID,
			Type:        model.TxnDebt,
			Amount:      remainder,
			Date:        time.Now(),
			Description: "Point-of-sale purchase",
			OrderID:     result.Reference,
		}
		txn.ID = nextTransactionID(s.data.Transactions)
		s.data.Transactions = append(s.data.Transactions, txn)
		s.data.Customers[ci].Balance = s.data.Customers[ci].Balance.Add(txnDelta(nil, &txn))
		result.TransactionID = txn.ID
	}

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return result, err
	}
	s.notify()
	return result, nil
}
