package csvimport

import (
	"time"

	"github.com/creditbook-dev/creditbook/internal/id"
	"github.com/creditbook-dev/creditbook/internal/model"
)

// Importable field names per entity, used for auto-mapping and the wizard's
// mapping dropdowns.
var (
	CustomerFields = []string{"id", "name", "email", "phone", "balance", "settlementDay"}
	SupplierFields = []string{"id", "name", "contact", "phone", "balance", "category", "visitDay"}
	ProductFields  = []string{"id", "name", "category", "barcode", "purchasePrice", "sellingPrice", "stock", "minStock"}
	ExpenseFields  = []string{"id", "description", "category", "amount", "date"}
)

// MapCustomers converts table rows into customers. Rows without an id get one
// from an allocator seeded over existing ids AND ids appearing in the batch,
// so generated ids cannot collide within one import. The store rejects the
// batch if a supplied id collides with existing data.
func MapCustomers(t Table, m Mapping, existingIDs []string) ([]model.Customer, error) {
	if err := RequireFields(m, "name"); err != nil {
		return nil, err
	}

	batch := make([]model.Customer, 0, len(t.Rows))
	for _, row := range t.Rows {
		c := model.Customer{
			ID:            cell(t, m, row, "id"),
			Name:          cell(t, m, row, "name"),
			Email:         cell(t, m, row, "email"),
			Phone:         cell(t, m, row, "phone"),
			Balance:       money(cell(t, m, row, "balance")),
			SettlementDay: cell(t, m, row, "settlementDay"),
			CreatedAt:     time.Now(),
		}
		batch = append(batch, c)
	}

	alloc := id.NewAllocator(existingIDs, batchCustomerIDs(batch))
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = alloc.Next()
		}
	}
	return batch, nil
}

// MapSuppliers converts table rows into suppliers.
func MapSuppliers(t Table, m Mapping, existingIDs []string) ([]model.Supplier, error) {
	if err := RequireFields(m, "name"); err != nil {
		return nil, err
	}

	batch := make([]model.Supplier, 0, len(t.Rows))
	for _, row := range t.Rows {
		sp := model.Supplier{
			ID:       cell(t, m, row, "id"),
			Name:     cell(t, m, row, "name"),
			Contact:  cell(t, m, row, "contact"),
			Phone:    cell(t, m, row, "phone"),
			Balance:  money(cell(t, m, row, "balance")),
			Category: cell(t, m, row, "category"),
			VisitDay: cell(t, m, row, "visitDay"),
		}
		if sp.Category == "" {
			sp.Category = "Uncategorized"
		}
		batch = append(batch, sp)
	}

	alloc := id.NewAllocator(existingIDs, batchSupplierIDs(batch))
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = alloc.Next()
		}
	}
	return batch, nil
}

// MapProducts converts table rows into products.
func MapProducts(t Table, m Mapping, existingIDs []string) ([]model.Product, error) {
	if err := RequireFields(m, "name"); err != nil {
		return nil, err
	}

	batch := make([]model.Product, 0, len(t.Rows))
	for _, row := range t.Rows {
		p := model.Product{
			ID:            cell(t, m, row, "id"),
			Name:          cell(t, m, row, "name"),
			Category:      cell(t, m, row, "category"),
			Barcode:       cell(t, m, row, "barcode"),
			PurchasePrice: money(cell(t, m, row, "purchasePrice")),
			SellingPrice:  money(cell(t, m, row, "sellingPrice")),
			Stock:         integer(cell(t, m, row, "stock")),
			MinStock:      integer(cell(t, m, row, "minStock")),
		}
		batch = append(batch, p)
	}

	alloc := id.NewAllocator(existingIDs, batchProductIDs(batch))
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = alloc.Next()
		}
	}
	return batch, nil
}

// MapExpenses converts table rows into expenses.
func MapExpenses(t Table, m Mapping, existingIDs []string) ([]model.Expense, error) {
	if err := RequireFields(m, "description", "amount"); err != nil {
		return nil, err
	}

	now := time.Now()
	batch := make([]model.Expense, 0, len(t.Rows))
	for _, row := range t.Rows {
		e := model.Expense{
			ID:          cell(t, m, row, "id"),
			Description: cell(t, m, row, "description"),
			Category:    cell(t, m, row, "category"),
			Amount:      money(cell(t, m, row, "amount")),
			Date:        date(cell(t, m, row, "date"), now),
		}
		batch = append(batch, e)
	}

	alloc := id.NewAllocator(existingIDs, batchExpenseIDs(batch))
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = alloc.Next()
		}
	}
	return batch, nil
}

func batchCustomerIDs(batch []model.Customer) []string {
	out := make([]string, len(batch))
	for i, c := range batch {
		out[i] = c.ID
	}
	return out
}

func batchSupplierIDs(batch []model.Supplier) []string {
	out := make([]string, len(batch))
	for i, sp := range batch {
		out[i] = sp.ID
	}
	return out
}

func batchProductIDs(batch []model.Product) []string {
	out := make([]string, len(batch))
	for i, p := range batch {
		out[i] = p.ID
	}
	return out
}

func batchExpenseIDs(batch []model.Expense) []string {
	out := make([]string, len(batch))
	for i, e := range batch {
		out[i] = e.ID
	}
	return out
}
