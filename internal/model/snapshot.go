package model

// Snapshot is the full serialized state of every collection. The same shape
// is used for local persistence, export files, and cloud backups; the three
// must stay bit-compatible.
type Snapshot struct {
	Customers            []Customer            `json:"customers"`
	Transactions         []Transaction         `json:"transactions"`
	Products             []Product             `json:"products"`
	BreadOrders          []BreadOrder          `json:"breadOrders"`
	Expenses             []Expense             `json:"expenses"`
	Suppliers            []Supplier            `json:"suppliers"`
	SupplierTransactions []SupplierTransaction `json:"supplierTransactions"`
	Settings             AppSettings           `json:"settings"`
}

// Clone returns a deep copy of the snapshot. BreadOrder customer links are
// the only pointer fields and are re-allocated.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Customers = append([]Customer(nil), s.Customers...)
	out.Transactions = append([]Transaction(nil), s.Transactions...)
	out.Products = append([]Product(nil), s.Products...)
	out.Expenses = append([]Expense(nil), s.Expenses...)
	out.Suppliers = append([]Supplier(nil), s.Suppliers...)
	out.SupplierTransactions = append([]SupplierTransaction(nil), s.SupplierTransactions...)

	out.BreadOrders = make([]BreadOrder, len(s.BreadOrders))
	for i, o := range s.BreadOrders {
		if o.CustomerID != nil {
			id := *o.CustomerID
			o.CustomerID = &id
		}
		if o.CustomerName != nil {
			name := *o.CustomerName
			o.CustomerName = &name
		}
		out.BreadOrders[i] = o
	}
	return out
}
