package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/creditbook-dev/creditbook/internal/auditlog"
	"github.com/creditbook-dev/creditbook/internal/store"
)

func newSaleCommand() *cobra.Command {
	var customerID string
	var paid string

	cmd := &cobra.Command{
		Use:   "sale PRODUCT:QTY [PRODUCT:QTY...]",
		Short: "Ring up a sale (PRODUCT is an id or barcode)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			cart, err := parseCart(st, args)
			if err != nil {
				return err
			}

			amountPaid, err := decimal.NewFromString(paid)
			if err != nil {
				return fmt.Errorf("parsing --paid %q: %w", paid, err)
			}

			result, err := st.ProcessSale(cart, store.Payment{
				CustomerID: customerID,
				AmountPaid: amountPaid,
			})
			if err != nil {
				return err
			}

			logAudit(dir, auditlog.Entry{
				Timestamp: time.Now(),
				Actor:     "cli",
				Action:    "sale",
				Details:   fmt.Sprintf("%d lines, total %s, paid %s", len(cart), result.Total.StringFixed(2), result.AmountPaid.StringFixed(2)),
				Reference: result.Reference,
			})
			commitSnapshot(dir, cfg, "sale "+result.Reference)

			fmt.Printf("Sale %s: total %s %s, paid %s\n",
				result.Reference, result.Total.StringFixed(2), cfg.Business.Currency, result.AmountPaid.StringFixed(2))
			if result.Remainder.IsPositive() {
				fmt.Printf("Remainder %s added to customer %s ledger (transaction %s)\n",
					result.Remainder.StringFixed(2), customerID, result.TransactionID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer", "", "customer id for on-credit sales")
	cmd.Flags().StringVar(&paid, "paid", "0", "amount collected in cash")

	return cmd
}

// parseCart resolves PRODUCT:QTY arguments, accepting product ids or
// barcodes on the product side.
func parseCart(st *store.Store, args []string) ([]store.CartItem, error) {
	cart := make([]store.CartItem, 0, len(args))
	for _, arg := range args {
		key, qtyStr, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid cart line %q, want PRODUCT:QTY", arg)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", arg, err)
		}

		productID := key
		if p, ok := st.ProductByBarcode(key); ok {
			productID = p.ID
		}
		cart = append(cart, store.CartItem{ProductID: productID, Quantity: qty})
	}
	return cart, nil
}

// logAudit appends an audit entry, logging rather than failing the command
// when the trail cannot be written.
func logAudit(dir string, e auditlog.Entry) {
	if err := auditlog.Append(dir, []auditlog.Entry{e}); err != nil {
		logger.Warn().Err(err).Msg("audit log write failed")
	}
}
