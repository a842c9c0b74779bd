// Package csvimport maps raw CSV tables onto ledger entities.
//
// The CSV wizard hands over a header row plus string cells; this package owns
// header-to-field mapping, lenient type coercion, and id assignment. Batch
// admission (collision checks, all-or-nothing append) belongs to the store.
package csvimport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Table is a parsed CSV document: one header row and the data rows beneath
// it. Rows consisting only of blank cells are expected to be filtered out by
// the caller.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Mapping associates a CSV header with an entity field name. Headers mapped
// to "" or "ignore" are skipped.
type Mapping map[string]string

// AutoMap pre-fills a mapping for every header that exactly matches a known
// field name, the same convenience the import wizard offers.
func AutoMap(headers []string, fields []string) Mapping {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}
	m := make(Mapping)
	for _, h := range headers {
		if known[h] {
			m[h] = h
		}
	}
	return m
}

// RequireFields verifies that every required field appears as a mapping
// target. This is the wizard's minimum-required-fields gate.
func RequireFields(m Mapping, required ...string) error {
	mapped := make(map[string]bool, len(m))
	for _, field := range m {
		mapped[field] = true
	}
	var missing []string
	for _, field := range required {
		if !mapped[field] {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unmapped required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// cell returns the value of the named field for a row, or "" when the field
// is unmapped or the row is short.
func cell(t Table, m Mapping, row []string, field string) string {
	for i, h := range t.Headers {
		target := m[h]
		if target != field || target == "ignore" {
			continue
		}
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
	}
	return ""
}

// money coerces a cell to a decimal amount. Parsing is lenient: currency
// symbols, spaces and grouping characters are stripped, and anything still
// unparseable becomes zero rather than failing the row.
func money(raw string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, raw)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// integer coerces a cell to an int with the same leniency as money.
func integer(raw string) int {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, raw)
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	return n
}

// date coerces a cell to a timestamp, defaulting to now when the cell is
// empty or matches no accepted layout.
func date(raw string, now time.Time) time.Time {
	if raw == "" {
		return now
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return now
}
