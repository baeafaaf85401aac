// Package dialect provides the SQL dialect settings each store adapter
// speaks: parameter placeholder style and key column definitions.
package dialect

import (
	"strconv"

	"github.com/leapstack-labs/wildlog/pkg/core"
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name             string
	Placeholder      core.PlaceholderStyle // How to format query parameters
	SerialPrimaryKey string                // Column definition for a store-assigned integer id
}

// FormatPlaceholder returns a placeholder for the given parameter index (1-based).
// Returns "?" for PlaceholderQuestion style, "$1", "$2" etc. for PlaceholderDollar style.
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case core.PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	default: // PlaceholderQuestion
		return "?"
	}
}

// Placeholders returns n placeholders starting at index 1.
func (d *Dialect) Placeholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = d.FormatPlaceholder(i + 1)
	}
	return out
}
