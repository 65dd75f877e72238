// Package validate holds the pure predicate rules shared by the
// stores and the request handler layer. No state, no side effects.
package validate

import (
	"strconv"
	"strings"

	"github.com/trufaria/storefront-backend/internal/entity"
)

// OrderSubmission reports whether an order submission is structurally
// valid: at least one line item plus non-empty customer name and phone.
// Product ids inside the items are not checked against the catalog.
func OrderSubmission(items []entity.OrderItem, customer, phone string) bool {
	return len(items) > 0 && customer != "" && phone != ""
}

// Registration reports whether a registration request carries the
// required fields. The email rule is intentionally weak: it only asks
// for an "@" and a "." somewhere in the string. That matches what the
// storefront has always accepted; do not tighten it to a real format
// check without a migration plan for existing accounts.
func Registration(name, password, email string) bool {
	if name == "" || password == "" || email == "" {
		return false
	}
	return strings.ContainsRune(email, '@') && strings.ContainsRune(email, '.')
}

// ID parses an externally supplied identifier. Anything that is not a
// plain base-10 integer fails.
func ID(raw string) (int, error) {
	return strconv.Atoi(raw)
}
