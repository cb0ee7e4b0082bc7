package repository

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE metacharacters so a search term is only ever
// matched literally. Paired with the explicit ESCAPE clause below.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// SearchPredicate matches a free-text term against customer name, customer
// email, the invoice amount rendered as text, and the invoice date rendered
// as text. The term is bound as a parameter, never concatenated into SQL.
// Both sides of the text comparisons are lower-cased so matching is
// case-insensitive regardless of how values were stored. An empty term
// matches every row.
func SearchPredicate(term string) func(*gorm.DB) *gorm.DB {
	pattern := likePattern(term)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(
			`LOWER(customers.name) LIKE ? ESCAPE '\'
			 OR LOWER(customers.email) LIKE ? ESCAPE '\'
			 OR CAST(invoices.amount AS TEXT) LIKE ? ESCAPE '\'
			 OR CAST(invoices.date AS TEXT) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern,
		)
	}
}
