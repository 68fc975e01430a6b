package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// queryBuilder accumulates filter clauses and their arguments, numbering
// placeholders ($1, $2, ...) in the order arguments are bound.
type queryBuilder struct {
	args   []any
	where  []string
	having []string
}

// Where adds a row filter. Each %s in format is replaced by the placeholder
// of the matching argument.
func (b *queryBuilder) Where(format string, args ...any) {
	b.where = append(b.where, b.bind(format, args))
}

// Having adds a filter on aggregated values.
func (b *queryBuilder) Having(format string, args ...any) {
	b.having = append(b.having, b.bind(format, args))
}

// Placeholder binds a single argument and returns its placeholder.
func (b *queryBuilder) Placeholder(arg any) string {
	b.args = append(b.args, arg)
	return "$" + strconv.Itoa(len(b.args))
}

// WhereClause renders " WHERE a AND b" or "" when no row filter was added.
func (b *queryBuilder) WhereClause() string {
	return joinClauses("WHERE", b.where)
}

// HavingClause renders " HAVING a AND b" or "".
func (b *queryBuilder) HavingClause() string {
	return joinClauses("HAVING", b.having)
}

// Args returns the bound arguments in placeholder order.
func (b *queryBuilder) Args() []any {
	return b.args
}

func (b *queryBuilder) bind(format string, args []any) string {
	placeholders := make([]any, len(args))
	for i, a := range args {
		placeholders[i] = b.Placeholder(a)
	}
	return fmt.Sprintf(format, placeholders...)
}

func joinClauses(keyword string, clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " " + keyword + " " + strings.Join(clauses, " AND ")
}
