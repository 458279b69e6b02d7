package postgres

import (
	"fmt"
	"strings"
)

// setClause accumulates SET assignments for a dynamic UPDATE. Columns are
// appended in the caller's fixed order and rendered as positional
// placeholders only — column values never end up in the SQL text.
type setClause struct {
	cols []string
	args []any
}

func (c *setClause) add(col string, v any) {
	c.cols = append(c.cols, col)
	c.args = append(c.args, v)
}

func (c *setClause) empty() bool { return len(c.cols) == 0 }

// build renders `UPDATE <table> SET col=$1, ... WHERE id=$n` and the matching
// argument slice with id last.
func (c *setClause) build(table string, id int64) (string, []any) {
	parts := make([]string, len(c.cols))
	for i, col := range c.cols {
		parts[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(parts, ", "), len(c.cols)+1)
	return query, append(c.args, id)
}
