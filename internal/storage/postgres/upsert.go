package postgres

import (
	"fmt"
	"strings"
)

// upsertChunkSize keeps one bulk statement well under the driver's
// parameter limit for the widest table.
const upsertChunkSize = 500

// valuePlaceholders renders "($1, $2), ($3, $4), ..." for rows x cols
// positional parameters.
func valuePlaceholders(rows, cols int) string {
	var sb strings.Builder
	arg := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", arg)
			arg++
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// excludedSet renders the DO UPDATE assignment list for every non-key
// column: "name = EXCLUDED.name, ...".
func excludedSet(columns []string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	return strings.Join(parts, ", ")
}

func chunked[T any](items []T, size int, fn func(chunk []T) error) error {
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		if err := fn(items[start:end]); err != nil {
			return err
		}
	}
	return nil
}
