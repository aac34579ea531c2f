package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// handleDBError wraps database errors with operation context. The wrap
// keeps the gorm sentinel in the chain so errors.Is checks still work
// upstream.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}

// allowedSortColumns whitelists sortable columns shared by every
// resource table. Per-resource recency columns are added on top.
var allowedSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"id":         true,
}

// applyPaginationAndSorting validates sort inputs against the whitelist
// before interpolating them into the ORDER BY clause.
func applyPaginationAndSorting(query *gorm.DB, sortBy, sortOrder, recencyColumn string, limit, offset int) *gorm.DB {
	if sortBy == "" || (!allowedSortColumns[sortBy] && sortBy != recencyColumn) {
		sortBy = recencyColumn
	}

	if sortOrder != "asc" && sortOrder != "ASC" {
		sortOrder = "DESC"
	} else {
		sortOrder = "ASC"
	}

	query = query.Order(fmt.Sprintf("%s %s, id DESC", sortBy, sortOrder))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query
}
