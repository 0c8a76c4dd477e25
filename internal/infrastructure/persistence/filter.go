package persistence

import (
	"strings"

	"github.com/folio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// orderableColumns is the set of columns exposed for ordering. Anything else
// falls back to created_at to keep ORDER BY injection-free.
var orderableColumns = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"title":        true,
	"views":        true,
	"published_at": true,
}

// applyFilter applies ordering and pagination from the filter to the query
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := filter.OrderBy
	if !orderableColumns[orderBy] {
		orderBy = "created_at"
	}
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	query = query.Order(orderBy + " " + orderDir)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query
}
