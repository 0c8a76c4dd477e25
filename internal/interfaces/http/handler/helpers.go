package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contentapp "github.com/folio/backend/internal/application/content"
	"github.com/folio/backend/internal/interfaces/http/dto"
)

// boolFilterKeys are query filters coerced to booleans before they reach the
// repository layer
var boolFilterKeys = map[string]bool{
	"featured":  true,
	"published": true,
}

// bindListFilter binds pagination and search params plus the named entity
// filters from the query string
func bindListFilter(c *gin.Context, filterKeys ...string) (contentapp.ListFilter, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return contentapp.ListFilter{}, err
	}

	filter := contentapp.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Filters:  make(map[string]interface{}),
	}
	for _, key := range filterKeys {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		if boolFilterKeys[key] {
			if v, err := strconv.ParseBool(raw); err == nil {
				filter.Filters[key] = v
			}
			continue
		}
		filter.Filters[key] = raw
	}
	return filter, nil
}

// bindID parses the id path parameter
func bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
