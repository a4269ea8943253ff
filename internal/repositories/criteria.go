package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// Pagination is the shared page/limit part of every list criteria.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) normalize() (page, pageSize int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	pageSize = p.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// Normalized exposes the clamped page/size pair for response metadata.
func (p Pagination) Normalized() (page, pageSize int) {
	return p.normalize()
}

// paginate returns a gorm scope applying offset/limit.
func paginate(p Pagination) func(*gorm.DB) *gorm.DB {
	page, pageSize := p.normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// orderBy returns a gorm scope applying a whitelisted sort expression.
// The sort parameter is "field" or "-field" (descending); unknown
// fields fall back to the default ordering.
func orderBy(sort string, allowed map[string]string, defaultOrder string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sort == "" {
			return db.Order(defaultOrder)
		}
		desc := strings.HasPrefix(sort, "-")
		field := strings.TrimPrefix(sort, "-")
		column, ok := allowed[field]
		if !ok {
			return db.Order(defaultOrder)
		}
		if desc {
			return db.Order(column + " DESC")
		}
		return db.Order(column + " ASC")
	}
}
