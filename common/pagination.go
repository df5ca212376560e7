package common

import "gorm.io/gorm"

// ItemsPerPage is the fixed page size for every list endpoint.
const ItemsPerPage = 20

// Paginate runs query against page p (zero-indexed) with the given order.
// Pages past the end yield an empty slice, not an error.
func Paginate[T any](query *gorm.DB, p int, order string) ([]*T, error) {
	if p < 0 {
		p = 0
	}
	var items []*T
	err := query.Order(order).Offset(p * ItemsPerPage).Limit(ItemsPerPage).Find(&items).Error
	return items, err
}
