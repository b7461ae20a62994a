// Package model contains the GORM table mappings.
package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&ShopModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ReviewModel{},
	}
}
