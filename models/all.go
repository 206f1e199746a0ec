package models

// All lists every entity for AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserProfile{},
		&FoodItem{},
		&DailyLog{},
		&DailyMetric{},
	}
}
