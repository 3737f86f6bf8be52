package models

import "time"

type MenuItem struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MenuItem) TableName() string { return "menu_items" }

// GroupByCategory buckets items by their category, preserving the order in
// which each category is first seen and the item order within it.
func GroupByCategory(items []MenuItem) ([]string, map[string][]MenuItem) {
	var categories []string
	grouped := make(map[string][]MenuItem)
	for _, item := range items {
		if _, ok := grouped[item.Category]; !ok {
			categories = append(categories, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return categories, grouped
}
