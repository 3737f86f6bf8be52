package config

import (
	"log"

	"campus-canteen-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedMenu populates the menu on first boot. Catalog management itself is
// handled by an external process, so this only fills an empty table.
func SeedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.MenuItem{
		{Name: "Idli", Description: "Steamed rice cakes served with sambar and chutney", Price: 20.00, Category: "Breakfast"},
		{Name: "Dosa", Description: "Crispy rice crepe with potato masala", Price: 40.00, Category: "Breakfast"},
		{Name: "Pongal", Description: "Savory rice and lentil porridge with ghee", Price: 35.00, Category: "Breakfast"},
		{Name: "Vada", Description: "Crispy fried lentil doughnuts", Price: 15.00, Category: "Breakfast"},
		{Name: "Lemon Rice", Description: "Tangy rice tempered with mustard and curry leaves", Price: 45.00, Category: "Lunch"},
		{Name: "Sambar Rice", Description: "Rice mixed with lentil and vegetable stew", Price: 50.00, Category: "Lunch"},
		{Name: "Curd Rice", Description: "Cooling yogurt rice with pomegranate", Price: 40.00, Category: "Lunch"},
		{Name: "Filter Coffee", Description: "Traditional South Indian filter coffee", Price: 15.00, Category: "Beverages"},
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].IsAvailable = true
	}
	if err := db.Create(&items).Error; err != nil {
		log.Println("Failed to seed menu:", err)
		return
	}
	log.Printf("✅ Seeded %d menu items", len(items))
}
