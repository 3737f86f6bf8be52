package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupByCategory(t *testing.T) {
	items := []MenuItem{
		{ID: "1", Name: "Idli", Category: "Breakfast"},
		{ID: "2", Name: "Filter Coffee", Category: "Beverages"},
		{ID: "3", Name: "Dosa", Category: "Breakfast"},
		{ID: "4", Name: "Lemon Rice", Category: "Lunch"},
	}

	categories, grouped := GroupByCategory(items)

	// Group order follows first encounter, not alphabetical
	assert.Equal(t, []string{"Breakfast", "Beverages", "Lunch"}, categories)

	assert.Equal(t, []string{"Idli", "Dosa"}, itemNames(grouped["Breakfast"]))
	assert.Equal(t, []string{"Filter Coffee"}, itemNames(grouped["Beverages"]))
	assert.Equal(t, []string{"Lemon Rice"}, itemNames(grouped["Lunch"]))

	// Lossless, non-overlapping cover of the input
	total := 0
	seen := map[string]bool{}
	for _, group := range grouped {
		for _, item := range group {
			assert.False(t, seen[item.ID], "item %s appears in more than one group", item.ID)
			seen[item.ID] = true
			total++
		}
	}
	assert.Equal(t, len(items), total)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	categories, grouped := GroupByCategory(nil)
	assert.Empty(t, categories)
	assert.Empty(t, grouped)
}

func itemNames(items []MenuItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
