package cart

import (
	"testing"

	"campus-canteen-api/models"

	"github.com/stretchr/testify/assert"
)

func TestMaterialize(t *testing.T) {
	idli := models.MenuItem{ID: "idli-id", Name: "Idli", Price: 20.00, Category: "Breakfast"}
	dosa := models.MenuItem{ID: "dosa-id", Name: "Dosa", Price: 40.00, Category: "Breakfast"}

	tests := []struct {
		name         string
		cart         Cart
		catalog      []models.MenuItem
		wantSubtotal float64
		wantLines    int
		wantMissing  []string
	}{
		{
			name:         "idli and dosa",
			cart:         Cart{"idli-id": 2, "dosa-id": 1},
			catalog:      []models.MenuItem{idli, dosa},
			wantSubtotal: 80.00,
			wantLines:    2,
		},
		{
			name:         "empty cart",
			cart:         Cart{},
			catalog:      []models.MenuItem{idli, dosa},
			wantSubtotal: 0,
			wantLines:    0,
		},
		{
			name:         "catalog rows not in cart are ignored",
			cart:         Cart{"idli-id": 3},
			catalog:      []models.MenuItem{idli, dosa},
			wantSubtotal: 60.00,
			wantLines:    1,
		},
		{
			name:         "cart id absent from catalog is reported, not priced",
			cart:         Cart{"idli-id": 2, "ghost-id": 5},
			catalog:      []models.MenuItem{idli},
			wantSubtotal: 40.00,
			wantLines:    1,
			wantMissing:  []string{"ghost-id"},
		},
		{
			name:         "all entries missing",
			cart:         Cart{"ghost-id": 1},
			catalog:      nil,
			wantSubtotal: 0,
			wantLines:    0,
			wantMissing:  []string{"ghost-id"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Materialize(tc.cart, tc.catalog)

			assert.InDelta(t, tc.wantSubtotal, got.Subtotal, 0.001)
			assert.Len(t, got.Lines, tc.wantLines)
			assert.ElementsMatch(t, tc.wantMissing, got.MissingItemIDs)

			// Subtotal is always the sum of its line totals
			var sum float64
			for _, line := range got.Lines {
				assert.InDelta(t, line.Item.Price*float64(line.Quantity), line.LineTotal, 0.001)
				sum += line.LineTotal
			}
			assert.InDelta(t, sum, got.Subtotal, 0.001)
		})
	}
}

func TestMaterializeSnapshotsCatalogPrice(t *testing.T) {
	c := Cart{"dosa-id": 2}
	got := Materialize(c, []models.MenuItem{{ID: "dosa-id", Name: "Dosa", Price: 45.00}})
	assert.InDelta(t, 90.00, got.Subtotal, 0.001)
	assert.InDelta(t, 45.00, got.Lines[0].Item.Price, 0.001)
}
