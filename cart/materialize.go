package cart

import "campus-canteen-api/models"

// Line is a cart entry resolved against the live catalog.
type Line struct {
	Item      models.MenuItem `json:"item"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"line_total"`
}

// Materialized is a cart priced against a catalog snapshot. MissingItemIDs
// lists cart entries whose item was not in the snapshot (deleted from the
// catalog since being added); those entries contribute nothing to the
// subtotal and callers should surface them rather than charge for them.
type Materialized struct {
	Lines          []Line   `json:"lines"`
	Subtotal       float64  `json:"subtotal"`
	MissingItemIDs []string `json:"missing_item_ids,omitempty"`
}

// Materialize resolves a cart against the catalog rows fetched for its item
// IDs. Rows are priced in the order given, so the output is stable for a
// given catalog snapshot.
func Materialize(c Cart, items []models.MenuItem) Materialized {
	found := make(map[string]bool, len(items))
	m := Materialized{}
	for _, item := range items {
		qty, ok := c[item.ID]
		if !ok {
			continue
		}
		found[item.ID] = true
		lineTotal := item.Price * float64(qty)
		m.Lines = append(m.Lines, Line{Item: item, Quantity: qty, LineTotal: lineTotal})
		m.Subtotal += lineTotal
	}
	for id := range c {
		if !found[id] {
			m.MissingItemIDs = append(m.MissingItemIDs, id)
		}
	}
	return m
}
