package forecast

import "sort"

// rankItems accumulates per-item quantity totals over the 7-day window and
// returns up to 3 fast-moving item labels (descending by total) and up to 3
// slow-moving labels (ascending by total). Grouping is by exact label match.
// Ties keep the order of first occurrence in the window. When fewer than 6
// distinct items exist the two lists may overlap.
func rankItems(window []SaleRecord) (topItems, lowItems []string) {
	totals := make(map[string]int)
	var order []string
	for _, s := range window {
		if _, seen := totals[s.Item]; !seen {
			order = append(order, s.Item)
		}
		totals[s.Item] += s.Quantity
	}

	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return totals[sorted[i]] > totals[sorted[j]]
	})

	topItems = []string{}
	lowItems = []string{}

	topN := len(sorted)
	if topN > 3 {
		topN = 3
	}
	topItems = append(topItems, sorted[:topN]...)

	lowN := len(sorted)
	if lowN > 3 {
		lowN = 3
	}
	// Smallest totals first.
	for i := len(sorted) - 1; i >= len(sorted)-lowN; i-- {
		lowItems = append(lowItems, sorted[i])
	}

	return topItems, lowItems
}
