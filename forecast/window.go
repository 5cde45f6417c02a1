package forecast

import "time"

// lastNDays returns the records whose CreatedAt falls within the last n days
// relative to now. The cutoff is computed once, so every record is filtered
// against the same instant. Records with a zero timestamp are excluded.
// Input order is preserved.
func lastNDays(sales []SaleRecord, n int, now time.Time) []SaleRecord {
	cutoff := now.Add(-time.Duration(n) * 24 * time.Hour)

	var out []SaleRecord
	for _, s := range sales {
		if s.CreatedAt.IsZero() {
			continue
		}
		if !s.CreatedAt.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}
