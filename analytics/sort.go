package analytics

import (
	"sort"

	"github.com/StayTrack-Labs/staytrack-backend/models"
)

type SortKey string

const (
	SortByRevenue   SortKey = "revenue"
	SortByOccupancy SortKey = "occupancy"
	SortByRate      SortKey = "rate"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ValidSortKey reports whether s names a sortable performance column.
func ValidSortKey(s string) bool {
	switch SortKey(s) {
	case SortByRevenue, SortByOccupancy, SortByRate:
		return true
	}
	return false
}

// NextSort resolves the table-header click contract: clicking the active
// column flips its direction, clicking a new column switches to it at
// descending order.
func NextSort(current SortKey, currentOrder SortOrder, clicked SortKey) (SortKey, SortOrder) {
	if clicked == current {
		if currentOrder == SortDesc {
			return current, SortAsc
		}
		return current, SortDesc
	}
	return clicked, SortDesc
}

// SortPerformance orders rows in place by the given column and direction.
// Ties keep whatever order the underlying sort produces.
func SortPerformance(rows []models.PropertyPerformanceRow, key SortKey, order SortOrder) {
	value := func(r models.PropertyPerformanceRow) float64 {
		switch key {
		case SortByOccupancy:
			return r.OccupancyRate
		case SortByRate:
			return r.AverageRate
		default:
			return r.Revenue
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if order == SortAsc {
			return value(rows[i]) < value(rows[j])
		}
		return value(rows[i]) > value(rows[j])
	})
}
