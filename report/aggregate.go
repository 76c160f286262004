package report

import (
	"fmt"
	"time"

	"furniture-delivery/models"
)

// AggregateOverdueByType sums overdue unit counts per furniture type.
// An order counts if it is overdue relative to ref; then every item's
// quantity is added under the item's type. Orders with no items
// contribute nothing.
func AggregateOverdueByType(orders []*models.Order, ref time.Time) (map[string]int, error) {
	result := make(map[string]int)
	for _, order := range orders {
		if !order.IsOverdue(ref) {
			continue
		}
		for _, item := range order.Items {
			qty, err := item.Units()
			if err != nil {
				return nil, fmt.Errorf("order %d: %w", order.ID, err)
			}
			result[item.Type] += qty
		}
	}
	return result, nil
}
