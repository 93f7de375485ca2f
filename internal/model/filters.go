package model

import "time"

// OrderFilters holds the validated query filters for an orders request.
// Nil means the filter was not supplied; StartDate and EndDate are always
// either both set or both nil.
type OrderFilters struct {
	OrderID   *int       `json:"orderId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// HasDateRange reports whether a date range filter was supplied
func (f OrderFilters) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}
