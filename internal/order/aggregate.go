package order

import (
	"time"

	"go-flatfile-orders/internal/model"
)

const dateLayout = "2006-01-02"

// Aggregator folds flat decoded records into the customer → order → product
// hierarchy and answers point and range queries over it. It holds no state;
// every call builds or filters a fresh hierarchy owned by the caller.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Group folds records in input order: customers keyed by user id, orders
// keyed by order id within each customer, both in first-seen order. The
// first record of an order fixes its date; every record adds its value to
// the order total and appends a product line item. Empty input yields an
// empty hierarchy.
func (a *Aggregator) Group(orders []model.ProcessedOrder) ([]model.UserOrder, *model.ValidationError) {
	// Group can be called without going through Decode, so the schema is
	// checked again here
	if verr := validateOrders(orders); verr != nil {
		return nil, verr
	}

	result := []model.UserOrder{}
	userIdx := make(map[int]int)
	orderIdx := make(map[int]map[int]int)

	for _, rec := range orders {
		ui, seen := userIdx[rec.UserID]
		if !seen {
			ui = len(result)
			userIdx[rec.UserID] = ui
			orderIdx[rec.UserID] = make(map[int]int)
			// first occurrence fixes the customer name
			result = append(result, model.UserOrder{
				UserID:   rec.UserID,
				UserName: rec.UserName,
				Orders:   []model.Order{},
			})
		}
		user := &result[ui]

		oi, seen := orderIdx[rec.UserID][rec.OrderID]
		if !seen {
			oi = len(user.Orders)
			orderIdx[rec.UserID][rec.OrderID] = oi
			// first occurrence fixes the order date
			user.Orders = append(user.Orders, model.Order{
				OrderID:  rec.OrderID,
				Date:     rec.PurchaseDate.Format(dateLayout),
				Products: []model.Product{},
			})
		}
		ord := &user.Orders[oi]

		ord.Total += rec.Value
		ord.Products = append(ord.Products, model.Product{
			ProductID: rec.ProductID,
			Value:     rec.Value,
		})
	}

	return result, nil
}

// GetOrderByID scans customers in order and returns the first one holding an
// order with the given id, reduced to that single order. A miss is a normal
// outcome, reported by the second return value rather than an error.
func (a *Aggregator) GetOrderByID(id int, userOrders []model.UserOrder) (model.UserOrder, bool) {
	for _, user := range userOrders {
		for _, ord := range user.Orders {
			if ord.OrderID == id {
				return model.UserOrder{
					UserID:   user.UserID,
					UserName: user.UserName,
					Orders:   []model.Order{ord},
				}, true
			}
		}
	}
	return model.UserOrder{}, false
}

// GetOrdersBetweenDates keeps only orders whose date falls within
// [start, end], inclusive on both ends. Customers left without orders are
// dropped entirely. The input hierarchy is never mutated.
func (a *Aggregator) GetOrdersBetweenDates(start, end time.Time, userOrders []model.UserOrder) []model.UserOrder {
	filtered := []model.UserOrder{}

	for _, user := range userOrders {
		var kept []model.Order
		for _, ord := range user.Orders {
			d, err := time.Parse(dateLayout, ord.Date)
			if err != nil {
				// an unparseable stored date never matches a range
				continue
			}
			if !d.Before(start) && !d.After(end) {
				kept = append(kept, ord)
			}
		}
		if len(kept) == 0 {
			continue
		}
		filtered = append(filtered, model.UserOrder{
			UserID:   user.UserID,
			UserName: user.UserName,
			Orders:   kept,
		})
	}

	return filtered
}
