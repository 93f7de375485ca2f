package order

import (
	"math"
	"reflect"
	"testing"
	"time"

	"go-flatfile-orders/internal/model"
)

func makeRecord(userID int, userName string, orderID, productID int, value float64, date string) model.ProcessedOrder {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.ProcessedOrder{
		UserID:       userID,
		UserName:     userName,
		OrderID:      orderID,
		ProductID:    productID,
		Value:        value,
		PurchaseDate: t,
	}
}

func TestGroupByUser(t *testing.T) {
	sut := NewAggregator()

	records := []model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 50.0, "2024-01-01"),
		makeRecord(1, "Alice", 11, 101, 60.0, "2024-01-01"),
		makeRecord(2, "Bob", 12, 102, 70.0, "2024-01-01"),
	}

	grouped, verr := sut.Group(records)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}

	want := []model.UserOrder{
		{
			UserID:   1,
			UserName: "Alice",
			Orders: []model.Order{
				{OrderID: 10, Total: 50.0, Date: "2024-01-01", Products: []model.Product{{ProductID: 100, Value: 50.0}}},
				{OrderID: 11, Total: 60.0, Date: "2024-01-01", Products: []model.Product{{ProductID: 101, Value: 60.0}}},
			},
		},
		{
			UserID:   2,
			UserName: "Bob",
			Orders: []model.Order{
				{OrderID: 12, Total: 70.0, Date: "2024-01-01", Products: []model.Product{{ProductID: 102, Value: 70.0}}},
			},
		},
	}

	if !reflect.DeepEqual(grouped, want) {
		t.Errorf("grouped hierarchy mismatch:\ngot  %+v\nwant %+v", grouped, want)
	}
}

func TestGroupEmptyInput(t *testing.T) {
	sut := NewAggregator()

	grouped, verr := sut.Group([]model.ProcessedOrder{})
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if grouped == nil || len(grouped) != 0 {
		t.Fatalf("expected an empty hierarchy, got %v", grouped)
	}
}

func TestGroupRejectsInvalidRecords(t *testing.T) {
	sut := NewAggregator()

	zeroDate := model.ProcessedOrder{UserID: 1, UserName: "Alice", OrderID: 10, ProductID: 100, Value: 50.0}
	if _, verr := sut.Group([]model.ProcessedOrder{zeroDate}); verr == nil {
		t.Error("expected a validation error for a zero purchase date")
	}

	nanValue := makeRecord(1, "Alice", 10, 100, math.NaN(), "2024-01-01")
	if _, verr := sut.Group([]model.ProcessedOrder{nanValue}); verr == nil {
		t.Error("expected a validation error for a NaN value")
	}
}

func TestGroupRunningTotalAndFirstDate(t *testing.T) {
	sut := NewAggregator()

	records := []model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 50.0, "2024-01-01"),
		makeRecord(1, "Alice", 10, 101, 25.5, "2024-02-15"),
		makeRecord(1, "Alice", 10, 100, 24.5, "2024-03-20"),
	}

	grouped, verr := sut.Group(records)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if len(grouped) != 1 || len(grouped[0].Orders) != 1 {
		t.Fatalf("expected one customer with one order, got %+v", grouped)
	}

	ord := grouped[0].Orders[0]
	if ord.Total != 100.0 {
		t.Errorf("total: got %v, want 100.0", ord.Total)
	}
	// the first record folded in fixes the order date
	if ord.Date != "2024-01-01" {
		t.Errorf("date: got %q, want 2024-01-01", ord.Date)
	}
	// duplicate product ids are kept, not deduplicated
	if len(ord.Products) != 3 {
		t.Errorf("products: got %d line items, want 3", len(ord.Products))
	}
}

func TestGroupKeepsFirstSeenOrdering(t *testing.T) {
	sut := NewAggregator()

	records := []model.ProcessedOrder{
		makeRecord(2, "Bob", 20, 200, 10.0, "2024-01-01"),
		makeRecord(1, "Alice", 10, 100, 20.0, "2024-01-01"),
		makeRecord(2, "Bob", 21, 201, 30.0, "2024-01-01"),
	}

	grouped, verr := sut.Group(records)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if grouped[0].UserID != 2 || grouped[1].UserID != 1 {
		t.Errorf("expected first-seen customer order [2 1], got [%d %d]", grouped[0].UserID, grouped[1].UserID)
	}
	if grouped[0].Orders[0].OrderID != 20 || grouped[0].Orders[1].OrderID != 21 {
		t.Errorf("expected first-seen order ids [20 21], got %+v", grouped[0].Orders)
	}
}

func TestGroupKeepsFirstSeenUserName(t *testing.T) {
	sut := NewAggregator()

	records := []model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 10.0, "2024-01-01"),
		makeRecord(1, "Alicia", 11, 101, 20.0, "2024-01-01"),
	}

	grouped, verr := sut.Group(records)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if grouped[0].UserName != "Alice" {
		t.Errorf("userName: got %q, want the first-seen name Alice", grouped[0].UserName)
	}
}

func TestGetOrderByID(t *testing.T) {
	sut := NewAggregator()

	grouped, _ := sut.Group([]model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 50.0, "2024-01-01"),
		makeRecord(1, "Alice", 11, 101, 60.0, "2024-01-01"),
		makeRecord(2, "Bob", 12, 102, 70.0, "2024-01-01"),
	})

	match, found := sut.GetOrderByID(11, grouped)
	if !found {
		t.Fatal("expected order 11 to be found")
	}
	if match.UserID != 1 {
		t.Errorf("user: got %d, want 1", match.UserID)
	}
	// the matching customer is reduced to the single matching order
	if len(match.Orders) != 1 || match.Orders[0].OrderID != 11 {
		t.Errorf("expected exactly order 11, got %+v", match.Orders)
	}
}

func TestGetOrderByIDAbsent(t *testing.T) {
	sut := NewAggregator()

	grouped, _ := sut.Group([]model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 50.0, "2024-01-01"),
	})

	if _, found := sut.GetOrderByID(999, grouped); found {
		t.Error("expected no match for an unknown order id")
	}
}

func TestGetOrdersBetweenDatesInclusive(t *testing.T) {
	sut := NewAggregator()

	grouped, _ := sut.Group([]model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 50.0, "2024-01-01"),
		makeRecord(1, "Alice", 11, 101, 60.0, "2024-01-02"),
		makeRecord(2, "Bob", 12, 102, 70.0, "2024-02-01"),
	})

	start, _ := time.Parse("2006-01-02", "2024-01-01")
	end, _ := time.Parse("2006-01-02", "2024-01-02")

	filtered := sut.GetOrdersBetweenDates(start, end, grouped)
	if len(filtered) != 1 {
		t.Fatalf("expected one customer after filtering, got %d", len(filtered))
	}
	// boundary dates are included on both ends; Bob has no orders left and
	// is dropped entirely
	if len(filtered[0].Orders) != 2 {
		t.Errorf("expected both boundary orders, got %+v", filtered[0].Orders)
	}
}

func TestGetOrdersBetweenDatesSingleDay(t *testing.T) {
	sut := NewAggregator()

	grouped, _ := sut.Group([]model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 50.0, "2024-01-01"),
		makeRecord(1, "Alice", 11, 101, 60.0, "2024-01-02"),
	})

	day, _ := time.Parse("2006-01-02", "2024-01-01")

	filtered := sut.GetOrdersBetweenDates(day, day, grouped)
	if len(filtered) != 1 || len(filtered[0].Orders) != 1 {
		t.Fatalf("expected exactly one matching order, got %+v", filtered)
	}
	if filtered[0].Orders[0].Date != "2024-01-01" {
		t.Errorf("date: got %q, want 2024-01-01", filtered[0].Orders[0].Date)
	}
}

func TestGetOrdersBetweenDatesEmptyResult(t *testing.T) {
	sut := NewAggregator()

	grouped, _ := sut.Group([]model.ProcessedOrder{
		makeRecord(1, "Alice", 10, 100, 50.0, "2024-01-01"),
	})

	start, _ := time.Parse("2006-01-02", "2030-01-01")
	end, _ := time.Parse("2006-01-02", "2030-12-31")

	filtered := sut.GetOrdersBetweenDates(start, end, grouped)
	if filtered == nil || len(filtered) != 0 {
		t.Fatalf("expected an empty, non-nil result, got %v", filtered)
	}
}
