package order

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"go-flatfile-orders/internal/model"
)

// fieldValues holds one decoded line before schema validation. Values are
// int, float64, string or time.Time; failed numeric coercions are stored as
// NaN and failed date coercions as the zero time so that validation reports
// them instead of treating the field as absent.
type fieldValues map[string]interface{}

// validateRecord checks one decoded line against the six-field order schema
// and builds the typed record. Every violated constraint yields one issue;
// a record is only produced when the issue list is empty.
func validateRecord(index int, fields fieldValues) (model.ProcessedOrder, []model.Issue) {
	var (
		rec    model.ProcessedOrder
		issues []model.Issue
	)

	if v, ok := asInt(fields["userId"]); ok {
		rec.UserID = v
	} else {
		issues = append(issues, numberIssue(index, "userId", fields["userId"]))
	}

	if v, ok := fields["userName"].(string); ok {
		rec.UserName = v
	} else {
		issues = append(issues, typeIssue(index, "userName", "string", fields["userName"]))
	}

	if v, ok := asInt(fields["orderId"]); ok {
		rec.OrderID = v
	} else {
		issues = append(issues, numberIssue(index, "orderId", fields["orderId"]))
	}

	if v, ok := asInt(fields["productId"]); ok {
		rec.ProductID = v
	} else {
		issues = append(issues, numberIssue(index, "productId", fields["productId"]))
	}

	if v, ok := asFloat(fields["value"]); ok {
		rec.Value = v
	} else {
		issues = append(issues, numberIssue(index, "value", fields["value"]))
	}

	switch v := fields["purchaseDate"].(type) {
	case time.Time:
		if v.IsZero() {
			issues = append(issues, model.Issue{
				Code:    model.IssueInvalidDate,
				Message: "Invalid date",
				Path:    recordPath(index, "purchaseDate"),
			})
		} else {
			rec.PurchaseDate = v
		}
	default:
		issues = append(issues, typeIssue(index, "purchaseDate", "date", fields["purchaseDate"]))
	}

	return rec, issues
}

// validateOrders re-checks an already-typed record sequence. Group can be
// called without going through Decode, so the invariants the decoder would
// have enforced are verified again here.
func validateOrders(orders []model.ProcessedOrder) *model.ValidationError {
	var issues []model.Issue
	for i, rec := range orders {
		if math.IsNaN(rec.Value) || math.IsInf(rec.Value, 0) {
			issues = append(issues, numberIssue(i, "value", rec.Value))
		}
		if rec.PurchaseDate.IsZero() {
			issues = append(issues, model.Issue{
				Code:    model.IssueInvalidDate,
				Message: "Invalid date",
				Path:    recordPath(i, "purchaseDate"),
			})
		}
	}
	if len(issues) > 0 {
		return model.NewValidationError(issues...)
	}
	return nil
}

// asInt accepts the numeric shapes a layout can produce for an integer field
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func numberIssue(index int, field string, got interface{}) model.Issue {
	return typeIssue(index, field, "number", got)
}

func typeIssue(index int, field, expected string, got interface{}) model.Issue {
	received := "undefined"
	message := "Required"
	if got != nil {
		received = receivedKind(got)
		message = fmt.Sprintf("Expected %s, received %s", expected, received)
	}
	return model.Issue{
		Code:     model.IssueInvalidType,
		Message:  message,
		Path:     recordPath(index, field),
		Expected: expected,
		Received: received,
	}
}

func receivedKind(v interface{}) string {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return "nan"
		}
		return "number"
	case int:
		return "number"
	case string:
		return "string"
	case time.Time:
		return "date"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func recordPath(index int, field string) []string {
	return []string{strconv.Itoa(index), field}
}
