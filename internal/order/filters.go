package order

import (
	"net/url"
	"strconv"
	"time"

	"go-flatfile-orders/internal/model"
)

// filterDateLayouts are the date formats accepted on the query string
var filterDateLayouts = []string{"2006-01-02", time.RFC3339}

// VerifyFilters validates the optional orderId / startDate / endDate query
// parameters. startDate and endDate must be supplied together and in order;
// every violated constraint is reported as its own issue.
func VerifyFilters(query url.Values) (model.OrderFilters, *model.ValidationError) {
	var filters model.OrderFilters

	_, hasStart := query["startDate"]
	_, hasEnd := query["endDate"]
	if (hasStart && query.Get("startDate") == "") || (hasEnd && query.Get("endDate") == "") {
		return filters, model.NewValidationError(model.Issue{
			Code:     model.IssueInvalidType,
			Message:  "startDate or endDate cannot be empty strings",
			Path:     []string{"startDate", "endDate"},
			Expected: "string",
			Received: "undefined",
		})
	}

	var issues []model.Issue

	if raw := query.Get("orderId"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			filters.OrderID = &id
		} else {
			issues = append(issues, model.Issue{
				Code:    model.IssueCustom,
				Message: "orderId must be a number",
				Path:    []string{"orderId"},
			})
		}
	}

	if raw := query.Get("startDate"); raw != "" {
		if t, ok := parseFilterDate(raw); ok {
			filters.StartDate = &t
		} else {
			issues = append(issues, model.Issue{
				Code:    model.IssueCustom,
				Message: "startDate must be a valid date string",
				Path:    []string{"startDate"},
			})
		}
	}

	if raw := query.Get("endDate"); raw != "" {
		if t, ok := parseFilterDate(raw); ok {
			filters.EndDate = &t
		} else {
			issues = append(issues, model.Issue{
				Code:    model.IssueCustom,
				Message: "endDate must be a valid date string",
				Path:    []string{"endDate"},
			})
		}
	}

	// pair and ordering rules only apply once the fields themselves parsed
	if len(issues) == 0 {
		if (filters.StartDate == nil) != (filters.EndDate == nil) {
			issues = append(issues, model.Issue{
				Code:    model.IssueCustom,
				Message: "Both startDate and endDate are required if one is provided",
				Path:    []string{"startDate", "endDate"},
			})
		} else if filters.HasDateRange() && filters.StartDate.After(*filters.EndDate) {
			issues = append(issues, model.Issue{
				Code:    model.IssueCustom,
				Message: "startDate must be less than or equal to endDate",
				Path:    []string{"startDate", "endDate"},
			})
		}
	}

	if len(issues) > 0 {
		return model.OrderFilters{}, model.NewValidationError(issues...)
	}

	return filters, nil
}

func parseFilterDate(raw string) (time.Time, bool) {
	for _, layout := range filterDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
