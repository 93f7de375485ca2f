package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"

	"go-flatfile-orders/internal/model"
	"go-flatfile-orders/internal/order"
)

// orders decodes local flat files with the reference layout, groups them by
// customer and prints the hierarchy as JSON. The same filters the API takes
// on the query string are available as flags.
func main() {
	var (
		output    = flag.String("o", "", "write the result to this file instead of stdout")
		orderID   = flag.String("order-id", "", "return only the order with this id")
		startDate = flag.String("start-date", "", "range start (YYYY-MM-DD), requires -end-date")
		endDate   = flag.String("end-date", "", "range end (YYYY-MM-DD), requires -start-date")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: orders [-o out.json] [-order-id N] [-start-date D -end-date D] file...")
		os.Exit(2)
	}

	// reuse the API's filter validation by shaping the flags as query params
	query := url.Values{}
	if *orderID != "" {
		query.Set("orderId", *orderID)
	}
	if *startDate != "" {
		query.Set("startDate", *startDate)
	}
	if *endDate != "" {
		query.Set("endDate", *endDate)
	}

	filters, verr := order.VerifyFilters(query)
	if verr != nil {
		printIssues(verr)
		os.Exit(1)
	}

	contents := make([]string, 0, flag.NArg())
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
			os.Exit(1)
		}
		contents = append(contents, string(data))
	}

	records, verr := order.NewDecoder().Decode(contents, model.DefaultOrderLayout)
	if verr != nil {
		printIssues(verr)
		os.Exit(1)
	}

	aggregator := order.NewAggregator()
	userOrders, verr := aggregator.Group(records)
	if verr != nil {
		printIssues(verr)
		os.Exit(1)
	}

	if filters.HasDateRange() {
		userOrders = aggregator.GetOrdersBetweenDates(*filters.StartDate, *filters.EndDate, userOrders)
	}
	if filters.OrderID != nil {
		if match, found := aggregator.GetOrderByID(*filters.OrderID, userOrders); found {
			userOrders = []model.UserOrder{match}
		} else {
			userOrders = []model.UserOrder{}
		}
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *output, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(map[string]interface{}{"data": userOrders}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}
}

func printIssues(verr *model.ValidationError) {
	for _, issue := range verr.Issues {
		if len(issue.Path) > 0 {
			fmt.Fprintf(os.Stderr, "invalid input: %v: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(os.Stderr, "invalid input: %s\n", issue.Message)
		}
	}
}
