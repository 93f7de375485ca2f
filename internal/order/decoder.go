package order

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go-flatfile-orders/internal/model"
	"go-flatfile-orders/pkg/utils"
)

// Decoder turns raw fixed-width flat-file content into typed purchase-order
// records according to a declarative field layout. It holds no state and is
// safe to construct wherever it is needed.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode splits every content blob into lines, applies the layout to each
// non-blank line and validates the full candidate batch against the order
// schema. Any invalid line fails the whole batch: the returned error carries
// one issue per violated field and no records are returned.
func (d *Decoder) Decode(contents []string, layout model.Layout) ([]model.ProcessedOrder, *model.ValidationError) {
	if len(contents) == 0 {
		return nil, model.NewValidationError(model.Issue{
			Code:     model.IssueInvalidType,
			Message:  "The content is required and cannot be empty",
			Path:     []string{},
			Expected: "array",
			Received: "undefined",
		})
	}

	if len(layout) == 0 {
		return nil, model.NewValidationError(model.Issue{
			Code:     model.IssueInvalidType,
			Message:  "The layout is required and cannot be empty",
			Path:     []string{},
			Expected: "array",
			Received: "undefined",
		})
	}

	orders := []model.ProcessedOrder{}
	var issues []model.Issue
	index := 0

	for _, content := range contents {
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}

			rec, lineIssues := validateRecord(index, decodeLine(line, layout))
			if len(lineIssues) > 0 {
				issues = append(issues, lineIssues...)
			} else {
				orders = append(orders, rec)
			}
			index++
		}
	}

	if len(issues) > 0 {
		return nil, model.NewValidationError(issues...)
	}

	return orders, nil
}

// decodeLine applies every field descriptor to one line and coerces each
// slice by its declared type
func decodeLine(line string, layout model.Layout) fieldValues {
	fields := make(fieldValues, len(layout))

	for _, fd := range layout {
		width := fd.End - fd.Start
		field := strings.TrimSpace(slice(line, fd.Start, fd.End))

		switch fd.Type {
		case model.FieldNumber:
			if n, err := strconv.Atoi(utils.PadLeft(field, width, fd.Pad)); err == nil {
				fields[fd.FieldName] = n
			} else {
				fields[fd.FieldName] = math.NaN()
			}

		case model.FieldString:
			// pad to the declared width, then trim again; the observable
			// value is the trimmed content (legacy decoder parity)
			fields[fd.FieldName] = strings.TrimSpace(utils.PadRight(field, width, fd.Pad))

		case model.FieldDecimal:
			if f, err := strconv.ParseFloat(strings.ReplaceAll(field, ",", "."), 64); err == nil {
				fields[fd.FieldName] = f
			} else {
				fields[fd.FieldName] = math.NaN()
			}

		case model.FieldDate:
			// always an 8-char YYYYMMDD block, independent of the declared
			// start/end width
			raw := field
			if len(raw) > 8 {
				raw = raw[:8]
			}
			if t, err := time.Parse("20060102", raw); err == nil {
				fields[fd.FieldName] = t
			} else {
				fields[fd.FieldName] = time.Time{}
			}
		}
	}

	return fields
}

// slice extracts line[start:end), clamping out-of-range indices to an empty
// or truncated result instead of failing
func slice(line string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(line) {
		end = len(line)
	}
	if start >= end {
		return ""
	}
	return line[start:end]
}
