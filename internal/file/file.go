package file

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"

	"go-flatfile-orders/internal/model"
)

// MimeTextPlain is the only upload type the orders endpoint accepts
const MimeTextPlain = "text/plain"

// Client verifies and reads uploaded flat files. The service performs no
// other file I/O; content is handed to the decoder as plain strings.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// Verify checks that files were uploaded at all and that every part declares
// one of the allowed MIME types. Parameters on the Content-Type header
// (charset etc.) are ignored for the comparison.
func (c *Client) Verify(allowed []string, files []*multipart.FileHeader) ([]*multipart.FileHeader, *model.ValidationError) {
	if len(files) == 0 {
		return nil, model.NewValidationError(model.Issue{
			Code:     model.IssueInvalidType,
			Message:  "Files is required",
			Path:     []string{"files"},
			Expected: "array",
			Received: "undefined",
		})
	}

	for _, fh := range files {
		mediaType := fh.Header.Get("Content-Type")
		if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
			mediaType = parsed
		}

		if !contains(allowed, mediaType) {
			return nil, model.NewValidationError(model.Issue{
				Code:     model.IssueInvalidLiteral,
				Message:  "Invalid file type",
				Path:     []string{"files"},
				Expected: MimeTextPlain,
				Received: mediaType,
			})
		}
	}

	return files, nil
}

// Read returns the full content of every file as one string, in upload
// order. Read failures are infrastructure faults, not validation errors.
func (c *Client) Read(files []*multipart.FileHeader) ([]string, error) {
	contents := make([]string, 0, len(files))

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file %s: %w", fh.Filename, err)
		}

		contents = append(contents, string(data))
	}

	return contents, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
