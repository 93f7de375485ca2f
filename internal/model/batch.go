package model

import "time"

// Upload batch statuses
const (
	BatchProcessing = "processing"
	BatchCompleted  = "completed"
	BatchFailed     = "failed"
)

// UploadBatch tracks one multipart upload: which files came in, whether the
// decode+group pass succeeded and how many records and customers it produced.
// Order data itself is never stored; every request recomputes from content.
type UploadBatch struct {
	ID            string    `json:"id"`
	FileNames     []string  `json:"fileNames"`
	Status        string    `json:"status"`
	RecordCount   int       `json:"recordCount"`
	CustomerCount int       `json:"customerCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BatchError is one recorded failure for an upload batch
type BatchError struct {
	ID        int64     `json:"id"`
	BatchID   string    `json:"batchId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
