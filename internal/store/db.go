package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"go-flatfile-orders/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// Initialize DB connection
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Create tables if not exists
	batchTable := `
	CREATE TABLE IF NOT EXISTS upload_batches (
		id TEXT PRIMARY KEY,
		file_names TEXT,
		status TEXT,
		record_count INTEGER DEFAULT 0,
		customer_count INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS batch_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		batch_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(batchTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}

	return nil
}

// SaveBatch records a new upload batch in the processing state
func SaveBatch(batchID string, fileNames []string) error {
	namesJSON, err := json.Marshal(fileNames)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO upload_batches (id, file_names, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		batchID, namesJSON, model.BatchProcessing, now, now)
	return err
}

// CompleteBatch marks a batch as completed and stores its result counts.
// Only metadata is persisted; the aggregated hierarchy itself never is.
func CompleteBatch(batchID string, recordCount, customerCount int) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE upload_batches SET status = ?, record_count = ?, customer_count = ?, updated_at = ? WHERE id = ?`,
		model.BatchCompleted, recordCount, customerCount, now, batchID)
	return err
}

// UpdateBatchStatus updates batch status
func UpdateBatchStatus(batchID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE upload_batches SET status = ?, updated_at = ? WHERE id = ?`, status, now, batchID)
	return err
}

// SaveBatchError records an error for an upload batch
func SaveBatchError(batchID string, err error) error {
	if err == nil {
		return nil
	}
	now := time.Now().UTC()
	_, e := db.Exec(`INSERT INTO batch_errors (batch_id, error_message, created_at) VALUES (?, ?, ?)`,
		batchID, err.Error(), now)
	return e
}

// ListBatches returns all upload batches, newest first
func ListBatches() ([]model.UploadBatch, error) {
	rows, err := db.Query(`SELECT id, file_names, status, record_count, customer_count, created_at, updated_at FROM upload_batches ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []model.UploadBatch{}
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

// GetBatch fetches one upload batch by id
func GetBatch(batchID string) (model.UploadBatch, error) {
	row := db.QueryRow(`SELECT id, file_names, status, record_count, customer_count, created_at, updated_at FROM upload_batches WHERE id = ?`, batchID)
	return scanBatch(row)
}

// GetBatchErrors returns the recorded errors for a batch, oldest first
func GetBatchErrors(batchID string) ([]model.BatchError, error) {
	rows, err := db.Query(`SELECT id, batch_id, error_message, created_at FROM batch_errors WHERE batch_id = ? ORDER BY created_at ASC`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	errors := []model.BatchError{}
	for rows.Next() {
		var be model.BatchError
		if err := rows.Scan(&be.ID, &be.BatchID, &be.Message, &be.CreatedAt); err != nil {
			return nil, err
		}
		errors = append(errors, be)
	}
	return errors, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBatch(row rowScanner) (model.UploadBatch, error) {
	var (
		batch     model.UploadBatch
		namesJSON string
	)
	if err := row.Scan(&batch.ID, &namesJSON, &batch.Status, &batch.RecordCount, &batch.CustomerCount, &batch.CreatedAt, &batch.UpdatedAt); err != nil {
		return model.UploadBatch{}, err
	}
	if err := json.Unmarshal([]byte(namesJSON), &batch.FileNames); err != nil {
		return model.UploadBatch{}, err
	}
	return batch, nil
}
