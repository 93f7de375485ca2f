package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"go-flatfile-orders/internal/file"
	"go-flatfile-orders/internal/model"
	"go-flatfile-orders/internal/order"
	"go-flatfile-orders/internal/store"

	"github.com/google/uuid"
)

// MaxUploadBytes caps the in-memory size of a multipart upload. Overridden
// from config at startup.
var MaxUploadBytes int64 = 32 << 20

// ProcessOrders ingests uploaded flat files and returns the aggregated hierarchy
// @Summary Process order flat files
// @Description Upload fixed-width order files, decode them with the reference layout and return orders grouped by customer. Optional filters narrow the result.
// @Tags orders
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Flat files (text/plain)"
// @Param orderId query int false "Return only the order with this id"
// @Param startDate query string false "Range start (YYYY-MM-DD), requires endDate"
// @Param endDate query string false "Range end (YYYY-MM-DD), requires startDate"
// @Success 200 {object} map[string]interface{} "Grouped user orders"
// @Failure 400 {object} model.ValidationError "Invalid filters, files or file content"
// @Failure 500 {object} model.ValidationError "Unexpected fault"
// @Router /orders [post]
func ProcessOrders(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			serverError(w, fmt.Errorf("panic: %v", rec), r.URL.Path)
		}
	}()

	filters, verr := order.VerifyFilters(r.URL.Query())
	if verr != nil {
		badRequest(w, verr)
		return
	}

	var files []*multipart.FileHeader
	if err := r.ParseMultipartForm(MaxUploadBytes); err == nil && r.MultipartForm != nil {
		files = r.MultipartForm.File["files"]
	}

	fileClient := file.NewClient()
	files, verr = fileClient.Verify([]string{file.MimeTextPlain}, files)
	if verr != nil {
		badRequest(w, verr)
		return
	}

	batchID := uuid.New().String()
	fileNames := make([]string, 0, len(files))
	for _, fh := range files {
		fileNames = append(fileNames, fh.Filename)
	}
	if err := store.SaveBatch(batchID, fileNames); err != nil {
		// tracking is best-effort and never fails the request
		log.Printf("⚠️ Failed to save upload batch %s: %v", batchID, err)
	}

	contents, err := fileClient.Read(files)
	if err != nil {
		failBatch(batchID, err)
		serverError(w, err, r.URL.Path)
		return
	}

	decoder := order.NewDecoder()
	records, verr := decoder.Decode(contents, model.DefaultOrderLayout)
	if verr != nil {
		failBatch(batchID, verr)
		badRequest(w, verr)
		return
	}

	aggregator := order.NewAggregator()
	userOrders, verr := aggregator.Group(records)
	if verr != nil {
		failBatch(batchID, verr)
		badRequest(w, verr)
		return
	}

	if err := store.CompleteBatch(batchID, len(records), len(userOrders)); err != nil {
		log.Printf("⚠️ Failed to complete upload batch %s: %v", batchID, err)
	}

	if filters.HasDateRange() {
		userOrders = aggregator.GetOrdersBetweenDates(*filters.StartDate, *filters.EndDate, userOrders)
	}

	if filters.OrderID != nil {
		// a miss is a normal outcome: an empty result, not an error
		if match, found := aggregator.GetOrderByID(*filters.OrderID, userOrders); found {
			userOrders = []model.UserOrder{match}
		} else {
			userOrders = []model.UserOrder{}
		}
	}

	okData(w, userOrders)
}

// GetOrderLayout returns the reference flat-file layout
// @Summary Get the reference layout
// @Description Returns the field descriptors used to decode uploaded order files
// @Tags orders
// @Produce json
// @Success 200 {object} map[string]interface{} "Field descriptors"
// @Router /orders/layout [get]
func GetOrderLayout(w http.ResponseWriter, r *http.Request) {
	okData(w, model.DefaultOrderLayout)
}

// ListUploads returns the upload batch history
// @Summary List upload batches
// @Description Returns every tracked upload batch with status and result counts, newest first
// @Tags uploads
// @Produce json
// @Success 200 {object} map[string]interface{} "Upload batches"
// @Failure 500 {object} model.ValidationError "Unexpected fault"
// @Router /orders/uploads [get]
func ListUploads(w http.ResponseWriter, r *http.Request) {
	batches, err := store.ListBatches()
	if err != nil {
		serverError(w, err, r.URL.Path)
		return
	}
	okData(w, batches)
}

// GetUpload returns one upload batch with its recorded errors
// @Summary Get an upload batch
// @Description Returns one upload batch by id, including any recorded processing errors
// @Tags uploads
// @Produce json
// @Param id path string true "Batch ID"
// @Success 200 {object} map[string]interface{} "Upload batch"
// @Failure 404 {object} model.ValidationError "Unknown batch id"
// @Failure 500 {object} model.ValidationError "Unexpected fault"
// @Router /orders/uploads/{id} [get]
func GetUpload(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1/orders/uploads/"

	batchID := strings.TrimPrefix(r.URL.Path, prefix)
	if batchID == "" || strings.Contains(batchID, "/") {
		notFound(w, "Upload batch not found", r.URL.Path)
		return
	}

	batch, err := store.GetBatch(batchID)
	if errors.Is(err, sql.ErrNoRows) {
		notFound(w, "Upload batch not found", r.URL.Path)
		return
	}
	if err != nil {
		serverError(w, err, r.URL.Path)
		return
	}

	batchErrors, err := store.GetBatchErrors(batchID)
	if err != nil {
		serverError(w, err, r.URL.Path)
		return
	}

	okData(w, map[string]interface{}{
		"batch":  batch,
		"errors": batchErrors,
	})
}

func failBatch(batchID string, cause error) {
	if err := store.UpdateBatchStatus(batchID, model.BatchFailed); err != nil {
		log.Printf("⚠️ Failed to mark upload batch %s failed: %v", batchID, err)
	}
	if err := store.SaveBatchError(batchID, cause); err != nil {
		log.Printf("⚠️ Failed to record error for upload batch %s: %v", batchID, err)
	}
}
