package Controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"TaskBoard/Ingest"
	"TaskBoard/Models"
	"TaskBoard/Tasks"
	"TaskBoard/middleware"
)

// DatasetController handles uploading, reading and clearing the session's
// task dataset.
type DatasetController struct {
	Store Models.SnapshotStore
}

// NewDatasetController creates a new DatasetController
func NewDatasetController(store Models.SnapshotStore) *DatasetController {
	return &DatasetController{Store: store}
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	File    Ingest.FileInfo `json:"file"`
	Headers []string        `json:"headers"`
	Summary Tasks.Summary   `json:"summary"`
}

// DatasetResponse is the stored dataset of a session.
type DatasetResponse struct {
	HasData  bool             `json:"hasData"`
	File     *Ingest.FileInfo `json:"file,omitempty"`
	LoadedAt *time.Time       `json:"loadedAt,omitempty"`
	Headers  []string         `json:"headers,omitempty"`
	Tasks    []Tasks.Record   `json:"tasks,omitempty"`
	Summary  *Tasks.Summary   `json:"summary,omitempty"`
}

// Upload loads the spreadsheet in the "file" form field and replaces the
// session's dataset with it. A failed upload leaves the stored dataset as
// it was.
func (c *DatasetController) Upload(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, msgMissingFile)
	}

	file, err := header.Open()
	if err != nil {
		log.Printf("Error opening upload %q: %v\n", header.Filename, err)
		return errorJSON(ctx, fiber.StatusBadRequest, msgReadFailure)
	}
	defer file.Close()

	result, err := Ingest.Load(header.Filename, header.Header.Get(fiber.HeaderContentType), file)
	if err != nil {
		log.Printf("Error loading upload %q: %v\n", header.Filename, err)
		status, message := uploadError(err)
		return errorJSON(ctx, status, message)
	}

	snapshot, err := Models.NewSnapshot(result.File.Name, result.File.Size, result.Dataset)
	if err != nil {
		log.Printf("Error encoding snapshot: %v\n", err)
		return errorJSON(ctx, fiber.StatusInternalServerError, msgStoreFailure)
	}
	if err := c.Store.Save(requestContext(ctx), middleware.SessionKey(ctx), snapshot); err != nil {
		log.Printf("Error saving snapshot: %v\n", err)
		return errorJSON(ctx, fiber.StatusInternalServerError, msgStoreFailure)
	}

	return ctx.JSON(UploadResponse{
		Success: true,
		Message: msgUploaded,
		File:    result.File,
		Headers: result.Dataset.Headers,
		Summary: result.Dataset.Summary,
	})
}

func uploadError(err error) (int, string) {
	switch {
	case errors.Is(err, Ingest.ErrInvalidFileType):
		return fiber.StatusBadRequest, msgInvalidFileType
	case errors.Is(err, Ingest.ErrDecodeFailure), errors.Is(err, Tasks.ErrHeaderNotFound):
		return fiber.StatusUnprocessableEntity, msgReadFailure
	case errors.Is(err, Ingest.ErrMalformedAggregation):
		return fiber.StatusUnprocessableEntity, msgProcessFailure + err.Error()
	default:
		return fiber.StatusInternalServerError, msgReadFailure
	}
}

// Dataset returns the session's headers, tasks and summary.
func (c *DatasetController) Dataset(ctx *fiber.Ctx) error {
	snapshot, dataset, found, err := loadSnapshot(ctx, c.Store)
	if err != nil {
		return errorJSON(ctx, fiber.StatusInternalServerError, msgStoreFailure)
	}
	if !found {
		return ctx.JSON(DatasetResponse{HasData: false})
	}

	return ctx.JSON(DatasetResponse{
		HasData: true,
		File: &Ingest.FileInfo{
			Name:     snapshot.FileName,
			Size:     snapshot.FileSize,
			SizeText: Ingest.FormatFileSize(snapshot.FileSize),
		},
		LoadedAt: &snapshot.LoadedAt,
		Headers:  dataset.Headers,
		Tasks:    dataset.Tasks,
		Summary:  &dataset.Summary,
	})
}

// Clear forgets the session's dataset.
func (c *DatasetController) Clear(ctx *fiber.Ctx) error {
	if err := c.Store.Clear(requestContext(ctx), middleware.SessionKey(ctx)); err != nil {
		log.Printf("Error clearing snapshot: %v\n", err)
		return errorJSON(ctx, fiber.StatusInternalServerError, msgStoreFailure)
	}
	return ctx.JSON(MessageResponse{Success: true, Message: msgCleared})
}

// Health reports that the service is up.
func Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
