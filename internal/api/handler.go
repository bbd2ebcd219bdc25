// Package api is the thin upload/report boundary in front of the parsing
// core. It owns multipart plumbing, temp files and JSON shapes; all
// statement semantics live in parser and report.
package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finlens/statement-insights/internal/extractor"
	"github.com/finlens/statement-insights/internal/models"
	"github.com/finlens/statement-insights/internal/parser"
	"github.com/finlens/statement-insights/internal/report"
	"github.com/finlens/statement-insights/internal/store"
)

// UploadResponse is the JSON body for POST /api/statements.
type UploadResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	BatchID      string               `json:"batchId,omitempty"`
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
	Message      string               `json:"message,omitempty"`
}

// Handler wires the HTTP surface to the store boundary.
type Handler struct {
	Store store.TransactionStore
	Log   zerolog.Logger
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/statements", h.HandleUpload)
	app.Get("/api/reports/:owner", h.HandleReport)
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "engine": "fiber"})
}

// HandleUpload accepts one statement file (pdf, csv or pre-extracted txt)
// for an owner, parses it under a freshly minted batch id and bulk-inserts
// whatever was recognized. Zero extracted transactions is a success with a
// hint, not an error.
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	ownerID := strings.TrimSpace(c.FormValue("owner"))
	if ownerID == "" {
		return writeError(c, fiber.StatusBadRequest, "missing form field 'owner'")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}

	batchID := uuid.NewString()
	log := h.Log.With().Str("owner", ownerID).Str("batch", batchID).Str("file", fileHeader.Filename).Logger()

	var result models.StatementResult
	switch ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext {
	case ".pdf":
		result, err = h.parsePDF(fileHeader, batchID, ownerID)
	case ".csv":
		result, err = h.parseCSV(fileHeader, batchID, ownerID)
	case ".txt":
		result, err = h.parseText(fileHeader, batchID, ownerID)
	default:
		return writeError(c, fiber.StatusBadRequest, fmt.Sprintf("unsupported file type %q; upload .pdf, .csv or .txt", ext))
	}
	if err != nil {
		log.Error().Err(err).Msg("statement parse failed")
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if len(result.Transactions) > 0 {
		if err := h.Store.BulkInsert(c.Context(), result.Transactions); err != nil {
			log.Error().Err(err).Msg("bulk insert failed")
			return writeError(c, fiber.StatusInternalServerError, "failed to store transactions")
		}
	}

	log.Info().Int("count", len(result.Transactions)).Int("skipped", result.RowsSkipped).Msg("statement processed")

	resp := UploadResponse{
		Success:      true,
		BatchID:      batchID,
		Count:        len(result.Transactions),
		Transactions: result.Transactions,
	}
	if resp.Count == 0 {
		resp.Message = "no transactions were recognized; please check the statement format"
	}
	return c.JSON(resp)
}

// HandleReport returns category totals for one owner, optionally narrowed
// to a single upload with ?batch=<id>.
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	ownerID := c.Params("owner")
	batchID := c.Query("batch")

	txns, err := h.Store.ListByOwner(c.Context(), ownerID, batchID)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "failed to load transactions")
	}
	return c.JSON(report.Aggregate(txns, ""))
}

// parsePDF stages the upload in a temp file for the extractor. The temp
// file is removed whether or not extraction succeeds.
func (h *Handler) parsePDF(fh *multipart.FileHeader, batchID, ownerID string) (models.StatementResult, error) {
	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return models.StatementResult{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	src, err := fh.Open()
	if err != nil {
		tmp.Close()
		return models.StatementResult{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return models.StatementResult{}, fmt.Errorf("stage upload: %w", err)
	}
	tmp.Close()

	text, err := extractor.ExtractText(tmp.Name())
	if err != nil {
		return models.StatementResult{}, err
	}
	return parser.ParseStatement(text, batchID, ownerID), nil
}

func (h *Handler) parseCSV(fh *multipart.FileHeader, batchID, ownerID string) (models.StatementResult, error) {
	src, err := fh.Open()
	if err != nil {
		return models.StatementResult{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	return parser.ParseCSV(src, batchID, ownerID)
}

func (h *Handler) parseText(fh *multipart.FileHeader, batchID, ownerID string) (models.StatementResult, error) {
	src, err := fh.Open()
	if err != nil {
		return models.StatementResult{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.StatementResult{}, fmt.Errorf("read upload: %w", err)
	}
	return parser.ParseStatement(string(data), batchID, ownerID), nil
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(UploadResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
	})
}
