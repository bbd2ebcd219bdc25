package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/finlens/statement-insights/internal/logger"
	"github.com/finlens/statement-insights/internal/report"
	"github.com/finlens/statement-insights/internal/store"
)

const statementText = `Account Holder: Varun Joshi
Date Narration Withdrawal Deposit Balance
01-07-2025 ATM Withdrawal - Andheri 2546.00 47454.00
03-07-2025 Salary - XYZ Pvt Ltd 13367.00 59047.00
06-07-2025 UPI - ZOMATO 6833.00 44018.00`

func setupTestApp() *fiber.App {
	app := fiber.New()
	h := &Handler{
		Store: store.NewMemoryStore(),
		Log:   logger.NewWithWriter(io.Discard),
	}
	h.Register(app)
	return app
}

func uploadRequest(t *testing.T, filename, owner, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if owner != "" {
		if err := mw.WriteField("owner", owner); err != nil {
			t.Fatalf("write owner field: %v", err)
		}
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte(content))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/statements", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeUpload(t *testing.T, resp *http.Response) UploadResponse {
	t.Helper()
	var out UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestUploadTextStatement(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploadRequest(t, "statement.txt", "varun", statementText))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	out := decodeUpload(t, resp)
	if !out.Success {
		t.Fatalf("expected success, got error %q", out.Error)
	}
	if out.Count != 3 {
		t.Errorf("count: got %d, want 3", out.Count)
	}
	if out.BatchID == "" {
		t.Error("expected a batch id")
	}
	for _, txn := range out.Transactions {
		if txn.BatchID != out.BatchID {
			t.Errorf("transaction batch %q != response batch %q", txn.BatchID, out.BatchID)
		}
		if txn.OwnerID != "varun" {
			t.Errorf("owner: got %q", txn.OwnerID)
		}
	}
}

func TestUploadCSVStatement(t *testing.T) {
	app := setupTestApp()

	csvContent := "date,description,amount,type\n03-07-2025,Salary,13367.00,credit\nbadrow,,,\n06-07-2025,UPI - ZOMATO,6833.00,debit\n"
	resp, err := app.Test(uploadRequest(t, "export.csv", "varun", csvContent))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	out := decodeUpload(t, resp)
	if !out.Success {
		t.Fatalf("expected success, got error %q", out.Error)
	}
	if out.Count != 2 {
		t.Errorf("count: got %d, want 2", out.Count)
	}
}

func TestUploadNothingRecognized(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(uploadRequest(t, "statement.txt", "varun", "just some\nunstructured text"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("zero matches is not an error; got %d", resp.StatusCode)
	}

	out := decodeUpload(t, resp)
	if out.Count != 0 {
		t.Errorf("count: got %d, want 0", out.Count)
	}
	if out.Message == "" {
		t.Error("expected a check-your-format message")
	}
}

func TestUploadValidation(t *testing.T) {
	app := setupTestApp()

	var noFile bytes.Buffer
	mw := multipart.NewWriter(&noFile)
	mw.WriteField("owner", "varun")
	mw.Close()
	noFileReq := httptest.NewRequest("POST", "/api/statements", &noFile)
	noFileReq.Header.Set("Content-Type", mw.FormDataContentType())

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"missing file", noFileReq},
		{"missing owner", uploadRequest(t, "statement.txt", "", statementText)},
		{"unsupported extension", uploadRequest(t, "statement.docx", "varun", statementText)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(tt.req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestReportEndpoint(t *testing.T) {
	app := setupTestApp()

	if _, err := app.Test(uploadRequest(t, "statement.txt", "varun", statementText)); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/varun", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var rep report.Report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}

	if len(rep.IncomeCategories) != 1 || rep.IncomeCategories[0].Name != "Salary" {
		t.Errorf("income: got %+v", rep.IncomeCategories)
	}
	if len(rep.ExpenseCategories) != 2 {
		t.Errorf("expenses: got %+v", rep.ExpenseCategories)
	}
}
