package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/finlens/statement-insights/internal/api"
	"github.com/finlens/statement-insights/internal/extractor"
	"github.com/finlens/statement-insights/internal/logger"
	"github.com/finlens/statement-insights/internal/models"
	"github.com/finlens/statement-insights/internal/parser"
	"github.com/finlens/statement-insights/internal/report"
	"github.com/finlens/statement-insights/internal/store"
	"github.com/finlens/statement-insights/internal/writer"
)

const version = "1.0.0"

func main() {
	ownerFlag := flag.String("owner", "local", "Owner id to stamp onto parsed transactions")
	outputFlag := flag.String("output", "", "Output CSV path (defaults to input filename with .csv extension)")
	reportFlag := flag.Bool("report", true, "Print a category breakdown after parsing")
	serveFlag := flag.String("serve", "", "Run the upload API on this address (e.g. :8080) instead of converting files")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Statement Insights
Extracts normalized transactions from bank statements (PDF, CSV or
pre-extracted text) and rolls them into spending/income categories.

Usage:
  statement-insights [flags] <statement.pdf|statement.csv|statement.txt> ...
  statement-insights -serve :8080

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("statement-insights v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag != "" {
		serve(*serveFlag)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *ownerFlag, *outputFlag, *reportFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func serve(addr string) {
	log := logger.New()
	app := fiber.New(fiber.Config{BodyLimit: 32 << 20})

	h := &api.Handler{
		Store: store.NewMemoryStore(),
		Log:   log,
	}
	h.Register(app)

	log.Info().Str("addr", addr).Msg("starting upload API")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func processFile(inputPath, ownerID, outputPath string, printReport bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	batchID := uuid.NewString()
	var result models.StatementResult

	switch ext := strings.ToLower(filepath.Ext(inputPath)); ext {
	case ".pdf":
		text, err := extractor.ExtractText(inputPath)
		if err != nil {
			return fmt.Errorf("pdf extraction failed: %w", err)
		}
		result = parser.ParseStatement(text, batchID, ownerID)
	case ".csv":
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		result, err = parser.ParseCSV(f, batchID, ownerID)
		if err != nil {
			return fmt.Errorf("csv parsing failed: %w", err)
		}
	case ".txt":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return err
		}
		result = parser.ParseStatement(string(data), batchID, ownerID)
	default:
		return fmt.Errorf("expected .pdf, .csv or .txt file, got %q", ext)
	}

	fmt.Printf("  Found %d transaction(s)\n", len(result.Transactions))
	if len(result.Transactions) == 0 {
		fmt.Println("  Warning: no transactions were recognized. Check the statement format.")
		return nil
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
	}

	w := &writer.CSVWriter{IncludeBatchMeta: true}
	if err := w.WriteToFile(outPath, result); err != nil {
		return fmt.Errorf("csv write failed: %w", err)
	}
	fmt.Printf("  Output: %s\n", outPath)

	if printReport {
		printCategoryReport(result)
	}

	fmt.Println("  Done.")
	return nil
}

func printCategoryReport(result models.StatementResult) {
	rep := report.Aggregate(result.Transactions, "")

	fmt.Println("\nExpenses")
	renderBreakdown(rep.ExpenseCategories)
	fmt.Println("\nIncome")
	renderBreakdown(rep.IncomeCategories)
}

func renderBreakdown(rows []report.CategoryBreakdown) {
	if len(rows) == 0 {
		fmt.Println("  (none)")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Total", "%"})
	table.SetBorder(false)
	for _, r := range rows {
		table.Append([]string{
			r.Name,
			strconv.FormatFloat(r.Total, 'f', 2, 64),
			strconv.FormatFloat(r.Percent, 'f', 1, 64),
		})
	}
	table.Render()
}
