// Package extractor pulls the text layer out of statement PDFs. Scanned
// (image-only) PDFs are not supported; when no readable text layer exists
// extraction is a hard error, since there is nothing for the parser to
// attempt line-level recovery on.
package extractor

import (
	"fmt"
	"io"
	"math"
	"os/exec"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a PDF and returns its text content as one block, rows
// preserved as lines. It tries the structured library first, then the
// external pdftotext command (poppler-utils) when the library output is
// unreadable.
func ExtractText(path string) (string, error) {
	text, libErr := extractWithLibrary(path)
	if libErr == nil && isReadableText(text) {
		return text, nil
	}

	if out, err := extractWithPdftotext(path); err == nil && isReadableText(out) {
		return out, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("pdf text extraction failed: %w", libErr)
	}
	return "", fmt.Errorf("no readable text in %s; the file may be scanned or use undecodable font encodings", path)
}

func extractWithLibrary(path string) (text string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	// Row-based extraction keeps one statement row per line, which is what
	// the line parser needs.
	if text := extractByRow(r); isReadableText(text) {
		return text, nil
	}

	// Fall back to raw text objects, regrouped into rows by Y coordinate.
	if text := extractByContent(r); isReadableText(text) {
		return text, nil
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func extractByRow(r *pdf.Reader) string {
	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			parts := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// extractByContent reconstructs rows from positioned text objects: group by
// rounded Y (PDF Y runs bottom to top), order each row by X.
func extractByContent(r *pdf.Reader) string {
	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()

		type item struct {
			x float64
			s string
		}
		rows := map[int][]item{}
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			y := int(math.Round(t.Y))
			rows[y] = append(rows[y], item{x: t.X, s: t.S})
		}

		ys := make([]int, 0, len(rows))
		for y := range rows {
			ys = append(ys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(ys)))

		for _, y := range ys {
			items := rows[y]
			sort.Slice(items, func(a, b int) bool { return items[a].x < items[b].x })

			var b strings.Builder
			var prevX float64
			for j, it := range items {
				if j > 0 && it.x-prevX > 15 {
					b.WriteString("  ")
				}
				b.WriteString(it.s)
				prevX = it.x
			}
			if line := strings.TrimSpace(b.String()); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func extractWithPdftotext(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return string(out), nil
}

// statementWords are terms that show up in virtually every bank statement.
// Extracted text containing none of them is almost certainly garbage from a
// custom font encoding.
var statementWords = []string{
	"bank", "account", "balance", "date", "statement", "narration",
	"withdrawal", "deposit", "transaction", "amount", "branch", "period",
}

// isReadableText gates extraction output: enough characters, mostly plain
// ASCII, and at least one recognizable statement term.
func isReadableText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 50 {
		return false
	}
	if asciiRatio(trimmed) <= 0.6 {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, w := range statementWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// asciiRatio measures readable ASCII density. A strict ASCII check is used
// deliberately; unicode.IsLetter also matches the accented garbage that
// identity-encoded fonts decode to.
func asciiRatio(text string) float64 {
	total, readable := 0, 0
	for _, r := range text {
		total++
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			readable++
		case r == ' ', r == '\n', r == '\t', r == '\r':
			readable++
		case strings.ContainsRune(".,-/:;()'\"£$€%&@#!?+=*", r):
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}
