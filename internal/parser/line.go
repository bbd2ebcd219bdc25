package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// parsedLine is the intermediate shape between raw text and a transaction:
// a date, the narration, and every monetary token found after it, left to
// right.
type parsedLine struct {
	date        time.Time
	description string
	amounts     []float64
}

// Transaction rows open with a DD-MM-YYYY date.
// Example: "03-07-2025 Salary - XYZ Pvt Ltd 13367.00 59047.00"
var datedLinePattern = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})\b`)

// Monetary amounts always render with exactly two fraction digits.
var amountPattern = regexp.MustCompile(`\d+\.\d{2}`)

// parseLine tries to read one body line as a transaction row. It returns
// false for anything that is not one: continuation lines, disclaimers,
// summary rows, rows with no amount, rows with only a single number (a
// transaction row always carries at least an amount and a balance).
func parseLine(line string) (parsedLine, bool) {
	m := datedLinePattern.FindStringSubmatch(line)
	if m == nil {
		return parsedLine{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	rest := strings.TrimSpace(line[len(m[0]):])

	firstAmount := amountPattern.FindStringIndex(rest)
	if firstAmount == nil {
		return parsedLine{}, false
	}

	description := strings.TrimSpace(rest[:firstAmount[0]])

	tokens := amountPattern.FindAllString(rest[firstAmount[0]:], -1)
	if len(tokens) < 2 {
		return parsedLine{}, false
	}

	amounts := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return parsedLine{}, false
		}
		amounts = append(amounts, v)
	}

	return parsedLine{date: date, description: description, amounts: amounts}, true
}
