package parser

import (
	"strings"

	"github.com/finlens/statement-insights/internal/models"
)

// keywordRule matches a narration substring, optionally suppressed when any
// of the unless substrings is also present. Rules are evaluated in slice
// order so precedence is visible in the data, not buried in control flow.
type keywordRule struct {
	keyword string
	unless  []string
}

// Credit indicators, checked first. A narration that matches any of these is
// a credit regardless of what the debit list would say.
var creditRules = []keywordRule{
	{keyword: "deposit"},
	{keyword: "salary"},
	{keyword: "transfer from"},
	{keyword: "refund"},
	{keyword: "credit"},
	{keyword: "cheque"},
	{keyword: "freelance"},
	{keyword: "cash"},
}

// Debit indicators, checked only after every credit rule has missed.
// "upi" alone is not enough when the narration also mentions a refund.
var debitRules = []keywordRule{
	{keyword: "withdrawal"},
	{keyword: "payment"},
	{keyword: "purchase"},
	{keyword: "atm"},
	{keyword: "pos"},
	{keyword: "bill"},
	{keyword: "recharge"},
	{keyword: "upi", unless: []string{"refund"}},
}

func (r keywordRule) matches(desc string) bool {
	if !strings.Contains(desc, r.keyword) {
		return false
	}
	for _, u := range r.unless {
		if strings.Contains(desc, u) {
			return false
		}
	}
	return true
}

func matchesAny(rules []keywordRule, desc string) bool {
	for _, r := range rules {
		if r.matches(desc) {
			return true
		}
	}
	return false
}

// classifyDirection infers credit vs debit from free-text narration for the
// single-amount-column layout. Credit indicators win over debit indicators,
// and a narration matching neither list defaults to debit — unclassifiable
// movements are conservatively treated as money leaving the account. That
// default is a known heuristic weakness for ambiguous income, but reported
// totals depend on it staying as-is.
func classifyDirection(description string) models.Direction {
	desc := strings.ToLower(description)
	if matchesAny(creditRules, desc) {
		return models.Credit
	}
	if matchesAny(debitRules, desc) {
		return models.Debit
	}
	return models.Debit
}
