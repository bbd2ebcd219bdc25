package report

import (
	"strings"

	"github.com/finlens/statement-insights/internal/models"
)

// categoryRule maps a narration keyword to a reporting bucket. Rules are
// evaluated top to bottom; the first match wins, so more specific keywords
// must come before broader ones ("cheque" before "deposit", "atm" before
// "cash").
type categoryRule struct {
	keyword  string
	category string
}

// Expense buckets for debit transactions.
var debitCategoryRules = []categoryRule{
	{"atm", "Cash Withdrawal"},
	{"cash withdrawal", "Cash Withdrawal"},
	{"rent", "Housing"},
	{"landlord", "Housing"},
	{"grocery", "Groceries"},
	{"supermarket", "Groceries"},
	{"bigbasket", "Groceries"},
	{"dmart", "Groceries"},
	{"zomato", "Food & Dining"},
	{"swiggy", "Food & Dining"},
	{"restaurant", "Food & Dining"},
	{"cafe", "Food & Dining"},
	{"food", "Food & Dining"},
	{"recharge", "Mobile & Internet"},
	{"mobile", "Mobile & Internet"},
	{"broadband", "Mobile & Internet"},
	{"internet", "Mobile & Internet"},
	{"electricity", "Utilities"},
	{"water bill", "Utilities"},
	{"gas", "Utilities"},
	{"utility", "Utilities"},
	{"bill", "Utilities"},
	{"credit card", "Credit Card"},
	{"card payment", "Credit Card"},
	{"amazon", "Online Shopping"},
	{"flipkart", "Online Shopping"},
	{"myntra", "Online Shopping"},
	{"shopping", "Online Shopping"},
}

const debitFallbackCategory = "Other Expenses"

// Income buckets for credit transactions.
var creditCategoryRules = []categoryRule{
	{"salary", "Salary"},
	{"cash deposit", "Cash Deposits"},
	{"cash", "Cash Deposits"},
	{"cheque", "Cheque Deposits"},
	{"transfer", "Transfers"},
	{"neft", "Transfers"},
	{"imps", "Transfers"},
	{"upi", "Transfers"},
	{"freelance", "Freelance Income"},
	{"deposit", "Other Deposits"},
	{"refund", "Other Deposits"},
}

const creditFallbackCategory = "Other Income"

// Categorize returns the reporting bucket for one transaction. A category
// stored on the transaction itself takes precedence over keyword inference.
func Categorize(txn models.Transaction) string {
	if txn.Category != "" {
		return txn.Category
	}

	desc := strings.ToLower(txn.Description)
	rules, fallback := debitCategoryRules, debitFallbackCategory
	if txn.Direction == models.Credit {
		rules, fallback = creditCategoryRules, creditFallbackCategory
	}

	for _, r := range rules {
		if strings.Contains(desc, r.keyword) {
			return r.category
		}
	}
	return fallback
}
