package parser

import "github.com/finlens/statement-insights/internal/models"

// movement is the resolved magnitude and balance of one line. When the
// layout names its own withdrawal/deposit columns the direction is explicit;
// otherwise it stays empty and the keyword classifier decides.
type movement struct {
	amount    float64
	balance   float64
	direction models.Direction // empty until classified for the 2-token layout
}

// resolveAmounts disambiguates the two statement layouts by token count.
//
// Two tokens mean [amount, balance]: a single amount column whose direction
// must be inferred from the narration. Three or more mean
// [withdrawal, deposit, balance]: direction is explicit in whichever of the
// first two is positive. Tokens past the third are ignored; some statements
// append a reference number formatted like a decimal and we have no reliable
// way to tell it apart.
//
// Returns false when the line resolves to no movement at all (both
// withdrawal and deposit zero).
func resolveAmounts(amounts []float64) (movement, bool) {
	switch {
	case len(amounts) == 2:
		return movement{amount: amounts[0], balance: amounts[1]}, true
	case len(amounts) >= 3:
		withdrawal, deposit, balance := amounts[0], amounts[1], amounts[2]
		if withdrawal > 0 {
			return movement{amount: withdrawal, balance: balance, direction: models.Debit}, true
		}
		if deposit > 0 {
			return movement{amount: deposit, balance: balance, direction: models.Credit}, true
		}
		return movement{}, false
	default:
		return movement{}, false
	}
}
