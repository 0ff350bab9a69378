package expense

import "time"

const DateLayout = "2006-01-02"

// Record is an expense as the remote service shapes it. Records created
// locally (backend unreachable) carry a millisecond-timestamp ID and never
// reconcile with the server.
type Record struct {
	ID               int64    `json:"id,omitempty"`
	Amount           float64  `json:"amount"`
	Category         string   `json:"category"`
	Description      *string  `json:"description,omitempty"`
	Date             string   `json:"date"`
	PaymentMethod    string   `json:"payment_method"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
	OriginalAmount   *float64 `json:"original_amount,omitempty"`
	OriginalCurrency string   `json:"original_currency,omitempty"`
	ConvertedAmount  *float64 `json:"converted_amount,omitempty"`
	TargetCurrency   string   `json:"target_currency,omitempty"`
}

// DisplayAmount is the value every aggregation must use: the converted
// amount once a conversion has been applied, the original amount otherwise.
func (r *Record) DisplayAmount() float64 {
	if r.ConvertedAmount != nil {
		return *r.ConvertedAmount
	}
	return r.Amount
}

// DisplayCurrency returns the currency the display amount is denominated in,
// falling back to the session's selected currency for unconverted records.
func (r *Record) DisplayCurrency(selected string) string {
	if r.ConvertedAmount != nil && r.TargetCurrency != "" {
		return r.TargetCurrency
	}
	return selected
}

// SpendDate parses the record's calendar date, tolerating a time component.
func (r *Record) SpendDate() (time.Time, error) {
	if len(r.Date) > len(DateLayout) {
		return time.Parse(DateLayout, r.Date[:len(DateLayout)])
	}
	return time.Parse(DateLayout, r.Date)
}

var Categories = []string{
	"Food",
	"Transport",
	"Utilities",
	"Shopping",
	"Entertainment",
	"Health",
	"Education",
	"Other",
}

var PaymentMethods = []string{
	"Cash",
	"Credit Card",
	"Debit Card",
	"Bank Transfer",
	"Mobile Wallet",
}

func ValidCategory(name string) bool {
	return contains(Categories, name)
}

func ValidPaymentMethod(name string) bool {
	return contains(PaymentMethods, name)
}

func contains(set []string, val string) bool {
	for _, s := range set {
		if s == val {
			return true
		}
	}
	return false
}
