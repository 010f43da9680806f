package response

import (
	"time"
)

// ReportRow is one projected line of the completed-payments report. Amount is
// pre-formatted to two decimal places.
type ReportRow struct {
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

// CompletedReport carries the projected rows plus the rendered fixed-layout
// document clients can print as-is.
type CompletedReport struct {
	Rows        []ReportRow `json:"rows"`
	Document    string      `json:"document"`
	GeneratedAt time.Time   `json:"generated_at"`
}
