package billing

import "time"

// DueDate adds the payment-terms offset to the invoice date in plain
// calendar days: no business-day skipping, no timezone conversion. Inputs
// are date-only values (UTC midnight) so local-time midnight boundaries
// cannot shift the result by a day. Month and year boundaries roll over
// naturally (Jan 25 + 14 days = Feb 8).
func DueDate(invoiceDate time.Time, paymentTermsDays int) time.Time {
	return invoiceDate.AddDate(0, 0, paymentTermsDays)
}
