package holiday

// Holiday is one public-holiday calendar entry. Date is a YYYY-MM-DD
// Brunei local date.
type Holiday struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}
