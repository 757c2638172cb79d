package models

// PriceRecord represents one observed vegetable price in a district market.
// Date is stored as the client supplied it; admin listings sort on it as a
// string, so ISO-style dates are what make the ordering chronological.
type PriceRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	District  string  `json:"district"`
	Market    string  `json:"market"`
	HighPrice float64 `json:"highPrice"`
	LowPrice  float64 `json:"lowPrice"`
	Date      string  `json:"date"`
}

// DropdownData bundles the taxonomy used to populate frontend selectors.
type DropdownData struct {
	Vegetables      []string            `json:"vegetables"`
	DistrictMarkets map[string][]string `json:"districtMarkets"`
}
