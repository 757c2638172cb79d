package models

// Account is a registered admin identity scoped to one district and market.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	District     string `json:"district"`
	Market       string `json:"market"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
