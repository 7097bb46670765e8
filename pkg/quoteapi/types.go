package quoteapi

import "encoding/json"

// Quote is the quote endpoint payload. Every numeric field may be null.
type Quote struct {
	Symbol        string       `json:"symbol"`
	CompanyName   string       `json:"companyName,omitempty"`
	Currency      string       `json:"currency,omitempty"`
	LatestPrice   *json.Number `json:"latestPrice"`
	LatestTime    string       `json:"latestTime,omitempty"`
	Change        *json.Number `json:"change"`
	ChangePercent *json.Number `json:"changePercent"` // fraction, 0.025 is 2.5%
	Open          *json.Number `json:"open"`
	Low           *json.Number `json:"low"`
	High          *json.Number `json:"high"`
	Close         *json.Number `json:"close"`
	LatestVolume  *json.Number `json:"latestVolume"`
}

// HasRange reports whether any day range field is present.
func (q *Quote) HasRange() bool {
	return q.Open != nil || q.Low != nil || q.High != nil || q.Close != nil || q.LatestVolume != nil
}
