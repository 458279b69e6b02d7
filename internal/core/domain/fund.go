package domain

import "time"

// Fund is one relief fund that pledgers donate into and non-profits draw from.
type Fund struct {
	ID          int64   `json:"FundID"`
	Name        string  `json:"FundName"`
	Description string  `json:"FundDescription"`
	Accessible  bool    `json:"FundAccessible"`
	Balance     float64 `json:"FundBalance"`
}

// Pledge records a single donation by a pledger into a fund.
type Pledge struct {
	ID        int64     `json:"PledgeID"`
	PledgerID int64     `json:"PledgerID"`
	FundID    int64     `json:"FundID"`
	Amount    float64   `json:"Amount"`
	PledgedAt time.Time `json:"PledgedAt"`
}

// Withdrawal records a single draw by a non-profit from a fund.
type Withdrawal struct {
	ID          int64     `json:"WithdrawalID"`
	NonProfitID int64     `json:"NonProfitID"`
	FundID      int64     `json:"FundID"`
	Amount      float64   `json:"Amount"`
	WithdrawnAt time.Time `json:"WithdrawnAt"`
}
