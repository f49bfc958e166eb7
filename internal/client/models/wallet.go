package models

// Wallet is the credit balance shown on the home screen.
type Wallet struct {
	Balance         int `json:"balance"`
	WeeklyAllowance int `json:"weekly_allowance"`
}
