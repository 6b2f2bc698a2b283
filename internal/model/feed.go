package model

// Balance is the account summary sent alongside the transactions. Total is
// computed by the server and is never recomputed here.
type Balance struct {
	Income  float64 `json:"income"`
	Outcome float64 `json:"outcome"`
	Total   float64 `json:"total"`
}

// Feed is the body of GET /transactions. Transactions keep the order the
// server sent them in.
type Feed struct {
	Transactions []Transaction `json:"transactions"`
	Balance      Balance       `json:"balance"`
}
