package domain

// Quote is the priced answer returned to the caller.
type Quote struct {
	Sell    float64
	Buy     float64
	Date    string
	Account string
}
