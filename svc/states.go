package svc

// internal service states
const (
	StateREADY = iota
	StateRUNNING
	StateSTOPPED
)
