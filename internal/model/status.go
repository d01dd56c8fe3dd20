package model

// ResultStatus discriminates the outcome of every operation. Operations
// never fail with a raised error for domain conditions; they return one
// of these alongside a full payload.
type ResultStatus string

const (
	StatusSuccess  ResultStatus = "success"
	StatusError    ResultStatus = "error"
	StatusNotFound ResultStatus = "not_found"
	StatusSent     ResultStatus = "sent"
	StatusDemo     ResultStatus = "demo"
)
