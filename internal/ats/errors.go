package ats

// InvalidInputError indicates the formatter was handed no document to work
// on. It is the only hard failure in this package: every malformed date,
// header, or bullet inside a document degrades to a pass-through policy
// instead of an error.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}
