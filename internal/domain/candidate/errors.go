package candidate

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAlreadyConverted  = errors.New("candidate has already been converted to employee")
	ErrEmailExists       = errors.New("candidate email already registered")
)
