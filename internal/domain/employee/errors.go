package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeNotActive  = errors.New("employee is not active")
	ErrEmailExists        = errors.New("email already registered")
	ErrCandidateConverted = errors.New("candidate already converted to an employee")
	ErrNoEmployeesUpdated = errors.New("no employees matched the given ids")
)
