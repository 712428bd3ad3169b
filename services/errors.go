// services/errors.go
package services

// ErrorKind classifies a flow failure so the HTTP layer can pick a status
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindConflict
	KindNotFound
	KindUnverified
	KindInvalidOTP
	KindDependency
)

// FlowError is a failure reported by a service operation. Message is safe
// to return to the caller; Err keeps the underlying cause for logs.
type FlowError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *FlowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

func validationError(message string) *FlowError {
	return &FlowError{Kind: KindValidation, Message: message}
}

func conflictError(message string) *FlowError {
	return &FlowError{Kind: KindConflict, Message: message}
}

func notFoundError(message string) *FlowError {
	return &FlowError{Kind: KindNotFound, Message: message}
}

func unverifiedError(message string) *FlowError {
	return &FlowError{Kind: KindUnverified, Message: message}
}

func invalidOTPError(message string) *FlowError {
	return &FlowError{Kind: KindInvalidOTP, Message: message}
}

func dependencyError(message string, err error) *FlowError {
	return &FlowError{Kind: KindDependency, Message: message, Err: err}
}
