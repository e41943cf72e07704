package usecase

// AuthError covers missing/invalid sessions and rejected logins. Handlers map
// it to 401.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func IsAuthError(err error) bool {
	_, ok := err.(*AuthError)
	return ok
}

// DomainError is a business-rule rejection (validation, unknown reference).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError wraps storage and infrastructure failures. Handlers log the
// detail and return a generic message to the client.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
