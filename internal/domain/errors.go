package domain

import (
	"errors"
	"net/http"
)

// Domain errors (для бизнес-логики)
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrActivityFull     = errors.New("activity is full")

	// Validation errors
	ErrEmptyEmail = errors.New("email is required")

	// Catalog errors
	ErrMalformedCatalog = errors.New("malformed activity catalog")
)

// HTTPError описывает ответ клиенту в формате {"detail": "..."}
type HTTPError struct {
	Status int
	Detail string
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrActivityNotFound: {Status: http.StatusNotFound, Detail: "Activity not found"},
	ErrAlreadySignedUp:  {Status: http.StatusBadRequest, Detail: "Student is already signed up"},
	ErrActivityFull:     {Status: http.StatusBadRequest, Detail: "Activity is full"},
	ErrEmptyEmail:       {Status: http.StatusBadRequest, Detail: "Email is required"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
