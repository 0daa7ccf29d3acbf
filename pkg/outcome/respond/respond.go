package respond

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/outcome-kit/outcome/pkg/outcome"
)

// Response is the wire shape a Result translates to:
//
//	{ "success": bool, "message": string, "data": T | null }
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// Status maps a failure category to its fixed transport status. The table
// is not configurable; unknown categories fall through to 500.
func Status(c outcome.Category) int {
	switch c {
	case outcome.CategoryNotFound:
		return http.StatusNotFound
	case outcome.CategoryValidation:
		return http.StatusBadRequest
	case outcome.CategoryUnauthorized:
		return http.StatusUnauthorized
	case outcome.CategoryForbidden:
		return http.StatusForbidden
	case outcome.CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// StatusOf resolves the status code for a Result: 200 for a success, the
// category's status for a failure.
func StatusOf[T any](r outcome.Reader[T]) int {
	if r.IsSuccess() {
		return http.StatusOK
	}
	return Status(r.Err().Category())
}

// From translates a Result into its wire shape and status code. Failures
// carry a null data field.
func From[T any](r outcome.Reader[T]) (Response[T], int) {
	if !r.IsSuccess() {
		return Response[T]{
			Success: false,
			Message: r.Message(),
		}, Status(r.Err().Category())
	}

	data := r.Data()
	return Response[T]{
		Success: true,
		Message: r.Message(),
		Data:    &data,
	}, http.StatusOK
}

// Write serializes the Result's wire shape onto w with the mapped status
// code and an application/json content type.
func Write[T any](w http.ResponseWriter, r outcome.Reader[T]) error {
	resp, code := From(r)

	body, err := jsoniter.ConfigFastest.Marshal(resp)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(body)
	return err
}
