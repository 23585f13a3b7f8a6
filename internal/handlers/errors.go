package handlers

import (
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

var badRequestOnce sync.Once

// UseBadRequestForValidation makes huma report request validation failures,
// such as a body field of the wrong type, as 400 instead of 422. The mapping
// is process-wide and installed once.
func UseBadRequestForValidation() {
	badRequestOnce.Do(func() {
		next := huma.NewError
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}

			return next(status, msg, errs...)
		}
	})
}
