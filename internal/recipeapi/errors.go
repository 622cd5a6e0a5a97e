package recipeapi

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when the remote answers with a non-2xx status
type StatusError struct {
	Op     string
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s %s failed with status %d", e.Op, e.Method, e.URL, e.Code)
}

// IsNotFound reports whether err is a 404 from the remote
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
