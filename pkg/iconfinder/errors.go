package iconfinder

import "fmt"

// DecodeError is returned when a response body is not a JSON object.
type DecodeError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "iconfinder: decode error"
	}
	return fmt.Sprintf("iconfinder: decode response (%d) %s: %v", e.StatusCode, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
