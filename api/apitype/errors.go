package apitype

import "fmt"

type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("image file not found: %s", e.Path)
}

type DecodeError struct {
	Path  string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode image '%s': %s", e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

type DuplicateError struct {
	Path string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("image already uploaded: %s", e.Path)
}

// RenderError stays within a single list row.
type RenderError struct {
	Path  string
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("could not render '%s': %s", e.Path, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
