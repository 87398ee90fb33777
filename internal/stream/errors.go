package stream

import "fmt"

// OutputWriteError reports a failure writing highlighted output, e.g. a
// closed pipe.
type OutputWriteError struct {
	Line int
	Err  error
}

// Error implements the error interface
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write output line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying write error
func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

// InputReadError reports a failure reading the input stream.
type InputReadError struct {
	Line int
	Err  error
}

// Error implements the error interface
func (e *InputReadError) Error() string {
	return fmt.Sprintf("failed to read input line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying read error
func (e *InputReadError) Unwrap() error {
	return e.Err
}
