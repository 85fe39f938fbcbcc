package autodiff

// GraphError reports a backward pass invoked on an unusable output
// Node: either a true leaf with no recorded operation history, or a
// Node holding a non-scalar value.
type GraphError struct {
	Reason string
	Err    error
}

func (e *GraphError) Error() string {
	msg := "graph: " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GraphError) Unwrap() error {
	return e.Err
}
