package tensor

import (
	"fmt"
	"strings"
)

// ShapeError reports operand shapes that are incompatible with an
// operation's numeric contract. It is raised at construction time,
// never deferred to the backward pass.
type ShapeError struct {
	Op     string  // Operation that rejected the operands
	Shapes []Shape // Offending operand shapes, in argument order
	Reason string  // Human-readable detail
}

func (e *ShapeError) Error() string {
	shapes := make([]string, len(e.Shapes))
	for i, s := range e.Shapes {
		shapes[i] = fmt.Sprintf("%v", []int(s))
	}
	msg := fmt.Sprintf("%s: incompatible shapes %s", e.Op, strings.Join(shapes, ", "))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}
