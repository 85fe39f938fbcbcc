package nn

import (
	"github.com/nabla-ml/nabla/internal/autodiff"
	"github.com/nabla-ml/nabla/internal/autodiff/ops"
)

// ReLU is a rectified linear unit activation module: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU element-wise.
func (r *ReLU) Forward(input *autodiff.Node) (*autodiff.Node, error) {
	return ops.ReLU(input)
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// LogSoftmax is a log-softmax activation module, applied per row of a
// 2-D input [batch, classes]. Combined with NLLLoss it forms the
// standard classification head.
type LogSoftmax struct{}

// NewLogSoftmax creates a new LogSoftmax activation module.
func NewLogSoftmax() *LogSoftmax {
	return &LogSoftmax{}
}

// Forward applies a numerically stable log-softmax per row.
func (l *LogSoftmax) Forward(input *autodiff.Node) (*autodiff.Node, error) {
	return ops.LogSoftmax(input)
}

// Parameters returns nil (LogSoftmax has no trainable parameters).
func (l *LogSoftmax) Parameters() []*Parameter {
	return nil
}
