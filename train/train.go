// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the training loop of the Nabla ML framework.
//
// # Basic Usage
//
//	trainer := train.NewTrainer(model, nn.NewCrossEntropyLoss(), optimizer)
//
//	for result := range trainer.Train(source, 10) {
//	    if result.Err != nil {
//	        log.Fatalf("epoch %d: %v", result.Epoch, result.Err)
//	    }
//	    log.Printf("epoch %d: loss %.4f", result.Epoch, result.AvgLoss)
//	}
package train

import (
	"github.com/nabla-ml/nabla/internal/nn"
	"github.com/nabla-ml/nabla/internal/optim"
	"github.com/nabla-ml/nabla/internal/train"
)

// Trainer drives forward/backward/update cycles over batches.
type Trainer = train.Trainer

// EpochResult is one epoch's outcome in a Train sequence.
type EpochResult = train.EpochResult

// Batch pairs a 2-D input tensor with one class target per row.
type Batch = train.Batch

// BatchSource produces an ordered, finite, restartable batch sequence.
type BatchSource = train.BatchSource

// SliceSource is an in-memory BatchSource over a fixed slice of batches.
type SliceSource = train.SliceSource

// InvalidBatchError reports a batch that violates the training contract.
type InvalidBatchError = train.InvalidBatchError

// NumericDivergenceError reports a non-finite loss or gradient.
type NumericDivergenceError = train.NumericDivergenceError

// NewTrainer creates a trainer for the given model, loss and optimizer.
// The optimizer must have been constructed over the model's parameters.
func NewTrainer(model nn.Module, loss nn.Loss, opt optim.Optimizer) *Trainer {
	return train.NewTrainer(model, loss, opt)
}
