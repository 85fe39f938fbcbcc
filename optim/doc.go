// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
//
// # Training Loop Pattern
//
//	for batch := range batches {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    output, _ := model.Forward(batch.Input)
//	    loss, _ := criterion.Forward(output, batch.Targets)
//
//	    // 3. Backward pass
//	    autodiff.Backward(loss)
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim
