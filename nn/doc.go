// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the Nabla ML
// framework.
//
// # Overview
//
// This package contains:
//   - Module: the common interface for all layers and models
//   - Linear: a fully connected layer with Xavier initialization
//   - ReLU, LogSoftmax: activation modules
//   - Sequential: module composition
//   - NLLLoss, CrossEntropyLoss: classification losses
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	    nn.NewLogSoftmax(),
//	)
//
//	output, err := model.Forward(input)
package nn
