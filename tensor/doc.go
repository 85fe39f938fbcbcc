// Copyright 2025 Nabla ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense n-dimensional
// arrays in the Nabla ML framework.
//
// # Overview
//
// This package contains:
//   - Tensor: a dense float64 array with an explicit shape
//   - Shape: tensor dimensions with NumPy-style broadcasting rules
//   - Creation functions: Zeros, Ones, Full, FromSlice, Scalar, Randn
//   - ShapeError: the error type for all shape mismatches
//
// All shape validation happens at construction time: a Tensor that
// exists is well-formed, and downstream code never re-checks it.
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	y := tensor.Ones(tensor.Shape{2, 3})
//	z, err := tensor.Add(x, y) // element-wise, with broadcasting
package tensor
