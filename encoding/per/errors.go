// Copyright 2019-2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package per

import (
	"github.com/pkg/errors"
)

var (
	// ErrShortBuffer is returned when an encoding ends before a value is
	// complete.
	ErrShortBuffer = errors.New("per: buffer exhausted")

	// ErrOutOfRange is returned when a value, a length or a choice index
	// violates its constraint.
	ErrOutOfRange = errors.New("per: value out of range")

	// ErrUnsupported is returned for encodings this package does not
	// implement (fragmented lengths of 16K and more).
	ErrUnsupported = errors.New("per: unsupported encoding")

	// ErrMismatch is returned by the encoder when an item tree does not
	// have the shape of its type descriptor.
	ErrMismatch = errors.New("per: item does not match type")
)
