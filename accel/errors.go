// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package accel

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes simulator errors.
type ErrorKind int

const (
	// KindInvalidConfig marks a configuration or input that violates the
	// model's contract (non-positive dimensions, mismatched shapes, ...).
	KindInvalidConfig ErrorKind = iota
	// KindResource marks a run that cannot be provisioned: matrices too large
	// to allocate, or cycle counts that would overflow.
	KindResource
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrResource      = errors.New("resource exhausted")
)

func (k ErrorKind) sentinel() error {
	if k == KindResource {
		return ErrResource
	}
	return ErrInvalidConfig
}

// String returns the error kind as a string.
func (k ErrorKind) String() string {
	return k.sentinel().Error()
}

// Error is a structured simulator error.
type Error struct {
	Kind    ErrorKind
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// Unwrap allows error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func invalidConfig(op, format string, args ...any) error {
	return &Error{Kind: KindInvalidConfig, Op: op, Message: fmt.Sprintf(format, args...)}
}

func resourceError(op, format string, args ...any) error {
	return &Error{Kind: KindResource, Op: op, Message: fmt.Sprintf(format, args...)}
}
