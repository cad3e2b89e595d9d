// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package asdata

import "fmt"

// ErrorKind represents categories of buffer errors for fast dispatch.
// Using an enum allows for efficient error checking on the hot path.
type ErrorKind uint8

const (
	// ErrKindOK indicates no error occurred
	ErrKindOK ErrorKind = iota
	// ErrKindEndOfStream indicates a read past the readable extent
	ErrKindEndOfStream
	// ErrKindEncoding indicates an invalid code point given to a text encoder
	ErrKindEncoding
	// ErrKindDecoding indicates a malformed byte sequence given to a text decoder
	ErrKindDecoding
	// ErrKindUnsupportedCharset indicates an unknown charset name
	ErrKindUnsupportedCharset
	// ErrKindOutOfRange indicates a value outside the encodable range
	ErrKindOutOfRange
)

// Error is a lightweight error type optimized for hot path performance.
// It stores error details without allocating until Error() is called.
type Error struct {
	kind    ErrorKind
	message string
	// For end-of-stream errors
	offset int
	need   int
	size   int
}

// Ok returns true if no error occurred
func (e Error) Ok() bool {
	return e.kind == ErrKindOK
}

// HasError returns true if an error occurred
func (e Error) HasError() bool {
	return e.kind != ErrKindOK
}

// Kind returns the error kind for fast dispatch
func (e Error) Kind() ErrorKind {
	return e.kind
}

// Error implements the error interface with lazy formatting
func (e Error) Error() string {
	switch e.kind {
	case ErrKindOK:
		return ""
	case ErrKindEndOfStream:
		if e.message != "" {
			return e.message
		}
		return fmt.Sprintf("end of stream: position=%d, need=%d, capacity=%d", e.offset, e.need, e.size)
	default:
		if e.message != "" {
			return e.message
		}
		return fmt.Sprintf("asdata error: kind=%d", e.kind)
	}
}

// EndOfStreamError creates an error for a read past the readable extent
func EndOfStreamError(position, need, capacity int) Error {
	return Error{
		kind:   ErrKindEndOfStream,
		offset: position,
		need:   need,
		size:   capacity,
	}
}

// EncodingError creates a text encoding error
func EncodingError(msg string) Error {
	return Error{
		kind:    ErrKindEncoding,
		message: msg,
	}
}

// EncodingErrorf creates a formatted text encoding error
func EncodingErrorf(format string, args ...any) Error {
	return Error{
		kind:    ErrKindEncoding,
		message: fmt.Sprintf(format, args...),
	}
}

// DecodingError creates a text decoding error
func DecodingError(msg string) Error {
	return Error{
		kind:    ErrKindDecoding,
		message: msg,
	}
}

// DecodingErrorf creates a formatted text decoding error
func DecodingErrorf(format string, args ...any) Error {
	return Error{
		kind:    ErrKindDecoding,
		message: fmt.Sprintf(format, args...),
	}
}

// UnsupportedCharsetError creates an error for an unknown charset name
func UnsupportedCharsetError(name string) Error {
	return Error{
		kind:    ErrKindUnsupportedCharset,
		message: fmt.Sprintf("unsupported charset: %q", name),
	}
}

// OutOfRangeError creates an error for a value outside the encodable range
func OutOfRangeError(format string, args ...any) Error {
	return Error{
		kind:    ErrKindOutOfRange,
		message: fmt.Sprintf(format, args...),
	}
}

// Pointer receiver methods for *Error (used for error accumulation)

// SetError sets the error if no error has occurred yet (first-error-wins)
func (e *Error) SetError(err error) {
	if e == nil || e.kind != ErrKindOK {
		return
	}
	if bufErr, ok := err.(Error); ok {
		*e = bufErr
	} else if err != nil {
		*e = Error{
			kind:    ErrKindDecoding,
			message: err.Error(),
		}
	}
}

// TakeError returns the error and clears it
func (e *Error) TakeError() error {
	if e == nil || e.kind == ErrKindOK {
		return nil
	}
	result := *e
	*e = Error{kind: ErrKindOK}
	return result
}

// CheckError returns the error if one occurred, nil otherwise
func (e *Error) CheckError() error {
	if e == nil || e.kind == ErrKindOK {
		return nil
	}
	return *e
}
