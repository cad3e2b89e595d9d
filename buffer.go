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

import (
	"io"
	"math"
)

// growthIncrement is the extra capacity allocated beyond what a write
// strictly needs, so repeated small writes reallocate O(1) times on average.
const growthIncrement = 1024

// ByteBuffer is a random-access, growable byte buffer with a single
// read/write cursor and typed, endian-aware codecs. It is the in-memory
// equivalent of a legacy binary stream: callers decode or encode structured
// blobs one primitive field at a time, and every operation advances the
// cursor by exactly the bytes it consumed or produced.
//
// A ByteBuffer is not safe for concurrent use. Exactly one logical owner
// must mutate a given buffer at a time; there is no internal locking, which
// keeps the hot path allocation- and branch-free.
type ByteBuffer struct {
	io.Writer
	io.Reader
	data     []byte // backing storage; the addressable region starts at offset
	offset   int
	capacity int // addressable bytes from offset
	length   int // high-water mark of writes and position assignments
	position int
	order    ByteOrder
	shared   bool // storage is aliased by (or borrowed from) another owner

	// utf8Fatal switches the UTF-8 decoder from U+FFFD substitution to
	// hard failure. Internal knob; encoding is always strict.
	utf8Fatal bool
}

// NewByteBuffer returns a buffer wrapping data, positioned at 0 with the
// whole slice readable. Pass nil for an empty buffer. Writes within the
// wrapped region mutate the caller's slice; writes past its end reallocate,
// detaching the buffer from it.
func NewByteBuffer(data []byte) *ByteBuffer {
	return &ByteBuffer{
		data:     data,
		capacity: len(data),
		length:   len(data),
		shared:   data != nil,
	}
}

// NewByteBufferRegion returns a buffer addressing length bytes of data
// starting at offset. The region is shared until a write forces growth.
func NewByteBufferRegion(data []byte, offset, length int) *ByteBuffer {
	if offset < 0 || length < 0 || offset+length > len(data) {
		panic("asdata: region out of range")
	}
	return &ByteBuffer{
		data:     data,
		offset:   offset,
		capacity: length,
		length:   length,
		shared:   true,
	}
}

// view returns a child buffer aliasing n bytes of b's storage starting at
// the current position. The child borrows the storage for its own lifetime;
// it never owns it, and mutations through either buffer are visible in both.
func (b *ByteBuffer) view(n int) *ByteBuffer {
	return &ByteBuffer{
		data:     b.data,
		offset:   b.offset + b.position,
		capacity: n,
		length:   n,
		order:    b.order,
		shared:   true,
	}
}

// validateRead reports whether n bytes can be read at the current position.
// On failure it records an end-of-stream error and leaves the cursor where
// it was, so the buffer stays usable. Once an error is recorded, further
// reads through the same *Error are no-ops (first error wins).
func (b *ByteBuffer) validateRead(n int, err *Error) bool {
	if err.HasError() {
		return false
	}
	if b.capacity == 0 || b.position+n > b.capacity {
		*err = EndOfStreamError(b.position, n, b.capacity)
		return false
	}
	return true
}

// ensureWritable raises the logical length to end and grows storage when
// end exceeds capacity. Growth reallocates to end+growthIncrement bytes,
// copies the old region to offset 0 and adopts the new storage; bytes past
// the old region read as zero. Views created before a growth keep aliasing
// the old storage.
func (b *ByteBuffer) ensureWritable(end int) {
	if end > b.length {
		b.length = end
	}
	if end > b.capacity {
		grown := make([]byte, end+growthIncrement)
		copy(grown, b.data[b.offset:b.offset+b.capacity])
		b.data = grown
		b.offset = 0
		b.capacity = len(grown)
		b.shared = false
	}
}

// Position returns the current cursor.
func (b *ByteBuffer) Position() int {
	return b.position
}

// SetPosition moves the cursor. Moving forward is validated like a read:
// the target must lie within the readable extent, so a forward jump on an
// empty or exhausted buffer fails with end-of-stream. The logical length is
// raised when the new position exceeds it.
func (b *ByteBuffer) SetPosition(p int) error {
	if p < 0 {
		return OutOfRangeError("negative position: %d", p)
	}
	if p > b.position {
		if b.capacity == 0 || p > b.capacity {
			return EndOfStreamError(b.position, p-b.position, b.capacity)
		}
	}
	if p > b.length {
		b.length = p
	}
	b.position = p
	return nil
}

// Length returns the logical length: the high-water mark of bytes ever
// written or addressed, independent of allocated capacity.
func (b *ByteBuffer) Length() int {
	return b.length
}

// SetLength resizes the logical length, growing storage when needed.
// Shrinking clamps the cursor back to the new length.
func (b *ByteBuffer) SetLength(n int) error {
	if n < 0 {
		return OutOfRangeError("negative length: %d", n)
	}
	b.ensureWritable(n)
	b.length = n
	if b.position > n {
		b.position = n
	}
	return nil
}

// Capacity returns the total addressable bytes of the current storage.
func (b *ByteBuffer) Capacity() int {
	return b.capacity
}

// BytesAvailable returns the bytes between the cursor and capacity.
func (b *ByteBuffer) BytesAvailable() int {
	return b.capacity - b.position
}

// Order returns the byte order applied to multi-byte primitives.
func (b *ByteBuffer) Order() ByteOrder {
	return b.order
}

// SetOrder switches the byte order for subsequent operations.
func (b *ByteBuffer) SetOrder(order ByteOrder) {
	b.order = order
}

// Clear rewinds the cursor to 0. Storage and logical length are untouched.
func (b *ByteBuffer) Clear() {
	b.position = 0
}

// Skip advances the cursor over n bytes under read rules.
func (b *ByteBuffer) Skip(n int, err *Error) {
	if !b.validateRead(n, err) {
		return
	}
	b.position += n
}

// Bytes returns the written extent [0, length) of the buffer. The slice
// aliases the buffer's storage.
func (b *ByteBuffer) Bytes() []byte {
	return b.data[b.offset : b.offset+b.length]
}

// ============================================================================
// Primitive reads
// ============================================================================

// ReadBool reads one byte; any nonzero value is true.
func (b *ByteBuffer) ReadBool(err *Error) bool {
	if !b.validateRead(SizeOfBoolean, err) {
		return false
	}
	v := b.data[b.offset+b.position]
	b.position++
	return v != 0
}

// ReadInt8 reads a signed byte.
func (b *ByteBuffer) ReadInt8(err *Error) int8 {
	return int8(b.ReadUint8(err))
}

// ReadUint8 reads an unsigned byte.
func (b *ByteBuffer) ReadUint8(err *Error) uint8 {
	if !b.validateRead(SizeOfUint8, err) {
		return 0
	}
	v := b.data[b.offset+b.position]
	b.position++
	return v
}

// ReadInt16 reads a signed 16-bit integer in the current byte order.
func (b *ByteBuffer) ReadInt16(err *Error) int16 {
	return int16(b.ReadUint16(err))
}

// ReadUint16 reads an unsigned 16-bit integer in the current byte order.
func (b *ByteBuffer) ReadUint16(err *Error) uint16 {
	if !b.validateRead(SizeOfUint16, err) {
		return 0
	}
	v := b.order.std().Uint16(b.data[b.offset+b.position:])
	b.position += SizeOfUint16
	return v
}

// ReadInt32 reads a signed 32-bit integer in the current byte order.
func (b *ByteBuffer) ReadInt32(err *Error) int32 {
	return int32(b.ReadUint32(err))
}

// ReadUint32 reads an unsigned 32-bit integer in the current byte order.
func (b *ByteBuffer) ReadUint32(err *Error) uint32 {
	if !b.validateRead(SizeOfUint32, err) {
		return 0
	}
	v := b.order.std().Uint32(b.data[b.offset+b.position:])
	b.position += SizeOfUint32
	return v
}

// ReadInt64 reads a 64-bit signed field as two sequential 32-bit words,
// low word first, each in the current byte order. This is not a true 64-bit
// decode; see Int64Pair.
func (b *ByteBuffer) ReadInt64(err *Error) Int64Pair {
	if !b.validateRead(SizeOfInt64, err) {
		return Int64Pair{}
	}
	std := b.order.std()
	low := std.Uint32(b.data[b.offset+b.position:])
	high := std.Uint32(b.data[b.offset+b.position+SizeOfUint32:])
	b.position += SizeOfInt64
	return Int64Pair{Low: low, High: int32(high)}
}

// ReadUint64 reads a 64-bit unsigned field as two sequential 32-bit words,
// low word first, each in the current byte order.
func (b *ByteBuffer) ReadUint64(err *Error) UInt64Pair {
	if !b.validateRead(SizeOfUint64, err) {
		return UInt64Pair{}
	}
	std := b.order.std()
	low := std.Uint32(b.data[b.offset+b.position:])
	high := std.Uint32(b.data[b.offset+b.position+SizeOfUint32:])
	b.position += SizeOfUint64
	return UInt64Pair{Low: low, High: high}
}

// ReadFloat32 reads an IEEE-754 single in the current byte order.
func (b *ByteBuffer) ReadFloat32(err *Error) float32 {
	return math.Float32frombits(b.ReadUint32(err))
}

// ReadFloat64 reads an IEEE-754 double in the current byte order.
func (b *ByteBuffer) ReadFloat64(err *Error) float64 {
	if !b.validateRead(SizeOfFloat64, err) {
		return 0
	}
	v := b.order.std().Uint64(b.data[b.offset+b.position:])
	b.position += SizeOfFloat64
	return math.Float64frombits(v)
}

// ============================================================================
// Primitive writes
// ============================================================================

// WriteBool writes 1 for true, 0 for false.
func (b *ByteBuffer) WriteBool(v bool) {
	if v {
		b.WriteUint8(1)
	} else {
		b.WriteUint8(0)
	}
}

// WriteInt8 writes a signed byte.
func (b *ByteBuffer) WriteInt8(v int8) {
	b.WriteUint8(uint8(v))
}

// WriteUint8 writes an unsigned byte.
func (b *ByteBuffer) WriteUint8(v uint8) {
	end := b.position + SizeOfUint8
	b.ensureWritable(end)
	b.data[b.offset+b.position] = v
	b.position = end
}

// WriteInt16 writes a signed 16-bit integer in the current byte order.
func (b *ByteBuffer) WriteInt16(v int16) {
	b.WriteUint16(uint16(v))
}

// WriteUint16 writes an unsigned 16-bit integer in the current byte order.
func (b *ByteBuffer) WriteUint16(v uint16) {
	end := b.position + SizeOfUint16
	b.ensureWritable(end)
	b.order.std().PutUint16(b.data[b.offset+b.position:], v)
	b.position = end
}

// WriteInt32 writes a signed 32-bit integer in the current byte order.
func (b *ByteBuffer) WriteInt32(v int32) {
	b.WriteUint32(uint32(v))
}

// WriteUint32 writes an unsigned 32-bit integer in the current byte order.
func (b *ByteBuffer) WriteUint32(v uint32) {
	end := b.position + SizeOfUint32
	b.ensureWritable(end)
	b.order.std().PutUint32(b.data[b.offset+b.position:], v)
	b.position = end
}

// WriteInt64 writes the pair as two 32-bit words, low word first, each in
// the current byte order.
func (b *ByteBuffer) WriteInt64(v Int64Pair) {
	end := b.position + SizeOfInt64
	b.ensureWritable(end)
	std := b.order.std()
	std.PutUint32(b.data[b.offset+b.position:], v.Low)
	std.PutUint32(b.data[b.offset+b.position+SizeOfUint32:], uint32(v.High))
	b.position = end
}

// WriteUint64 writes the pair as two 32-bit words, low word first, each in
// the current byte order.
func (b *ByteBuffer) WriteUint64(v UInt64Pair) {
	end := b.position + SizeOfUint64
	b.ensureWritable(end)
	std := b.order.std()
	std.PutUint32(b.data[b.offset+b.position:], v.Low)
	std.PutUint32(b.data[b.offset+b.position+SizeOfUint32:], v.High)
	b.position = end
}

// WriteFloat32 writes an IEEE-754 single in the current byte order.
func (b *ByteBuffer) WriteFloat32(v float32) {
	b.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes an IEEE-754 double in the current byte order.
func (b *ByteBuffer) WriteFloat64(v float64) {
	end := b.position + SizeOfFloat64
	b.ensureWritable(end)
	b.order.std().PutUint64(b.data[b.offset+b.position:], math.Float64bits(v))
	b.position = end
}

// ============================================================================
// io.Reader / io.Writer
// ============================================================================

// Write appends p at the cursor, growing storage as needed. Implements
// io.Writer and never fails.
func (b *ByteBuffer) Write(p []byte) (int, error) {
	b.WriteBytes(p)
	return len(p), nil
}

// Read copies up to len(p) bytes of the written extent from the cursor
// into p. Implements io.Reader; an exhausted buffer returns io.EOF.
func (b *ByteBuffer) Read(p []byte) (int, error) {
	if b.position >= b.length {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset+b.position:b.offset+b.length])
	b.position += n
	return n, nil
}
