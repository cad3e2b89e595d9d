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
	"math"
	"unsafe"
)

// AccessMode selects how bulk typed reads hand bytes back.
type AccessMode uint8

const (
	// ModeCopy allocates a fresh slice and decodes each element with the
	// buffer's byte order.
	ModeCopy AccessMode = iota
	// ModeView aliases the buffer's storage with no decoding and no
	// endianness conversion. The result is only meaningful when the
	// stream's byte order matches the host's natural order; the buffer
	// cannot check that for the caller. Mutations of the source storage
	// remain visible through the view, and vice versa.
	ModeView
)

// ============================================================================
// Raw bytes
// ============================================================================

// ReadBytes copies n bytes at the cursor into a fresh slice.
func (b *ByteBuffer) ReadBytes(n int, err *Error) []byte {
	if !b.validateRead(n, err) {
		return nil
	}
	out := make([]byte, n)
	copy(out, b.data[b.offset+b.position:])
	b.position += n
	return out
}

// ReadBytesView returns a child buffer aliasing the next n bytes of
// storage, scoped to exactly that range. The child borrows the storage for
// its own lifetime; discarding the parent does not invalidate it, but a
// later growth of the parent detaches the two.
func (b *ByteBuffer) ReadBytesView(n int, err *Error) *ByteBuffer {
	if !b.validateRead(n, err) {
		return nil
	}
	child := b.view(n)
	b.position += n
	return child
}

// WriteBytes copies p into the buffer at the cursor, growing as needed.
func (b *ByteBuffer) WriteBytes(p []byte) {
	end := b.position + len(p)
	b.ensureWritable(end)
	copy(b.data[b.offset+b.position:], p)
	b.position = end
}

// ReadBuffer reads length bytes (0 means all remaining) into dst starting
// at dst offset dstOff, growing dst as needed. dst's cursor is untouched.
func (b *ByteBuffer) ReadBuffer(dst *ByteBuffer, dstOff, length int, err *Error) {
	if length == 0 {
		length = b.BytesAvailable()
	}
	if !b.validateRead(length, err) {
		return
	}
	dst.ensureWritable(dstOff + length)
	copy(dst.data[dst.offset+dstOff:], b.data[b.offset+b.position:b.offset+b.position+length])
	b.position += length
}

// WriteBuffer writes length bytes (0 means the rest) of src's written
// extent starting at srcOff. src's cursor is untouched.
func (b *ByteBuffer) WriteBuffer(src *ByteBuffer, srcOff, length int) error {
	if length == 0 {
		length = src.length - srcOff
	}
	if srcOff < 0 || length < 0 || srcOff+length > src.length {
		return OutOfRangeError("source range [%d, %d) outside length %d", srcOff, srcOff+length, src.length)
	}
	b.WriteBytes(src.data[src.offset+srcOff : src.offset+srcOff+length])
	return nil
}

// viewBase returns a pointer to the byte at the cursor for aliasing reads.
func (b *ByteBuffer) viewBase() unsafe.Pointer {
	return unsafe.Pointer(&b.data[b.offset+b.position])
}

// ============================================================================
// Typed bulk reads
// ============================================================================

// ReadInt8Slice reads n signed bytes.
func (b *ByteBuffer) ReadInt8Slice(n int, mode AccessMode, err *Error) []int8 {
	if n == 0 || !b.validateRead(n, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*int8)(b.viewBase()), n)
		b.position += n
		return out
	}
	out := make([]int8, n)
	p := b.offset + b.position
	for i := range out {
		out[i] = int8(b.data[p+i])
	}
	b.position += n
	return out
}

// ReadUint8Slice reads n unsigned bytes.
func (b *ByteBuffer) ReadUint8Slice(n int, mode AccessMode, err *Error) []uint8 {
	if n == 0 || !b.validateRead(n, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*uint8)(b.viewBase()), n)
		b.position += n
		return out
	}
	return b.ReadBytes(n, err)
}

// ReadInt16Slice reads n 16-bit signed integers.
func (b *ByteBuffer) ReadInt16Slice(n int, mode AccessMode, err *Error) []int16 {
	if n == 0 || !b.validateRead(n*SizeOfInt16, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*int16)(b.viewBase()), n)
		b.position += n * SizeOfInt16
		return out
	}
	std := b.order.std()
	out := make([]int16, n)
	p := b.offset + b.position
	for i := range out {
		out[i] = int16(std.Uint16(b.data[p+i*SizeOfInt16:]))
	}
	b.position += n * SizeOfInt16
	return out
}

// ReadUint16Slice reads n 16-bit unsigned integers.
func (b *ByteBuffer) ReadUint16Slice(n int, mode AccessMode, err *Error) []uint16 {
	if n == 0 || !b.validateRead(n*SizeOfUint16, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*uint16)(b.viewBase()), n)
		b.position += n * SizeOfUint16
		return out
	}
	std := b.order.std()
	out := make([]uint16, n)
	p := b.offset + b.position
	for i := range out {
		out[i] = std.Uint16(b.data[p+i*SizeOfUint16:])
	}
	b.position += n * SizeOfUint16
	return out
}

// ReadInt32Slice reads n 32-bit signed integers.
func (b *ByteBuffer) ReadInt32Slice(n int, mode AccessMode, err *Error) []int32 {
	if n == 0 || !b.validateRead(n*SizeOfInt32, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*int32)(b.viewBase()), n)
		b.position += n * SizeOfInt32
		return out
	}
	std := b.order.std()
	out := make([]int32, n)
	p := b.offset + b.position
	for i := range out {
		out[i] = int32(std.Uint32(b.data[p+i*SizeOfInt32:]))
	}
	b.position += n * SizeOfInt32
	return out
}

// ReadUint32Slice reads n 32-bit unsigned integers.
func (b *ByteBuffer) ReadUint32Slice(n int, mode AccessMode, err *Error) []uint32 {
	if n == 0 || !b.validateRead(n*SizeOfUint32, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*uint32)(b.viewBase()), n)
		b.position += n * SizeOfUint32
		return out
	}
	std := b.order.std()
	out := make([]uint32, n)
	p := b.offset + b.position
	for i := range out {
		out[i] = std.Uint32(b.data[p+i*SizeOfUint32:])
	}
	b.position += n * SizeOfUint32
	return out
}

// ReadFloat32Slice reads n IEEE-754 singles.
func (b *ByteBuffer) ReadFloat32Slice(n int, mode AccessMode, err *Error) []float32 {
	if n == 0 || !b.validateRead(n*SizeOfFloat32, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*float32)(b.viewBase()), n)
		b.position += n * SizeOfFloat32
		return out
	}
	std := b.order.std()
	out := make([]float32, n)
	p := b.offset + b.position
	for i := range out {
		out[i] = math.Float32frombits(std.Uint32(b.data[p+i*SizeOfFloat32:]))
	}
	b.position += n * SizeOfFloat32
	return out
}

// ReadFloat64Slice reads n IEEE-754 doubles.
func (b *ByteBuffer) ReadFloat64Slice(n int, mode AccessMode, err *Error) []float64 {
	if n == 0 || !b.validateRead(n*SizeOfFloat64, err) {
		return nil
	}
	if mode == ModeView {
		out := unsafe.Slice((*float64)(b.viewBase()), n)
		b.position += n * SizeOfFloat64
		return out
	}
	std := b.order.std()
	out := make([]float64, n)
	p := b.offset + b.position
	for i := range out {
		out[i] = math.Float64frombits(std.Uint64(b.data[p+i*SizeOfFloat64:]))
	}
	b.position += n * SizeOfFloat64
	return out
}

// ============================================================================
// Typed bulk writes
// ============================================================================

// WriteInt8Slice writes every element as one byte.
func (b *ByteBuffer) WriteInt8Slice(v []int8) {
	end := b.position + len(v)
	b.ensureWritable(end)
	p := b.offset + b.position
	for i, e := range v {
		b.data[p+i] = byte(e)
	}
	b.position = end
}

// WriteUint8Slice writes every element as one byte.
func (b *ByteBuffer) WriteUint8Slice(v []uint8) {
	b.WriteBytes(v)
}

// WriteInt16Slice writes every element in the current byte order.
func (b *ByteBuffer) WriteInt16Slice(v []int16) {
	end := b.position + len(v)*SizeOfInt16
	b.ensureWritable(end)
	std := b.order.std()
	p := b.offset + b.position
	for i, e := range v {
		std.PutUint16(b.data[p+i*SizeOfInt16:], uint16(e))
	}
	b.position = end
}

// WriteUint16Slice writes every element in the current byte order.
func (b *ByteBuffer) WriteUint16Slice(v []uint16) {
	end := b.position + len(v)*SizeOfUint16
	b.ensureWritable(end)
	std := b.order.std()
	p := b.offset + b.position
	for i, e := range v {
		std.PutUint16(b.data[p+i*SizeOfUint16:], e)
	}
	b.position = end
}

// WriteInt32Slice writes every element in the current byte order.
func (b *ByteBuffer) WriteInt32Slice(v []int32) {
	end := b.position + len(v)*SizeOfInt32
	b.ensureWritable(end)
	std := b.order.std()
	p := b.offset + b.position
	for i, e := range v {
		std.PutUint32(b.data[p+i*SizeOfInt32:], uint32(e))
	}
	b.position = end
}

// WriteUint32Slice writes every element in the current byte order.
func (b *ByteBuffer) WriteUint32Slice(v []uint32) {
	end := b.position + len(v)*SizeOfUint32
	b.ensureWritable(end)
	std := b.order.std()
	p := b.offset + b.position
	for i, e := range v {
		std.PutUint32(b.data[p+i*SizeOfUint32:], e)
	}
	b.position = end
}

// WriteFloat32Slice writes every element in the current byte order.
func (b *ByteBuffer) WriteFloat32Slice(v []float32) {
	end := b.position + len(v)*SizeOfFloat32
	b.ensureWritable(end)
	std := b.order.std()
	p := b.offset + b.position
	for i, e := range v {
		std.PutUint32(b.data[p+i*SizeOfFloat32:], math.Float32bits(e))
	}
	b.position = end
}

// WriteFloat64Slice writes every element in the current byte order.
func (b *ByteBuffer) WriteFloat64Slice(v []float64) {
	end := b.position + len(v)*SizeOfFloat64
	b.ensureWritable(end)
	std := b.order.std()
	p := b.offset + b.position
	for i, e := range v {
		std.PutUint64(b.data[p+i*SizeOfFloat64:], math.Float64bits(e))
	}
	b.position = end
}
