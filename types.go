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

import "encoding/binary"

// ByteOrder selects how multi-byte primitives are laid out on the wire.
// It affects every subsequent multi-byte operation on a buffer; changing
// it is never retroactive.
type ByteOrder uint8

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "littleEndian"
	}
	return "bigEndian"
}

// std maps the wire order onto the encoding/binary implementation.
func (o ByteOrder) std() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Byte sizes of every primitive the buffer can encode. Callers may rely on
// these when pre-computing record layouts.
const (
	SizeOfBoolean = 1
	SizeOfInt8    = 1
	SizeOfUint8   = 1
	SizeOfInt16   = 2
	SizeOfUint16  = 2
	SizeOfInt32   = 4
	SizeOfUint32  = 4
	SizeOfInt64   = 8
	SizeOfUint64  = 8
	SizeOfFloat32 = 4
	SizeOfFloat64 = 8
)

// MaxInt32 is the largest value representable in a signed 32-bit field.
const MaxInt32 = 1<<31 - 1

// Int64Pair is a decoded 64-bit signed field, kept as the two 32-bit words
// that were read from the stream. The wire format writes the low word first;
// each word is independently subject to the buffer's byte order. This mirrors
// producers whose runtime has no native 64-bit integer, so the two-word shape
// is part of the format, not an implementation detail.
type Int64Pair struct {
	Low  uint32
	High int32
}

// Int64 folds the pair into a native signed 64-bit value.
func (p Int64Pair) Int64() int64 {
	return int64(p.High)<<32 | int64(p.Low)
}

// MakeInt64Pair splits a native value into stream words.
func MakeInt64Pair(v int64) Int64Pair {
	return Int64Pair{Low: uint32(v), High: int32(v >> 32)}
}

// UInt64Pair is the unsigned counterpart of Int64Pair.
type UInt64Pair struct {
	Low  uint32
	High uint32
}

// Uint64 folds the pair into a native unsigned 64-bit value.
func (p UInt64Pair) Uint64() uint64 {
	return uint64(p.High)<<32 | uint64(p.Low)
}

// MakeUInt64Pair splits a native value into stream words.
func MakeUInt64Pair(v uint64) UInt64Pair {
	return UInt64Pair{Low: uint32(v), High: uint32(v >> 32)}
}
