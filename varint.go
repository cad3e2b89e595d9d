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

// Variable-sized unsigned integer codec ("VX"). A value below 0xFF00 is a
// plain big-endian 16-bit integer; anything else is a 0xFF marker byte
// followed by the value's low 24 bits big-endian. The format is big-endian
// by definition and ignores the buffer's byte order setting.

// variableUintMarker introduces the 4-byte long form.
const variableUintMarker = 0xFF

// variableUintCutoff is the first value that no longer fits the short form.
const variableUintCutoff = 0xFF00

// WriteVariableUint encodes a non-negative integer as 2 or 4 bytes.
// Values of 0x1000000 and above only keep their low 24 bits on the wire;
// that truncation is part of the format. Negative values or values above
// MaxInt32 are rejected.
func (b *ByteBuffer) WriteVariableUint(value int) error {
	if value < 0 || value > MaxInt32 {
		return OutOfRangeError("variable uint out of range: %d", value)
	}
	if value < variableUintCutoff {
		end := b.position + 2
		b.ensureWritable(end)
		b.data[b.offset+b.position] = byte(value >> 8)
		b.data[b.offset+b.position+1] = byte(value)
		b.position = end
		return nil
	}
	end := b.position + 4
	b.ensureWritable(end)
	b.data[b.offset+b.position] = variableUintMarker
	b.data[b.offset+b.position+1] = byte(value >> 16)
	b.data[b.offset+b.position+2] = byte(value >> 8)
	b.data[b.offset+b.position+3] = byte(value)
	b.position = end
	return nil
}

// ReadVariableUint decodes a 2- or 4-byte variable-sized unsigned integer.
// The cursor does not move when the encoding is cut short.
func (b *ByteBuffer) ReadVariableUint(err *Error) int {
	start := b.position
	b0 := b.ReadUint8(err)
	if err.HasError() {
		return 0
	}
	if b0 != variableUintMarker {
		b1 := b.ReadUint8(err)
		if err.HasError() {
			b.position = start
			return 0
		}
		return int(b0)<<8 | int(b1)
	}
	if !b.validateRead(3, err) {
		b.position = start
		return 0
	}
	p := b.offset + b.position
	v := int(b.data[p])<<16 | int(b.data[p+1])<<8 | int(b.data[p+2])
	b.position += 3
	return v
}

// ReadVariableUint16 is the branch-free fast path for streams known to use
// only the short form: it always consumes exactly 2 bytes.
func (b *ByteBuffer) ReadVariableUint16(err *Error) int {
	if !b.validateRead(2, err) {
		return 0
	}
	p := b.offset + b.position
	v := int(b.data[p])<<8 | int(b.data[p+1])
	b.position += 2
	return v
}
