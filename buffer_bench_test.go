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

import "testing"

var benchVariableUintShortValues = []int{
	0,
	1,
	127,
	128,
	0x1234,
	0xFEFF,
	0xFF00 - 1,
}

var benchVariableUintLongValues = []int{
	0xFF00,
	0xFFFF,
	0x10000,
	0xABCDEF,
	0xFFFFFF,
}

func BenchmarkWriteVariableUintShort(b *testing.B) {
	buf := NewByteBuffer(make([]byte, 16))
	values := benchVariableUintShortValues
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		_ = buf.WriteVariableUint(values[i%len(values)])
	}
}

func BenchmarkWriteVariableUintLong(b *testing.B) {
	buf := NewByteBuffer(make([]byte, 16))
	values := benchVariableUintLongValues
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		_ = buf.WriteVariableUint(values[i%len(values)])
	}
}

func BenchmarkReadVariableUint(b *testing.B) {
	var err Error
	buf := NewByteBuffer(nil)
	for _, v := range benchVariableUintShortValues {
		_ = buf.WriteVariableUint(v)
	}
	for _, v := range benchVariableUintLongValues {
		_ = buf.WriteVariableUint(v)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if buf.BytesAvailable() < 4 {
			buf.Clear()
		}
		buf.ReadVariableUint(&err)
	}
}

func BenchmarkReadVariableUint16(b *testing.B) {
	var err Error
	buf := NewByteBuffer(nil)
	for _, v := range benchVariableUintShortValues {
		_ = buf.WriteVariableUint(v)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if buf.BytesAvailable() < 2 {
			buf.Clear()
		}
		buf.ReadVariableUint16(&err)
	}
}

func BenchmarkWriteUint32(b *testing.B) {
	buf := NewByteBuffer(make([]byte, 16))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		buf.WriteUint32(uint32(i))
	}
}

func BenchmarkReadUint32(b *testing.B) {
	var err Error
	buf := NewByteBuffer([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		buf.ReadUint32(&err)
	}
}

func BenchmarkWriteFloat64(b *testing.B) {
	buf := NewByteBuffer(make([]byte, 16))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		buf.WriteFloat64(3.14159265358979)
	}
}

func BenchmarkWriteUTF(b *testing.B) {
	buf := NewByteBuffer(make([]byte, 64))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		_ = buf.WriteUTF("héllo wörld")
	}
}

func BenchmarkReadUTF(b *testing.B) {
	var err Error
	buf := NewByteBuffer(nil)
	_ = buf.WriteUTF("héllo wörld")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		buf.ReadUTF(&err)
	}
}

func BenchmarkReadUint32SliceCopy(b *testing.B) {
	var err Error
	buf := NewByteBuffer(make([]byte, 4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		buf.ReadUint32Slice(1024, ModeCopy, &err)
	}
}

func BenchmarkReadUint32SliceView(b *testing.B) {
	var err Error
	buf := NewByteBuffer(make([]byte, 4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Clear()
		buf.ReadUint32Slice(1024, ModeView, &err)
	}
}

func BenchmarkChecksum(b *testing.B) {
	buf := NewByteBuffer(make([]byte, 4096))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Checksum()
	}
}
