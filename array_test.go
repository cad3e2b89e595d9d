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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedSliceRoundTrip(t *testing.T) {
	for _, order := range []ByteOrder{BigEndian, LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			err := &Error{}
			buf := NewByteBuffer(nil)
			buf.SetOrder(order)

			i8 := []int8{math.MinInt8, -1, 0, math.MaxInt8}
			u8 := []uint8{0, 128, 255}
			i16 := []int16{math.MinInt16, -1, 0, math.MaxInt16}
			u16 := []uint16{0, 0xFF00, 0xFFFF}
			i32 := []int32{math.MinInt32, -1, 0, math.MaxInt32}
			u32 := []uint32{0, 0xDEADBEEF, 0xFFFFFFFF}
			f32 := []float32{0, -1.5, math.MaxFloat32}
			f64 := []float64{0, 2.75, math.MaxFloat64}

			buf.WriteInt8Slice(i8)
			buf.WriteUint8Slice(u8)
			buf.WriteInt16Slice(i16)
			buf.WriteUint16Slice(u16)
			buf.WriteInt32Slice(i32)
			buf.WriteUint32Slice(u32)
			buf.WriteFloat32Slice(f32)
			buf.WriteFloat64Slice(f64)

			buf.Clear()
			require.Equal(t, i8, buf.ReadInt8Slice(len(i8), ModeCopy, err))
			require.Equal(t, u8, buf.ReadUint8Slice(len(u8), ModeCopy, err))
			require.Equal(t, i16, buf.ReadInt16Slice(len(i16), ModeCopy, err))
			require.Equal(t, u16, buf.ReadUint16Slice(len(u16), ModeCopy, err))
			require.Equal(t, i32, buf.ReadInt32Slice(len(i32), ModeCopy, err))
			require.Equal(t, u32, buf.ReadUint32Slice(len(u32), ModeCopy, err))
			require.Equal(t, f32, buf.ReadFloat32Slice(len(f32), ModeCopy, err))
			require.Equal(t, f64, buf.ReadFloat64Slice(len(f64), ModeCopy, err))
			require.NoError(t, err.CheckError())
			require.Equal(t, 0, buf.BytesAvailable())
		})
	}
}

func TestTypedSliceBounds(t *testing.T) {
	err := &Error{}
	buf := NewByteBuffer([]byte{1, 2, 3})
	buf.ReadInt16Slice(2, ModeCopy, err)
	require.Equal(t, ErrKindEndOfStream, err.Kind())
	require.Equal(t, 0, buf.Position())
	err.TakeError()
	buf.ReadFloat64Slice(1, ModeView, err)
	require.Equal(t, ErrKindEndOfStream, err.Kind())
	require.Equal(t, 0, buf.Position())
}

func TestViewAliasesStorage(t *testing.T) {
	err := &Error{}
	// Element bytes are symmetric so the expectation holds on either host
	// order; the view applies no conversion at all.
	data := []byte{0x11, 0x11, 0x22, 0x22}
	buf := NewByteBuffer(data)

	view := buf.ReadUint16Slice(2, ModeView, err)
	require.NoError(t, err.CheckError())
	require.Equal(t, []uint16{0x1111, 0x2222}, view)

	// Mutating the original storage must be observable through the view.
	data[0] = 0x33
	data[1] = 0x33
	require.Equal(t, uint16(0x3333), view[0])
}

func TestCopyDoesNotAlias(t *testing.T) {
	err := &Error{}
	data := []byte{0x11, 0x11, 0x22, 0x22}
	buf := NewByteBuffer(data)

	copied := buf.ReadUint16Slice(2, ModeCopy, err)
	require.NoError(t, err.CheckError())
	before := copied[0]

	data[0] = 0x77
	data[1] = 0x77
	require.Equal(t, before, copied[0])
}

func TestReadBytesCopyAndView(t *testing.T) {
	err := &Error{}
	data := []byte{1, 2, 3, 4, 5, 6}
	buf := NewByteBuffer(data)

	copied := buf.ReadBytes(2, err)
	require.Equal(t, []byte{1, 2}, copied)
	require.Equal(t, 2, buf.Position())

	view := buf.ReadBytesView(3, err)
	require.NoError(t, err.CheckError())
	require.Equal(t, 5, buf.Position())
	require.Equal(t, 3, view.Capacity())
	require.Equal(t, 3, view.Length())
	require.Equal(t, 0, view.Position())

	// The view is scoped to its range and shares bytes with the source.
	require.Equal(t, uint8(3), view.ReadUint8(err))
	data[3] = 0xEE
	require.Equal(t, uint8(0xEE), view.ReadUint8(err))
	view.ReadUint16(err)
	require.Equal(t, ErrKindEndOfStream, err.Kind())
	err.TakeError()

	// The copy saw none of the later mutation.
	data[0] = 0xFF
	require.Equal(t, []byte{1, 2}, copied)

	// Writes through the view land in the shared storage.
	view.Clear()
	view.WriteUint8(0x42)
	require.Equal(t, uint8(0x42), data[2])
}

func TestViewSurvivesSourceGrowthDetach(t *testing.T) {
	err := &Error{}
	buf := NewByteBuffer(nil)
	buf.WriteUint32(0x01020304)
	buf.Clear()
	view := buf.ReadBytesView(4, err)
	require.NoError(t, err.CheckError())

	// Growing the source reallocates its storage; the view keeps the old
	// bytes and the two stop aliasing.
	require.NoError(t, buf.SetLength(buf.Capacity()+1))
	buf.Clear()
	buf.WriteUint32(0xAABBCCDD)
	require.Equal(t, uint32(0x01020304), view.ReadUint32(err))
	require.NoError(t, err.CheckError())
}

func TestReadBuffer(t *testing.T) {
	err := &Error{}
	src := NewByteBuffer([]byte{1, 2, 3, 4, 5})
	dst := NewByteBuffer(nil)

	src.ReadBuffer(dst, 0, 2, err)
	require.NoError(t, err.CheckError())
	require.Equal(t, []byte{1, 2}, dst.Bytes())
	require.Equal(t, 2, src.Position())
	require.Equal(t, 0, dst.Position())

	// Zero length means everything remaining, written at the given offset.
	src.ReadBuffer(dst, 1, 0, err)
	require.NoError(t, err.CheckError())
	require.Equal(t, []byte{1, 3, 4, 5}, dst.Bytes())
	require.Equal(t, 5, src.Position())
}

func TestWriteBuffer(t *testing.T) {
	err := &Error{}
	src := NewByteBuffer([]byte{9, 8, 7, 6})
	dst := NewByteBuffer(nil)

	require.NoError(t, dst.WriteBuffer(src, 1, 2))
	require.Equal(t, []byte{8, 7}, dst.Bytes())
	require.Equal(t, 0, src.Position())

	require.NoError(t, dst.WriteBuffer(src, 2, 0))
	require.Equal(t, []byte{8, 7, 7, 6}, dst.Bytes())

	require.Error(t, dst.WriteBuffer(src, 2, 5))
	require.NoError(t, err.CheckError())
}

func TestEmptySliceReads(t *testing.T) {
	err := &Error{}
	buf := NewByteBuffer([]byte{1})
	require.Nil(t, buf.ReadInt32Slice(0, ModeCopy, err))
	require.Nil(t, buf.ReadInt32Slice(0, ModeView, err))
	require.Equal(t, 0, buf.Position())
	require.NoError(t, err.CheckError())
}
