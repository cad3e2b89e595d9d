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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariableUintBoundaries(t *testing.T) {
	cases := []struct {
		value int
		size  int
	}{
		{0, 2},
		{1, 2},
		{0xFF, 2},
		{0xFEFF, 2},
		{0xFF00 - 1, 2},
		{0xFF00, 4},
		{0xFFFF, 4},
		{0xFFFFFF, 4},
	}
	for _, c := range cases {
		err := &Error{}
		buf := NewByteBuffer(nil)
		require.NoError(t, buf.WriteVariableUint(c.value))
		require.Equal(t, c.size, buf.Length())
		buf.Clear()
		require.Equal(t, c.value, buf.ReadVariableUint(err))
		require.Equal(t, c.size, buf.Position())
		require.NoError(t, err.CheckError())
	}
}

func TestVariableUintWireFormat(t *testing.T) {
	buf := NewByteBuffer(nil)
	require.NoError(t, buf.WriteVariableUint(65279))
	require.Equal(t, []byte{0xFE, 0xFF}, buf.Bytes())

	buf = NewByteBuffer(nil)
	require.NoError(t, buf.WriteVariableUint(65280))
	require.Equal(t, []byte{0xFF, 0x00, 0xFF, 0x00}, buf.Bytes())

	// The codec is big-endian regardless of the buffer's order setting.
	buf = NewByteBuffer(nil)
	buf.SetOrder(LittleEndian)
	require.NoError(t, buf.WriteVariableUint(0x1234))
	require.Equal(t, []byte{0x12, 0x34}, buf.Bytes())
}

func TestVariableUintRange(t *testing.T) {
	buf := NewByteBuffer(nil)
	require.Error(t, buf.WriteVariableUint(-1))
	require.Error(t, buf.WriteVariableUint(MaxInt32+1))
	require.Equal(t, 0, buf.Length())

	// The long form only carries 24 bits; higher bits are dropped on the
	// wire. MaxInt32 is accepted but decodes to its low 24 bits.
	err := &Error{}
	require.NoError(t, buf.WriteVariableUint(MaxInt32))
	buf.Clear()
	require.Equal(t, 0xFFFFFF, buf.ReadVariableUint(err))
	require.NoError(t, err.CheckError())
}

func TestVariableUint16FastPath(t *testing.T) {
	err := &Error{}
	buf := NewByteBuffer(nil)
	require.NoError(t, buf.WriteVariableUint(0xFE12))
	buf.Clear()
	require.Equal(t, 0xFE12, buf.ReadVariableUint16(err))
	require.Equal(t, 2, buf.Position())

	// The fast path never looks at the marker; a long-form stream decodes
	// as the raw first two bytes.
	buf = NewByteBuffer([]byte{0xFF, 0x01, 0x02, 0x03})
	require.Equal(t, 0xFF01, buf.ReadVariableUint16(err))
	require.NoError(t, err.CheckError())
}

func TestVariableUintTruncatedStream(t *testing.T) {
	err := &Error{}

	buf := NewByteBuffer([]byte{0x12})
	buf.ReadVariableUint(err)
	require.Equal(t, ErrKindEndOfStream, err.Kind())
	require.Equal(t, 0, buf.Position())
	err.TakeError()

	buf = NewByteBuffer([]byte{0xFF, 0x01})
	buf.ReadVariableUint(err)
	require.Equal(t, ErrKindEndOfStream, err.Kind())
	require.Equal(t, 0, buf.Position())
	err.TakeError()

	buf = NewByteBuffer([]byte{0x01})
	buf.ReadVariableUint16(err)
	require.Equal(t, ErrKindEndOfStream, err.Kind())
	require.Equal(t, 0, buf.Position())
}
