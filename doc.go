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

/*
Package asdata implements a random-access, growable byte buffer with typed,
endian-aware reads and writes, in the shape of the classic binary-stream
cursor APIs used by game and asset file formats.

A ByteBuffer owns a contiguous byte region, a logical length (the high-water
mark of everything ever written) and a single read/write position. Every
operation is a synchronous call that advances the position by exactly the
bytes it consumed or produced. Writes past capacity grow the storage and
preserve previously written bytes; reads past the readable extent fail with
an end-of-stream error and leave the position untouched.

# Quick start

	buf := asdata.NewByteBuffer(nil)
	buf.SetOrder(asdata.LittleEndian)
	buf.WriteUint32(0xCAFEBABE)
	if err := buf.WriteUTF("hello"); err != nil {
		panic(err)
	}

	buf.Clear()
	var err asdata.Error
	magic := buf.ReadUint32(&err)
	name := buf.ReadUTF(&err)
	if e := err.CheckError(); e != nil {
		panic(e)
	}
	_ = magic
	_ = name

Hot-path reads report failure through an out-parameter *Error so a run of
reads can be issued back to back and checked once; the first error wins and
later reads become no-ops at the caller's discretion.

# Text

The package carries its own UTF-8 codec because its error policy is part of
the wire contract: encoding fails hard on unpaired surrogates, decoding
substitutes U+FFFD by default and rescans from the offending byte. ReadUTF
and WriteUTF add a 16-bit byte-length prefix in the buffer's current byte
order. ReadMultiByte and WriteMultiByte select a charset by name; an unknown
name is an error, never a silent fallback.

# Views

Bulk reads offer a zero-copy mode that aliases the buffer's storage instead
of decoding. A view shares bytes with its source: mutating one is visible
through the other, and a typed view is only meaningful when the stream's
byte order matches the host's. Buffers are not safe for concurrent use.
*/
package asdata
