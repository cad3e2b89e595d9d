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
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// maxUTFLength is the largest payload a 16-bit length prefix can describe.
const maxUTFLength = 0xFFFF

// ============================================================================
// Length-prefixed UTF-8
// ============================================================================

// WriteUTF writes a 16-bit byte-length prefix in the current byte order
// followed by the string's UTF-8 bytes. Nothing is committed when encoding
// fails or the payload exceeds 65535 bytes.
func (b *ByteBuffer) WriteUTF(s string) error {
	data, err := encodeUTF8String(s)
	if err != nil {
		return err
	}
	if len(data) > maxUTFLength {
		return OutOfRangeError("utf payload too long: %d bytes", len(data))
	}
	b.WriteUint16(uint16(len(data)))
	b.WriteBytes(data)
	return nil
}

// ReadUTF reads a 16-bit byte-length prefix in the current byte order and
// decodes that many UTF-8 bytes. The cursor does not move when the payload
// is cut short.
func (b *ByteBuffer) ReadUTF(err *Error) string {
	start := b.position
	n := b.ReadUint16(err)
	if err.HasError() {
		return ""
	}
	s := b.ReadUTFBytes(int(n), err)
	if err.HasError() {
		b.position = start
		return ""
	}
	return s
}

// WriteUTFBytes writes the string's UTF-8 bytes with no length prefix.
func (b *ByteBuffer) WriteUTFBytes(s string) error {
	data, err := encodeUTF8String(s)
	if err != nil {
		return err
	}
	b.WriteBytes(data)
	return nil
}

// ReadUTFBytes decodes exactly n UTF-8 bytes at the cursor. Malformed
// sequences follow the buffer's decode policy: replacement by default,
// hard failure when the fatal flag is set.
func (b *ByteBuffer) ReadUTFBytes(n int, err *Error) string {
	if !b.validateRead(n, err) {
		return ""
	}
	p := b.offset + b.position
	s, derr := decodeUTF8String(b.data[p:p+n], b.utf8Fatal)
	if derr != nil {
		err.SetError(derr)
		return ""
	}
	b.position += n
	return s
}

// ============================================================================
// Charset-parameterized ("multi-byte") strings
// ============================================================================

// charsetCodec binds a charset name to its encode/decode halves.
type charsetCodec struct {
	decode func(data []byte, fatal bool) (string, error)
	encode func(s string) ([]byte, error)
}

// lookupCharset resolves a charset name, case-insensitively, against the
// supported table. Unknown names are a configuration error; there is never
// a silent fallback to a different charset.
func lookupCharset(name string) (charsetCodec, bool) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return charsetCodec{decode: decodeUTF8String, encode: encodeUTF8String}, true
	case "us-ascii", "ascii":
		return charsetCodec{decode: decodeASCII, encode: encodeASCII}, true
	case "iso-8859-1", "latin-1", "latin1":
		return textCodec(charmap.ISO8859_1), true
	case "windows-1252", "cp1252":
		return textCodec(charmap.Windows1252), true
	case "utf-16", "utf-16le":
		return textCodec(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)), true
	case "utf-16be":
		return textCodec(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)), true
	}
	return charsetCodec{}, false
}

// textCodec adapts an x/text encoding. Its encoders reject unmappable runes
// rather than substituting, which matches the strict-encode policy.
func textCodec(enc encoding.Encoding) charsetCodec {
	return charsetCodec{
		decode: func(data []byte, fatal bool) (string, error) {
			decoded, err := enc.NewDecoder().Bytes(data)
			if err != nil {
				if fatal {
					return "", DecodingError(err.Error())
				}
				return string([]rune{replacementUnit}), nil
			}
			return string(decoded), nil
		},
		encode: func(s string) ([]byte, error) {
			encoded, err := enc.NewEncoder().Bytes([]byte(s))
			if err != nil {
				return nil, EncodingError(err.Error())
			}
			return encoded, nil
		},
	}
}

func decodeASCII(data []byte, fatal bool) (string, error) {
	runes := make([]rune, 0, len(data))
	for i, c := range data {
		if c > 0x7F {
			if fatal {
				return "", DecodingErrorf("non-ascii byte 0x%02X at offset %d", c, i)
			}
			runes = append(runes, replacementUnit)
			continue
		}
		runes = append(runes, rune(c))
	}
	return string(runes), nil
}

func encodeASCII(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0x7F {
			return nil, EncodingErrorf("code point %U not representable in ascii", r)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// ReadMultiByte decodes n bytes at the cursor using the named charset.
// The cursor does not move on an unsupported charset or short payload.
func (b *ByteBuffer) ReadMultiByte(n int, charset string, err *Error) string {
	if err.HasError() {
		return ""
	}
	codec, ok := lookupCharset(charset)
	if !ok {
		*err = UnsupportedCharsetError(charset)
		return ""
	}
	if !b.validateRead(n, err) {
		return ""
	}
	p := b.offset + b.position
	s, derr := codec.decode(b.data[p:p+n], b.utf8Fatal)
	if derr != nil {
		err.SetError(derr)
		return ""
	}
	b.position += n
	return s
}

// WriteMultiByte encodes the string with the named charset and writes the
// bytes. Nothing is committed when the charset is unknown or a code point
// is not representable in it.
func (b *ByteBuffer) WriteMultiByte(s string, charset string) error {
	codec, ok := lookupCharset(charset)
	if !ok {
		return UnsupportedCharsetError(charset)
	}
	data, err := codec.encode(s)
	if err != nil {
		return err
	}
	b.WriteBytes(data)
	return nil
}

// ============================================================================
// 8-bit pass-through
// ============================================================================

// ReadLatin1String reads n bytes, each becoming one code unit unchanged.
// No validation is applied; this is the raw 8-bit string form.
func (b *ByteBuffer) ReadLatin1String(n int, err *Error) string {
	if !b.validateRead(n, err) {
		return ""
	}
	p := b.offset + b.position
	runes := make([]rune, n)
	for i, c := range b.data[p : p+n] {
		runes[i] = rune(c)
	}
	b.position += n
	return string(runes)
}

// WriteLatin1String writes the low byte of every UTF-16 code unit of s.
// Units above 0xFF are truncated without error; this mirrors the producer
// side of the raw 8-bit form.
func (b *ByteBuffer) WriteLatin1String(s string) {
	units := utf16.Encode([]rune(s))
	end := b.position + len(units)
	b.ensureWritable(end)
	p := b.offset + b.position
	for i, u := range units {
		b.data[p+i] = byte(u)
	}
	b.position = end
}

// ============================================================================
// NUL-terminated strings
// ============================================================================

// ReadCString reads UTF-8 bytes up to a terminating NUL. With padded set,
// a trailing pad byte is also consumed whenever the string plus terminator
// spans an odd number of bytes, keeping the cursor two-byte aligned. The
// cursor does not move when no terminator exists before capacity.
func (b *ByteBuffer) ReadCString(padded bool, err *Error) string {
	if err.HasError() {
		return ""
	}
	if b.capacity == 0 {
		*err = EndOfStreamError(b.position, 1, b.capacity)
		return ""
	}
	p := b.offset + b.position
	end := b.offset + b.capacity
	i := p
	for i < end && b.data[i] != 0 {
		i++
	}
	if i == end {
		*err = EndOfStreamError(b.position, b.capacity-b.position+1, b.capacity)
		return ""
	}
	consumed := (i - p) + 1
	if padded && consumed%2 == 1 {
		if b.position+consumed+1 > b.capacity {
			*err = EndOfStreamError(b.position, consumed+1, b.capacity)
			return ""
		}
		consumed++
	}
	s, derr := decodeUTF8String(b.data[p:i], b.utf8Fatal)
	if derr != nil {
		err.SetError(derr)
		return ""
	}
	b.position += consumed
	return s
}

// WriteCString writes the string's UTF-8 bytes followed by a NUL, plus one
// pad byte when padded is set and the total would otherwise be odd.
func (b *ByteBuffer) WriteCString(s string, padded bool) error {
	data, err := encodeUTF8String(s)
	if err != nil {
		return err
	}
	n := len(data) + 1
	if padded && n%2 == 1 {
		n++
	}
	end := b.position + n
	b.ensureWritable(end)
	p := b.offset + b.position
	copy(b.data[p:], data)
	for i := p + len(data); i < b.offset+end; i++ {
		b.data[i] = 0
	}
	b.position = end
	return nil
}
