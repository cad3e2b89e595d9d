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

import "unicode/utf16"

// Hand-rolled UTF-8 codec. The standard library decodes UTF-8 too, but the
// replacement policy here must match the byte stream of legacy producers:
// encoding fails hard on any unpaired surrogate, while decoding defaults to
// substituting U+FFFD and rescanning from the offending byte. Both halves
// speak UTF-16 code units, the native string representation of the runtimes
// this format comes from.

const (
	replacementUnit = 0xFFFD

	surrogateMin     = 0xD800
	surrogateHighMax = 0xDBFF
	surrogateLowMin  = 0xDC00
	surrogateMax     = 0xDFFF

	maxCodePoint = 0x10FFFF
)

// encodeUTF16Units converts UTF-16 code units to UTF-8 bytes. A high
// surrogate immediately followed by a low surrogate pairs into one code
// point; any surrogate left over after pairing is an encoding error and no
// bytes are produced.
func encodeUTF16Units(units []uint16) ([]byte, error) {
	out := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		cp := uint32(units[i])
		if cp >= surrogateMin && cp <= surrogateMax {
			if cp <= surrogateHighMax && i+1 < len(units) {
				next := uint32(units[i+1])
				if next >= surrogateLowMin && next <= surrogateMax {
					cp = 0x10000 + ((cp & 0x3FF) << 10) + (next & 0x3FF)
					i++
					out = appendUTF8(out, cp)
					continue
				}
			}
			return nil, EncodingErrorf("unpaired surrogate 0x%04X at unit %d", cp, i)
		}
		out = appendUTF8(out, cp)
	}
	return out, nil
}

// appendUTF8 emits one code point. Continuation bytes carry 6 bits each,
// most significant first.
func appendUTF8(dst []byte, cp uint32) []byte {
	switch {
	case cp <= 0x7F:
		return append(dst, byte(cp))
	case cp <= 0x7FF:
		return append(dst, byte(0xC0|cp>>6), byte(0x80|cp&0x3F))
	case cp <= 0xFFFF:
		return append(dst, byte(0xE0|cp>>12), byte(0x80|(cp>>6)&0x3F), byte(0x80|cp&0x3F))
	default:
		return append(dst,
			byte(0xF0|cp>>18),
			byte(0x80|(cp>>12)&0x3F),
			byte(0x80|(cp>>6)&0x3F),
			byte(0x80|cp&0x3F))
	}
}

// decodeUTF8Units runs the byte-oriented decode state machine and returns
// UTF-16 code units; code points above 0xFFFF come out as surrogate pairs.
//
// In lenient mode (fatal=false) every malformed sequence contributes one
// U+FFFD and scanning continues; a continuation byte outside 0x80..0xBF is
// not consumed by the broken sequence but re-examined as a fresh lead byte.
// In fatal mode the first malformed sequence aborts the decode.
func decodeUTF8Units(data []byte, fatal bool) ([]uint16, error) {
	out := make([]uint16, 0, len(data))
	var (
		codePoint   uint32
		bytesNeeded int
		bytesSeen   int
		lower       uint32
	)
	for i := 0; i < len(data); i++ {
		c := data[i]
		if bytesNeeded == 0 {
			switch {
			case c <= 0x7F:
				out = append(out, uint16(c))
			case c >= 0xC2 && c <= 0xDF:
				bytesNeeded, lower = 1, 0x80
				codePoint = uint32(c & 0x1F)
			case c >= 0xE0 && c <= 0xEF:
				bytesNeeded, lower = 2, 0x800
				codePoint = uint32(c & 0x0F)
			case c >= 0xF0 && c <= 0xF4:
				bytesNeeded, lower = 3, 0x10000
				codePoint = uint32(c & 0x07)
			default:
				if fatal {
					return nil, DecodingErrorf("invalid lead byte 0x%02X at offset %d", c, i)
				}
				out = append(out, replacementUnit)
			}
			continue
		}
		if c < 0x80 || c > 0xBF {
			// The broken sequence ends here; this byte starts over as a lead.
			codePoint, bytesNeeded, bytesSeen, lower = 0, 0, 0, 0
			if fatal {
				return nil, DecodingErrorf("invalid continuation byte 0x%02X at offset %d", c, i)
			}
			out = append(out, replacementUnit)
			i--
			continue
		}
		codePoint = codePoint<<6 | uint32(c&0x3F)
		bytesSeen++
		if bytesSeen < bytesNeeded {
			continue
		}
		cp, lo := codePoint, lower
		codePoint, bytesNeeded, bytesSeen, lower = 0, 0, 0, 0
		if cp < lo || cp > maxCodePoint || (cp >= surrogateMin && cp <= surrogateMax) {
			if fatal {
				return nil, DecodingErrorf("invalid code point 0x%X at offset %d", cp, i)
			}
			out = append(out, replacementUnit)
			continue
		}
		out = appendUnit(out, cp)
	}
	if bytesNeeded != 0 {
		if fatal {
			return nil, DecodingError("truncated sequence at end of input")
		}
		out = append(out, replacementUnit)
	}
	return out, nil
}

// appendUnit emits one decoded code point as UTF-16.
func appendUnit(dst []uint16, cp uint32) []uint16 {
	if cp <= 0xFFFF {
		return append(dst, uint16(cp))
	}
	cp -= 0x10000
	return append(dst, uint16(surrogateMin|cp>>10), uint16(surrogateLowMin|cp&0x3FF))
}

// encodeUTF8String encodes a string through the UTF-16 unit path so the
// surrogate rules above apply uniformly.
func encodeUTF8String(s string) ([]byte, error) {
	return encodeUTF16Units(utf16.Encode([]rune(s)))
}

// decodeUTF8String decodes bytes to a string under the given error policy.
func decodeUTF8String(data []byte, fatal bool) (string, error) {
	units, err := decodeUTF8Units(data, fatal)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}
