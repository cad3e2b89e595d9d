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

import "github.com/spaolacci/murmur3"

// checksumSeed keeps digests comparable across processes and versions.
const checksumSeed = 47

// Checksum returns a 64-bit Murmur3 digest of the written extent
// [0, length). Useful for deduplicating decoded asset blobs; not a
// cryptographic hash.
func (b *ByteBuffer) Checksum() uint64 {
	return murmur3.Sum64WithSeed(b.Bytes(), checksumSeed)
}
