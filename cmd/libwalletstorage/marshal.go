// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package main

// #include <stdlib.h>
import "C"

import (
	"sync"
	"unicode/utf8"
	"unsafe"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// goString converts a required C string argument, rejecting a null
// pointer or invalid UTF-8 with InvalidState per §4.5.
func goString(cs *C.char) (string, errors.ABICode) {
	if cs == nil {
		return "", errors.InvalidState
	}
	s := C.GoString(cs)
	if !utf8.ValidString(s) {
		return "", errors.InvalidState
	}
	return s, errors.Success
}

// goStringRequired converts a C string like goString, but returns
// InvalidStructure (not InvalidState) when the pointer itself is null.
// An empty string is passed through. Used for the config/credentials JSON
// arguments §4.5 calls out by name.
func goStringRequired(cs *C.char) (string, errors.ABICode) {
	if cs == nil {
		return "", errors.InvalidStructure
	}
	return goString(cs)
}

// goBytes copies a borrowed C buffer into Go-owned memory. The data
// pointer and length travel as separate arguments the way the
// original C ABI passed record values.
func goBytes(p *C.uchar, length C.size_t) []byte {
	if length == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(p), C.int(length))
}

// allocator tracks every C allocation made while materialising a
// record or metadata value, keyed by the handle whose Free* call must
// release them. A handle can accumulate allocations across repeated
// get_record_type/get_record_id/get_record_value/get_record_tags
// calls; all of them are freed together once, at FreeRecord time.
type allocator struct {
	mu    sync.Mutex
	byKey map[int64][]unsafe.Pointer
}

func newAllocator() *allocator {
	return &allocator{byKey: make(map[int64][]unsafe.Pointer)}
}

func recordAllocKey(storageHandle, recordHandle int32) int64 {
	return int64(storageHandle)<<32 | int64(uint32(recordHandle))
}

// cstring allocates a C string owned by the allocator under key,
// returning the pointer the accessor writes to its out-parameter.
func (a *allocator) cstring(key int64, s string) *C.char {
	cs := C.CString(s)
	a.mu.Lock()
	a.byKey[key] = append(a.byKey[key], unsafe.Pointer(cs))
	a.mu.Unlock()
	return cs
}

// cbytes allocates a C buffer owned by the allocator under key and
// returns a pointer plus length, mirroring get_record_value's
// two-out-parameter shape.
func (a *allocator) cbytes(key int64, b []byte) (*C.uchar, C.size_t) {
	if len(b) == 0 {
		return nil, 0
	}
	p := C.CBytes(b)
	a.mu.Lock()
	a.byKey[key] = append(a.byKey[key], p)
	a.mu.Unlock()
	return (*C.uchar)(p), C.size_t(len(b))
}

// free releases every allocation registered under key.
func (a *allocator) free(key int64) {
	a.mu.Lock()
	ptrs := a.byKey[key]
	delete(a.byKey, key)
	a.mu.Unlock()

	for _, p := range ptrs {
		C.free(p)
	}
}

var recordAllocs = newAllocator()
var metadataAllocs = newAllocator()
