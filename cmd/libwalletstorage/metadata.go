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
	"context"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

//export get_metadata
func get_metadata(storageHandle C.int, metadataOut **C.char, metadataHandleOut *C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}

	h, err := engine.GetMetadata(context.Background())
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	value, err := engine.GetMetadataValue(h)
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	key := recordAllocKey(int32(storageHandle), h)
	*metadataOut = metadataAllocs.cstring(key, value)
	*metadataHandleOut = C.int(h)
	return C.int(errors.Success)
}

//export set_metadata
func set_metadata(storageHandle C.int, metadataPtr *C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	value, code := goString(metadataPtr)
	if code != errors.Success {
		return C.int(code)
	}

	if err := engine.SetMetadata(context.Background(), value); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export free_metadata
func free_metadata(storageHandle, metadataHandle C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	if err := engine.FreeMetadata(int32(metadataHandle)); err != nil {
		return C.int(errors.StatusCode(err))
	}
	metadataAllocs.free(recordAllocKey(int32(storageHandle), int32(metadataHandle)))
	return C.int(errors.Success)
}
