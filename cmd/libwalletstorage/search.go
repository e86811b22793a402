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
	"github.com/evernym/mysql-wallet-storage-sub000/storage"
)

//export search_records
func search_records(storageHandle C.int, typePtr, queryJSONPtr, optionsJSONPtr *C.char, searchHandleOut *C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	queryJSON, code := goString(queryJSONPtr)
	if code != errors.Success {
		return C.int(code)
	}
	optionsJSON, code := goString(optionsJSONPtr)
	if code != errors.Success {
		return C.int(code)
	}
	opts, err := storage.ParseSearchOptions([]byte(optionsJSON))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	h, err := engine.SearchRecords(context.Background(), recordType, []byte(queryJSON), opts)
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	*searchHandleOut = C.int(h)
	return C.int(errors.Success)
}

//export search_all_records
func search_all_records(storageHandle C.int, searchHandleOut *C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}

	h, err := engine.SearchAllRecords(context.Background(), storage.DefaultSearchOptions())
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	*searchHandleOut = C.int(h)
	return C.int(errors.Success)
}

//export get_search_total_count
func get_search_total_count(storageHandle, searchHandle C.int, totalCountOut *C.size_t) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}

	total, err := engine.GetSearchTotalCount(int32(searchHandle))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	*totalCountOut = C.size_t(total)
	return C.int(errors.Success)
}

//export fetch_search_next_record
func fetch_search_next_record(storageHandle, searchHandle C.int, recordHandleOut *C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}

	h, err := engine.FetchSearchNextRecord(int32(searchHandle))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	*recordHandleOut = C.int(h)
	return C.int(errors.Success)
}

//export free_search
func free_search(storageHandle, searchHandle C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	if err := engine.FreeSearch(int32(searchHandle)); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}
