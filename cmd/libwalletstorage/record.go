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
	"encoding/json"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
	"github.com/evernym/mysql-wallet-storage-sub000/storage"
)

func lookupWallet(storageHandle C.int) (*storage.Engine, errors.ABICode) {
	engine, err := storage.LookupWallet(int32(storageHandle))
	if err != nil {
		return nil, errors.StatusCode(err)
	}
	return engine, errors.Success
}

//export add_record
func add_record(storageHandle C.int, typePtr, idPtr *C.char, valuePtr *C.uchar, valueLen C.size_t, tagsJSONPtr *C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	id, code := goString(idPtr)
	if code != errors.Success {
		return C.int(code)
	}
	tagsJSON, code := goString(tagsJSONPtr)
	if code != errors.Success {
		return C.int(code)
	}
	tags, err := storage.ParseTags([]byte(tagsJSON))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	value := goBytes(valuePtr, valueLen)
	if err := engine.AddRecord(context.Background(), recordType, id, value, tags); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export get_record
func get_record(storageHandle C.int, typePtr, idPtr, optionsJSONPtr *C.char, recordHandleOut *C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	id, code := goString(idPtr)
	if code != errors.Success {
		return C.int(code)
	}
	optionsJSON, code := goString(optionsJSONPtr)
	if code != errors.Success {
		return C.int(code)
	}
	opts, err := storage.ParseFetchOptions([]byte(optionsJSON))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	h, err := engine.FetchRecord(context.Background(), recordType, id, opts)
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	*recordHandleOut = C.int(h)
	return C.int(errors.Success)
}

//export delete_record
func delete_record(storageHandle C.int, typePtr, idPtr *C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	id, code := goString(idPtr)
	if code != errors.Success {
		return C.int(code)
	}

	if err := engine.DeleteRecord(context.Background(), recordType, id); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export update_record_value
func update_record_value(storageHandle C.int, typePtr, idPtr *C.char, valuePtr *C.uchar, valueLen C.size_t) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	id, code := goString(idPtr)
	if code != errors.Success {
		return C.int(code)
	}

	value := goBytes(valuePtr, valueLen)
	if err := engine.UpdateRecordValue(context.Background(), recordType, id, value); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export add_record_tags
func add_record_tags(storageHandle C.int, typePtr, idPtr, tagsJSONPtr *C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	id, code := goString(idPtr)
	if code != errors.Success {
		return C.int(code)
	}
	tagsJSON, code := goString(tagsJSONPtr)
	if code != errors.Success {
		return C.int(code)
	}
	tags, err := storage.ParseTags([]byte(tagsJSON))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	if err := engine.AddRecordTags(context.Background(), recordType, id, tags); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export update_record_tags
func update_record_tags(storageHandle C.int, typePtr, idPtr, tagsJSONPtr *C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	id, code := goString(idPtr)
	if code != errors.Success {
		return C.int(code)
	}
	tagsJSON, code := goString(tagsJSONPtr)
	if code != errors.Success {
		return C.int(code)
	}
	tags, err := storage.ParseTags([]byte(tagsJSON))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	if err := engine.UpdateRecordTags(context.Background(), recordType, id, tags); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export delete_record_tags
func delete_record_tags(storageHandle C.int, typePtr, idPtr, tagNamesJSONPtr *C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	recordType, code := goString(typePtr)
	if code != errors.Success {
		return C.int(code)
	}
	id, code := goString(idPtr)
	if code != errors.Success {
		return C.int(code)
	}
	tagNamesJSON, code := goString(tagNamesJSONPtr)
	if code != errors.Success {
		return C.int(code)
	}

	var tagNames []string
	if err := json.Unmarshal([]byte(tagNamesJSON), &tagNames); err != nil {
		return C.int(errors.InvalidStructure)
	}

	if err := engine.DeleteRecordTags(context.Background(), recordType, id, tagNames); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export get_record_type
func get_record_type(storageHandle, recordHandle C.int, typeOut **C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	rec, err := engine.GetRecord(int32(recordHandle))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	typ, err := rec.GetType()
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	key := recordAllocKey(int32(storageHandle), int32(recordHandle))
	*typeOut = recordAllocs.cstring(key, typ)
	return C.int(errors.Success)
}

//export get_record_id
func get_record_id(storageHandle, recordHandle C.int, idOut **C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	rec, err := engine.GetRecord(int32(recordHandle))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	key := recordAllocKey(int32(storageHandle), int32(recordHandle))
	*idOut = recordAllocs.cstring(key, rec.ID)
	return C.int(errors.Success)
}

//export get_record_value
func get_record_value(storageHandle, recordHandle C.int, valueOut **C.uchar, valueLenOut *C.size_t) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	rec, err := engine.GetRecord(int32(recordHandle))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	value, err := rec.GetValue()
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	key := recordAllocKey(int32(storageHandle), int32(recordHandle))
	*valueOut, *valueLenOut = recordAllocs.cbytes(key, value)
	return C.int(errors.Success)
}

//export get_record_tags
func get_record_tags(storageHandle, recordHandle C.int, tagsJSONOut **C.char) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	rec, err := engine.GetRecord(int32(recordHandle))
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	tagsJSON, err := rec.GetTags()
	if err != nil {
		return C.int(errors.StatusCode(err))
	}

	key := recordAllocKey(int32(storageHandle), int32(recordHandle))
	*tagsJSONOut = recordAllocs.cstring(key, tagsJSON)
	return C.int(errors.Success)
}

//export free_record
func free_record(storageHandle, recordHandle C.int) C.int {
	engine, code := lookupWallet(storageHandle)
	if code != errors.Success {
		return C.int(code)
	}
	if err := engine.FreeRecord(int32(recordHandle)); err != nil {
		return C.int(errors.StatusCode(err))
	}
	recordAllocs.free(recordAllocKey(int32(storageHandle), int32(recordHandle)))
	return C.int(errors.Success)
}
