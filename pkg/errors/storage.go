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

package errors

// Existence errors - wallet and record lifecycle conflicts.
var (
	// ErrWalletAlreadyExists indicates create_storage was called with a
	// name that already has a row in the wallets table.
	ErrWalletAlreadyExists = &Error{
		Category: CategoryExistence,
		Code:     "WALLET_ALREADY_EXISTS",
		Message:  "wallet already exists",
		Status:   WalletAlreadyExists,
	}

	// ErrWalletNotFound indicates no wallet row matches the given name.
	ErrWalletNotFound = &Error{
		Category: CategoryExistence,
		Code:     "WALLET_NOT_FOUND",
		Message:  "wallet not found",
		Status:   WalletNotFound,
	}

	// ErrRecordAlreadyExists indicates a duplicate-key violation on
	// (wallet_id, type, name) during add_record.
	ErrRecordAlreadyExists = &Error{
		Category: CategoryExistence,
		Code:     "RECORD_ALREADY_EXISTS",
		Message:  "record already exists",
		Status:   RecordAlreadyExists,
	}

	// ErrItemNotFound indicates a record mutation or fetch matched zero
	// rows: the record, or the wallet item it belongs to, is unknown.
	ErrItemNotFound = &Error{
		Category: CategoryExistence,
		Code:     "ITEM_NOT_FOUND",
		Message:  "item not found",
		Status:   ItemNotFound,
	}
)

// State errors - in-process handle and lifecycle violations.
var (
	// ErrHandleNotFound indicates a storage, record, search, or metadata
	// handle was not present in its registry.
	ErrHandleNotFound = &Error{
		Category: CategoryState,
		Code:     "HANDLE_NOT_FOUND",
		Message:  "handle not found",
		Status:   InvalidState,
	}

	// ErrFieldNotRetrieved indicates an accessor was called for a field
	// that the caller's FetchOptions/SearchOptions excluded.
	ErrFieldNotRetrieved = &Error{
		Category: CategoryState,
		Code:     "FIELD_NOT_RETRIEVED",
		Message:  "field was not retrieved",
		Status:   InvalidState,
	}

	// ErrSearchExhausted indicates fetch_search_next_record was called
	// on a search whose cursor has already been drained.
	ErrSearchExhausted = &Error{
		Category: CategoryState,
		Code:     "SEARCH_EXHAUSTED",
		Message:  "search has no more records",
		Status:   ItemNotFound,
	}

	// ErrNoTotalCount indicates get_search_total_count was called on a
	// search that did not set retrieveTotalCount.
	ErrNoTotalCount = &Error{
		Category: CategoryState,
		Code:     "NO_TOTAL_COUNT",
		Message:  "search did not capture a total count",
		Status:   InvalidState,
	}

	// ErrInvalidUTF8 indicates a C string argument was not valid UTF-8.
	ErrInvalidUTF8 = &Error{
		Category: CategoryState,
		Code:     "INVALID_UTF8",
		Message:  "argument is not valid UTF-8",
		Status:   InvalidState,
	}
)

// Backend errors - database connectivity and driver failures.
var (
	// ErrStorageConnection indicates a pool could not be constructed or
	// a ping against it failed.
	ErrStorageConnection = &Error{
		Category: CategoryBackend,
		Code:     "CONNECTION_ERROR",
		Message:  "storage connection failed",
		Status:   IOError,
	}

	// ErrStorageIO wraps any unexpected driver-level error surfaced by a
	// query or transaction.
	ErrStorageIO = &Error{
		Category: CategoryBackend,
		Code:     "IO_ERROR",
		Message:  "storage operation failed",
		Status:   IOError,
	}
)
