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

import (
	"testing"
)

func TestPredefinedErrors_Structure(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		category ErrorCategory
		code     string
	}{
		{"ErrInvalidInput", ErrInvalidInput, CategoryStructure, "INVALID_INPUT"},
		{"ErrMissingField", ErrMissingField, CategoryStructure, "MISSING_FIELD"},
		{"ErrInvalidFormat", ErrInvalidFormat, CategoryStructure, "INVALID_FORMAT"},
		{"ErrInvalidValue", ErrInvalidValue, CategoryStructure, "INVALID_VALUE"},
		{"ErrOutOfRange", ErrOutOfRange, CategoryStructure, "OUT_OF_RANGE"},
		{"ErrEncryptedTagComparison", ErrEncryptedTagComparison, CategoryStructure, "ENCRYPTED_TAG_COMPARISON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != tt.category {
				t.Errorf("Category = %v, want %v", tt.err.Category, tt.category)
			}
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.Status != InvalidStructure {
				t.Errorf("Status = %v, want %v", tt.err.Status, InvalidStructure)
			}
		})
	}
}

func TestPredefinedErrors_State(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
	}{
		{"ErrHandleNotFound", ErrHandleNotFound},
		{"ErrFieldNotRetrieved", ErrFieldNotRetrieved},
		{"ErrSearchExhausted", ErrSearchExhausted},
		{"ErrNoTotalCount", ErrNoTotalCount},
		{"ErrInvalidUTF8", ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != CategoryState {
				t.Errorf("Category = %v, want %v", tt.err.Category, CategoryState)
			}
			if tt.err.Code == "" {
				t.Error("Code should not be empty")
			}
			if tt.err.Message == "" {
				t.Error("Message should not be empty")
			}
		})
	}
}

func TestPredefinedErrors_Existence(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status ABICode
	}{
		{"ErrWalletAlreadyExists", ErrWalletAlreadyExists, WalletAlreadyExists},
		{"ErrWalletNotFound", ErrWalletNotFound, WalletNotFound},
		{"ErrRecordAlreadyExists", ErrRecordAlreadyExists, RecordAlreadyExists},
		{"ErrItemNotFound", ErrItemNotFound, ItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != CategoryExistence {
				t.Errorf("Category = %v, want %v", tt.err.Category, CategoryExistence)
			}
			if tt.err.Status != tt.status {
				t.Errorf("Status = %v, want %v", tt.err.Status, tt.status)
			}
		})
	}
}

func TestPredefinedErrors_Backend(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
	}{
		{"ErrStorageConnection", ErrStorageConnection},
		{"ErrStorageIO", ErrStorageIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != CategoryBackend {
				t.Errorf("Category = %v, want %v", tt.err.Category, CategoryBackend)
			}
			if tt.err.Status != IOError {
				t.Errorf("Status = %v, want %v", tt.err.Status, IOError)
			}
		})
	}
}

func TestPredefinedErrors_Internal(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
	}{
		{"ErrInternal", ErrInternal},
		{"ErrConfigurationError", ErrConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Category != CategoryInternal {
				t.Errorf("Category = %v, want %v", tt.err.Category, CategoryInternal)
			}
		})
	}
}

func TestErrorUsage_WithDetails(t *testing.T) {
	// Test realistic usage scenario
	err := ErrInvalidInput.
		WithDetail("field", "tagName").
		WithDetail("reason", "empty value")

	if err.Details["field"] != "tagName" {
		t.Errorf("field detail = %v, want tagName", err.Details["field"])
	}

	if err.Details["reason"] != "empty value" {
		t.Errorf("reason detail = %v, want empty value", err.Details["reason"])
	}
}

func TestErrorUsage_ChainedOperations(t *testing.T) {
	// Test chaining operations
	err := ErrStorageConnection.
		WithMessage("failed to connect to MySQL").
		WithDetails(map[string]interface{}{
			"host":    "localhost:3306",
			"timeout": "5s",
		})

	if err.Details["host"] != "localhost:3306" {
		t.Errorf("host = %v, want localhost:3306", err.Details["host"])
	}
}
