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

// Package errors provides structured error handling for the wallet storage
// engine.
//
// The package defines a comprehensive error system with:
//
//   - Categorized errors for different domains
//   - Rich error context with details
//   - Standard Go error wrapping support
//   - Type-safe error checking
//   - A stable numeric ABICode carried alongside every error for the C
//     boundary, independent of the Go-side Category/Code pair
//
// # Error Categories
//
// Errors are organized into categories:
//
//   - Structure: malformed WQL documents, bad operator shapes, invalid UTF-8
//   - State: unknown handles, unretrieved fields, drained search cursors
//   - Existence: wallet and record create/fetch conflicts
//   - Backend: database connectivity and driver errors
//   - Internal: internal errors with no better category
//
// # Creating Errors
//
// Use predefined errors:
//
//	err := errors.ErrInvalidInput.WithDetail("field", "tagName")
//
// Or create custom errors:
//
//	err := errors.New(
//	    errors.CategoryStructure,
//	    "CUSTOM_ERROR",
//	    "custom error message",
//	)
//
// # Wrapping Errors
//
// Wrap errors to add context:
//
//	if err := validateTagName(name); err != nil {
//	    return errors.ErrInvalidInput.
//	        WithMessage("tag name validation failed").
//	        Wrap(err)
//	}
//
// # Error Checking
//
// Check error types using standard Go patterns:
//
//	// Check if error matches a specific type
//	if errors.Is(err, errors.ErrItemNotFound) {
//	    // handle not found
//	}
//
//	// Extract error details
//	var engErr *errors.Error
//	if errors.As(err, &engErr) {
//	    log.Printf("Code: %s, Details: %v", engErr.Code, engErr.Details)
//	}
//
// # Crossing the C ABI
//
// Every predefined error carries a Status ABICode. Use StatusCode to map
// any error - predefined or wrapped - to the numeric code a cgo export
// function writes into its out-parameter:
//
//	status := errors.StatusCode(err)
package errors
