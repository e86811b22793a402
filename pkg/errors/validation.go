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

// Structural errors - malformed WQL documents and bad C ABI arguments.
var (
	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = &Error{
		Category: CategoryStructure,
		Code:     "INVALID_INPUT",
		Message:  "invalid input provided",
		Status:   InvalidStructure,
	}

	// ErrMissingField indicates a required field is missing.
	ErrMissingField = &Error{
		Category: CategoryStructure,
		Code:     "MISSING_FIELD",
		Message:  "required field is missing",
		Status:   InvalidStructure,
	}

	// ErrInvalidFormat indicates a WQL document was not valid JSON or did
	// not match the expected predicate shape.
	ErrInvalidFormat = &Error{
		Category: CategoryStructure,
		Code:     "INVALID_FORMAT",
		Message:  "invalid format",
		Status:   InvalidStructure,
	}

	// ErrInvalidValue indicates an invalid value.
	ErrInvalidValue = &Error{
		Category: CategoryStructure,
		Code:     "INVALID_VALUE",
		Message:  "invalid value",
		Status:   InvalidStructure,
	}

	// ErrOutOfRange indicates a value is out of valid range.
	ErrOutOfRange = &Error{
		Category: CategoryStructure,
		Code:     "OUT_OF_RANGE",
		Message:  "value out of valid range",
		Status:   InvalidStructure,
	}

	// ErrEncryptedTagComparison indicates a range or wildcard operator
	// was applied to an encrypted tag name, which only supports
	// equality, inequality and set-membership comparisons.
	ErrEncryptedTagComparison = &Error{
		Category: CategoryStructure,
		Code:     "ENCRYPTED_TAG_COMPARISON",
		Message:  "range and wildcard operators require a plain-text tag name",
		Status:   InvalidStructure,
	}
)
