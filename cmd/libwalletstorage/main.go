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

// Package main is the C-ABI surface for the wallet storage engine,
// compiled with `go build -buildmode=c-shared`. It holds no logic of
// its own beyond marshaling C strings and byte buffers into calls
// against storage and wql, and translating the resulting error into
// its stable pkg/errors.ABICode.
package main

// #include <stdlib.h>
import "C"

func main() {}
