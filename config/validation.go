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

package config

import (
	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
var validFormats = map[string]bool{"json": true, "console": true}

// Validate rejects a Bootstrap whose logging configuration names a
// level or format this repository's logger does not implement. The
// Pool section is intentionally unvalidated here: an empty default
// endpoint is legal (every CLI subcommand accepts --write-host/--read-host/--port/--db-name to
// override it), so "not yet configured" is not an error.
func (b *Bootstrap) Validate() error {
	if !validLevels[b.Logging.Level] {
		return errors.ErrInvalidValue.WithDetail("logging.level", b.Logging.Level)
	}
	if !validFormats[b.Logging.Format] {
		return errors.ErrInvalidValue.WithDetail("logging.format", b.Logging.Format)
	}
	return nil
}
