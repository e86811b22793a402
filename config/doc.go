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

// Package config loads the bootstrap configuration consumed by
// cmd/walletstoragectl and by any host process embedding this engine:
// log level/format, the metrics bind address, and a default pool
// endpoint used as a CLI convenience so operators do not have to repeat
// --write-host/--read-host/--port/--db-name on every invocation.
//
// This is distinct from the per-call JSON Config/Credentials the
// storage engine itself parses per operation (storage.Config,
// storage.Credentials) - those travel with every create/open call and
// have no process-wide default.
//
// Bootstrap is loaded with spf13/viper, layering (highest precedence
// first): explicit flags set by the CLI, WALLETSTORAGE_* environment
// variables, a config file (YAML or JSON, found via LoadBootstrap's
// path argument or the default search paths), then the defaults
// registered in DefaultBootstrap.
//
//	cfg, err := config.LoadBootstrap("walletstorage.yaml")
//	logger := logging.NewStructuredLoggerWithFormat(logging.Level(cfg.Logging.Level), cfg.Logging.Format, os.Stderr)
package config
