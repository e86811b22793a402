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

// Bootstrap is the ambient, process-level configuration for the CLI and
// any host embedding this engine. It has no bearing on a wallet's own
// identity - that travels per-call as storage.Config/storage.Credentials.
type Bootstrap struct {
	Logging LoggingConfig
	Metrics MetricsConfig
	Pool    PoolConfig
}

// LoggingConfig selects the structured logger's verbosity and output
// shape.
type LoggingConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "console"
}

// MetricsConfig controls the standalone Prometheus endpoint `serve-
// metrics` binds.
type MetricsConfig struct {
	Enabled bool
	Address string
	Path    string
}

// PoolConfig is the CLI's default endpoint, used so an operator does
// not have to repeat --write-host/--read-host/--port/--db-name on every invocation of
// wallet/record/query subcommands. It mirrors storage.Config's shape
// exactly but lives here because it is a *default*, not a per-call
// value.
type PoolConfig struct {
	ReadHost  string
	WriteHost string
	Port      uint16
	DBName    string
}

// DefaultBootstrap returns the configuration used when no file,
// environment variable, or flag overrides a given field.
func DefaultBootstrap() *Bootstrap {
	return &Bootstrap{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Address: ":9090",
			Path:    "/metrics",
		},
		Pool: PoolConfig{
			Port: 3306,
		},
	}
}
