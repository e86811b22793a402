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

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evernym/mysql-wallet-storage-sub000/storage"
)

// endpointFlags holds the --read-host/--write-host/--port/--db-name/
// --user/--pass flags shared by every subcommand that opens a
// connection. A flag left at its zero value falls back to bootCfg.Pool,
// loaded from the bootstrap config file/environment.
type endpointFlags struct {
	readHost  string
	writeHost string
	port      uint16
	dbName    string
	user      string
	pass      string
}

func addEndpointFlags(cmd *cobra.Command, f *endpointFlags) {
	cmd.Flags().StringVar(&f.readHost, "read-host", "", "read endpoint host (defaults to bootstrap config, then --write-host)")
	cmd.Flags().StringVar(&f.writeHost, "write-host", "", "write endpoint host (defaults to bootstrap config)")
	cmd.Flags().Uint16Var(&f.port, "port", 0, "endpoint port (defaults to bootstrap config)")
	cmd.Flags().StringVar(&f.dbName, "db-name", "", "database name (defaults to bootstrap config)")
	cmd.Flags().StringVar(&f.user, "user", "", "database user")
	cmd.Flags().StringVar(&f.pass, "pass", "", "database password")
}

// resolve merges f with bootCfg.Pool defaults and checks the result for
// the same required fields storage.ParseConfig/storage.ParseCredentials
// enforce on the C ABI side (write host, database name, user).
func (f endpointFlags) resolve() (storage.Config, storage.Credentials, error) {
	writeHost := firstNonEmpty(f.writeHost, bootCfg.Pool.WriteHost)
	readHost := firstNonEmpty(f.readHost, bootCfg.Pool.ReadHost, writeHost)
	port := f.port
	if port == 0 {
		port = bootCfg.Pool.Port
	}
	dbName := firstNonEmpty(f.dbName, bootCfg.Pool.DBName)

	cfg := storage.Config{ReadHost: readHost, WriteHost: writeHost, Port: port, DBName: dbName}
	if cfg.WriteHost == "" || cfg.DBName == "" {
		return storage.Config{}, storage.Credentials{}, fmt.Errorf("write-host and db-name are required (set via flag or bootstrap config)")
	}

	creds := storage.Credentials{User: f.user, Pass: f.pass}
	if creds.User == "" {
		return storage.Config{}, storage.Credentials{}, fmt.Errorf("user is required (set via --user)")
	}
	return cfg, creds, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
