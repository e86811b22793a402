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
	"net/http"

	"github.com/spf13/cobra"

	"github.com/evernym/mysql-wallet-storage-sub000/observability/metrics"
)

var serveMetricsCmd = &cobra.Command{
	Use:   "serve-metrics",
	Short: "Bind the Prometheus handler standalone, for scraping during manual operation",
	Long: `serve-metrics binds an HTTP listener exposing whatever metrics this
process records. It is independent of cfg.Metrics.Enabled: running it
always starts a collector, even if "wallet"/"record"/"query" commands
were never instrumented in this invocation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if collector == nil {
			collector = metrics.NewPrometheusCollector()
		}

		addr := bootCfg.Metrics.Address
		path := bootCfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}

		mux := http.NewServeMux()
		mux.Handle(path, collector.Handler())

		fmt.Printf("serving metrics on %s%s\n", addr, path)
		return http.ListenAndServe(addr, mux)
	},
}
