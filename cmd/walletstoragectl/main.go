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
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/evernym/mysql-wallet-storage-sub000/config"
	"github.com/evernym/mysql-wallet-storage-sub000/observability/logging"
	"github.com/evernym/mysql-wallet-storage-sub000/observability/metrics"
	"github.com/evernym/mysql-wallet-storage-sub000/storage"
)

var (
	version = "0.1.0"

	cfgFile string
	bootCfg *config.Bootstrap

	collector *metrics.PrometheusCollector
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "walletstoragectl",
	Short:   "Administrative CLI for the MySQL wallet storage engine",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadBootstrap(cfgFile)
		if err != nil {
			return fmt.Errorf("load bootstrap config: %w", err)
		}
		bootCfg = cfg

		logger := logging.NewStructuredLoggerWithFormat(logging.Level(cfg.Logging.Level), cfg.Logging.Format, os.Stderr)
		storage.SetLogger(logger)

		if cfg.Metrics.Enabled {
			collector = metrics.NewPrometheusCollector()
			storage.SetMetrics(metrics.NewWalletMetrics(collector))
		}

		cmd.SetContext(logging.WithRequestID(cmd.Context(), uuid.NewString()))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a walletstorage.yaml/json bootstrap config file")

	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(serveMetricsCmd)
}
