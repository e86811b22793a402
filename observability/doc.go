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

// Package observability is the parent of this repository's two ambient
// subsystems: structured logging (observability/logging) and metrics
// collection (observability/metrics). Bootstrap-level configuration for
// both (log level/format, metrics bind address) lives in the top-level
// config package alongside the CLI's default pool endpoint, since all
// three are read from the same file/environment layer at process start.
//
// # Logging
//
// Structured logging with context propagation, backed by zap:
//
//	logger := logging.NewStructuredLogger(logging.LevelInfo)
//
//	ctx := logging.WithWalletName(ctx, "alice-wallet")
//	logger.Info(ctx, "record added",
//	    logging.String("record_type", "credential"),
//	    logging.Int("duration_ms", 42),
//	)
//
// # Metrics
//
// Collect and expose Prometheus metrics for monitoring:
//
//	collector := metrics.NewPrometheusCollector()
//	walletMetrics := metrics.NewWalletMetrics(collector)
//
//	walletMetrics.SetPoolCacheSize(3)
//	walletMetrics.ObserveQueryDuration("add_record", 0.004)
//
//	http.Handle("/metrics", collector.Handler())
package observability
