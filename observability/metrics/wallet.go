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

package metrics

// WalletMetrics records the gauges and histogram this codebase exposes
// for the storage engine: pool-cache size, handle-registry occupancy
// per kind, and query duration per operation.
type WalletMetrics struct {
	collector Collector
}

// NewWalletMetrics wraps collector with the storage engine's metric
// names.
func NewWalletMetrics(collector Collector) *WalletMetrics {
	return &WalletMetrics{collector: collector}
}

// SetPoolCacheSize reports the number of distinct (host, port, db, user)
// connection pools currently cached.
func (m *WalletMetrics) SetPoolCacheSize(n int) {
	m.collector.SetGauge("walletstorage_pool_cache_size", float64(n), nil)
}

// SetRegistrySize reports the number of live handles of the given kind
// ("wallet", "record", "search", "metadata").
func (m *WalletMetrics) SetRegistrySize(kind string, n int) {
	m.collector.SetGauge("walletstorage_handle_registry_size", float64(n), map[string]string{
		"kind": kind,
	})
}

// ObserveQueryDuration records how long a storage-engine operation took
// against the database, in seconds.
func (m *WalletMetrics) ObserveQueryDuration(operation string, seconds float64) {
	m.collector.ObserveHistogram("walletstorage_query_duration_seconds", seconds, map[string]string{
		"operation": operation,
	})
}

// RecordOperationError increments a counter of failed operations by
// operation name and the ABI error code they resolved to.
func (m *WalletMetrics) RecordOperationError(operation, abiCode string) {
	m.collector.IncrementCounter("walletstorage_operation_errors_total", map[string]string{
		"operation": operation,
		"code":      abiCode,
	})
}
