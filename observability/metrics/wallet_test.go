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

import "testing"

func TestWalletMetrics_DoesNotPanic(t *testing.T) {
	m := NewWalletMetrics(NewPrometheusCollector())

	m.SetPoolCacheSize(2)
	m.SetRegistrySize("record", 5)
	m.SetRegistrySize("search", 1)
	m.ObserveQueryDuration("add_record", 0.012)
	m.RecordOperationError("fetch_record", "ItemNotFound")
}

func TestWalletMetrics_RepeatedCallsReuseSeries(t *testing.T) {
	m := NewWalletMetrics(NewPrometheusCollector())

	for i := 0; i < 3; i++ {
		m.SetRegistrySize("record", i)
		m.ObserveQueryDuration("search_records", float64(i)*0.01)
	}
}
