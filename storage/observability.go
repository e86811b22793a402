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

package storage

import (
	"context"
	"time"

	"github.com/evernym/mysql-wallet-storage-sub000/observability/logging"
	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// Metrics is the subset of observability/metrics.WalletMetrics this
// package depends on, kept narrow so storage does not import
// prometheus directly - a host embedding this engine that already has
// its own Prometheus registry can supply any implementation.
type Metrics interface {
	SetPoolCacheSize(n int)
	SetRegistrySize(kind string, n int)
	ObserveQueryDuration(operation string, seconds float64)
	RecordOperationError(operation, abiCode string)
}

type noopMetrics struct{}

func (noopMetrics) SetPoolCacheSize(int)             {}
func (noopMetrics) SetRegistrySize(string, int)      {}
func (noopMetrics) ObserveQueryDuration(string, float64) {}
func (noopMetrics) RecordOperationError(string, string)  {}

var (
	log     logging.Logger = logging.NewNop()
	metrics Metrics        = noopMetrics{}
)

// SetLogger installs the Logger every storage-engine operation logs
// against. Call once at process start, before any wallet is opened;
// the engine takes no lock around log, so switching loggers while
// concurrent calls are in flight races.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NewNop()
	}
	log = l
}

// SetMetrics installs the Metrics recorder every storage-engine
// operation reports against. Same caller-discipline note as SetLogger.
func SetMetrics(m Metrics) {
	if m == nil {
		m = noopMetrics{}
	}
	metrics = m
}

// logOperationError logs err at the severity its ABI category implies
// (Debug for caller mistakes, Warn for expected existence/state
// conditions, Error for backend failures) and records it in metrics.
func logOperationError(ctx context.Context, operation, walletName string, err error) {
	ctx = logging.WithOperation(ctx, operation)
	if walletName != "" {
		ctx = logging.WithWalletName(ctx, walletName)
	}

	code := errors.StatusCode(err)
	metrics.RecordOperationError(operation, code.String())

	fields := []logging.Field{logging.String("abi_code", code.String())}
	switch {
	case errors.IsCategory(err, errors.CategoryStructure):
		log.Debug(ctx, "storage operation rejected by caller", append(fields, logging.Error(err))...)
	case errors.IsCategory(err, errors.CategoryBackend) || errors.IsCategory(err, errors.CategoryInternal):
		log.Error(ctx, "storage operation failed", append(fields, logging.Error(err))...)
	default:
		log.Warn(ctx, "storage operation did not complete", append(fields, logging.Error(err))...)
	}
}

// timeQuery runs fn, observing its wall-clock duration under operation
// regardless of outcome.
func timeQuery(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.ObserveQueryDuration(operation, time.Since(start).Seconds())
	return err
}
