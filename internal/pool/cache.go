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

// Package pool maintains a keyed cache of MySQL connection pools, one per
// distinct (user, host, port, db) endpoint, constructing each lazily on
// first use and sharing it across every wallet opened against the same
// endpoint.
package pool

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"golang.org/x/sync/singleflight"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

const (
	minConns = 1
	maxConns = 100
)

// Config identifies a pair of MySQL endpoints (read and write) and the
// target database, mirroring the Config JSON accepted at the C ABI.
type Config struct {
	ReadHost string
	WriteHost string
	Port     uint16
	DBName   string
}

// Credentials authenticates against a Config's endpoints.
type Credentials struct {
	User string
	Pass string
}

type key struct {
	user string
	host string
	port uint16
	db   string
}

// Cache returns a shared *sql.DB for a given (user, host, port, db)
// identity, constructing one on first request. It is safe for concurrent
// use; concurrent misses for the same key collapse into a single dial.
type Cache struct {
	mu    sync.RWMutex
	pools map[key]*sql.DB
	group singleflight.Group
}

// NewCache creates an empty pool cache.
func NewCache() *Cache {
	return &Cache{
		pools: make(map[key]*sql.DB),
	}
}

// Get returns the pool for the given endpoint, constructing it if this
// is the first request for that (user, host, port, db) tuple. readOnly
// selects cfg.ReadHost over cfg.WriteHost.
func (c *Cache) Get(ctx context.Context, readOnly bool, cfg Config, creds Credentials) (*sql.DB, error) {
	host := cfg.WriteHost
	if readOnly {
		host = cfg.ReadHost
	}

	k := key{user: creds.User, host: host, port: cfg.Port, db: cfg.DBName}

	c.mu.RLock()
	db, ok := c.pools[k]
	c.mu.RUnlock()
	if ok {
		return db, nil
	}

	groupKey := fmt.Sprintf("%s@%s:%d/%s", k.user, k.host, k.port, k.db)
	v, err, _ := c.group.Do(groupKey, func() (interface{}, error) {
		c.mu.RLock()
		db, ok := c.pools[k]
		c.mu.RUnlock()
		if ok {
			return db, nil
		}

		db, err := c.open(ctx, host, cfg.Port, cfg.DBName, creds)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if existing, ok := c.pools[k]; ok {
			c.mu.Unlock()
			db.Close()
			return existing, nil
		}
		c.pools[k] = db
		c.mu.Unlock()

		return db, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*sql.DB), nil
}

// open dials a fresh pool against host:port/db with clientFoundRows
// enabled, since the storage engine's not-found detection on idempotent
// updates depends on UPDATE reporting matched rather than changed rows.
func (c *Cache) open(ctx context.Context, host string, port uint16, db string, creds Credentials) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?clientFoundRows=true&parseTime=true",
		creds.User, creds.Pass, host, port, db,
	)

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.ErrStorageConnection.Wrap(err)
	}

	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(minConns)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, errors.ErrStorageConnection.Wrap(err)
	}

	return conn, nil
}

// Len reports the number of distinct pools currently cached, for metrics.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pools)
}

// CloseAll closes every cached pool. Intended for tests and graceful
// shutdown of a long-lived host process; the engine itself never calls
// this since pools are process-lifetime by design.
func (c *Cache) CloseAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for k, db := range c.pools {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.pools, k)
	}
	return firstErr
}
