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
	"database/sql"
	goerrors "errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/evernym/mysql-wallet-storage-sub000/internal/handle"
	"github.com/evernym/mysql-wallet-storage-sub000/internal/pool"
	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// mysqlDuplicateKeyErrno is the MySQL/Aurora error number for a unique
// or primary key constraint violation (ER_DUP_ENTRY).
const mysqlDuplicateKeyErrno = 1062

// Engine owns a single open wallet's identity and connections. It shares
// (does not own) its read/write pools with every other wallet opened
// against the same endpoint, and exclusively owns its record and search
// registries.
type Engine struct {
	walletID int64
	name     string
	readDB   *sql.DB
	writeDB  *sql.DB

	records  *handle.Registry[*FetchedRecord]
	searches *handle.Registry[*Search]
	metadata *handle.Registry[string]
}

// defaultPoolCache backs every package-level storage call. Lazily
// initialised on first use, process-lifetime, never torn down - there
// is no explicit teardown API, matching the design note that global
// state needs none.
var defaultPoolCache = pool.NewCache()

// wallets is the process-wide registry of open wallets, keyed by the
// 32-bit handle returned from OpenStorage.
var wallets = handle.NewRegistry[*Engine]()

// CreateStorage inserts a new wallet row. It fails with
// errors.ErrWalletAlreadyExists on a duplicate name.
func CreateStorage(ctx context.Context, name string, cfg Config, creds Credentials, metadata string) error {
	err := createStorage(ctx, name, cfg, creds, metadata)
	if err != nil {
		logOperationError(ctx, "create_storage", name, err)
	}
	return err
}

func createStorage(ctx context.Context, name string, cfg Config, creds Credentials, metadata string) error {
	db, err := defaultPoolCache.Get(ctx, false, cfg.toPoolConfig(), creds.toPoolCredentials())
	if err != nil {
		return err
	}
	metrics.SetPoolCacheSize(defaultPoolCache.Len())

	return timeQuery("create_storage", func() error {
		_, err := db.ExecContext(ctx, `INSERT INTO wallets (name, metadata) VALUES (?, ?)`, name, metadata)
		if err != nil {
			if isDuplicateKeyError(err) {
				return errors.ErrWalletAlreadyExists.WithDetail("name", name)
			}
			return errors.ErrStorageIO.Wrap(err)
		}
		return nil
	})
}

// DeleteStorage removes a wallet row. The schema's foreign key cascades
// the delete to every item and tag belonging to the wallet.
func DeleteStorage(ctx context.Context, name string, cfg Config, creds Credentials) error {
	err := deleteStorage(ctx, name, cfg, creds)
	if err != nil {
		logOperationError(ctx, "delete_storage", name, err)
	}
	return err
}

func deleteStorage(ctx context.Context, name string, cfg Config, creds Credentials) error {
	db, err := defaultPoolCache.Get(ctx, false, cfg.toPoolConfig(), creds.toPoolCredentials())
	if err != nil {
		return err
	}
	metrics.SetPoolCacheSize(defaultPoolCache.Len())

	return timeQuery("delete_storage", func() error {
		res, err := db.ExecContext(ctx, `DELETE FROM wallets WHERE name = ?`, name)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		if affected == 0 {
			return errors.ErrWalletNotFound.WithDetail("name", name)
		}
		return nil
	})
}

// OpenStorage resolves name to a wallet id, constructs an Engine over
// the read and write pools for cfg, registers it, and returns the
// resulting storage handle.
func OpenStorage(ctx context.Context, name string, cfg Config, creds Credentials) (int32, error) {
	h, err := openStorage(ctx, name, cfg, creds)
	if err != nil {
		logOperationError(ctx, "open_storage", name, err)
	}
	return h, err
}

func openStorage(ctx context.Context, name string, cfg Config, creds Credentials) (int32, error) {
	writeDB, err := defaultPoolCache.Get(ctx, false, cfg.toPoolConfig(), creds.toPoolCredentials())
	if err != nil {
		return 0, err
	}
	readDB, err := defaultPoolCache.Get(ctx, true, cfg.toPoolConfig(), creds.toPoolCredentials())
	if err != nil {
		return 0, err
	}
	metrics.SetPoolCacheSize(defaultPoolCache.Len())

	var walletID int64
	err = timeQuery("open_storage", func() error {
		err := readDB.QueryRowContext(ctx, `SELECT id FROM wallets WHERE name = ?`, name).Scan(&walletID)
		if goerrors.Is(err, sql.ErrNoRows) {
			return errors.ErrWalletNotFound.WithDetail("name", name)
		}
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	engine := &Engine{
		walletID: walletID,
		name:     name,
		readDB:   readDB,
		writeDB:  writeDB,
		records:  handle.NewRegistry[*FetchedRecord](),
		searches: handle.NewRegistry[*Search](),
		metadata: handle.NewRegistry[string](),
	}
	h := wallets.Insert(engine)
	metrics.SetRegistrySize("wallet", wallets.Len())
	return h, nil
}

// LookupWallet resolves a storage handle to its Engine, as any engine
// call dispatched through the C ABI must before delegating.
func LookupWallet(walletHandle int32) (*Engine, error) {
	engine, ok := wallets.Get(walletHandle)
	if !ok {
		return nil, errors.ErrHandleNotFound
	}
	return engine, nil
}

// CloseStorage removes walletHandle from the process-wide wallet
// registry. Every record and search handle the wallet owned is
// implicitly invalidated: their registries are only reachable through
// the Engine this call just dropped, and the Engine itself is released
// for garbage collection once the last outstanding Go reference to it
// (e.g. one held across a concurrent call already in flight) drops.
func CloseStorage(walletHandle int32) error {
	if !wallets.Remove(walletHandle) {
		err := errors.ErrHandleNotFound
		logOperationError(context.Background(), "close_storage", "", err)
		return err
	}
	metrics.SetRegistrySize("wallet", wallets.Len())
	return nil
}

// isDuplicateKeyError reports whether err is a MySQL/Aurora unique-key
// violation (ER_DUP_ENTRY, errno 1062).
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	if goerrors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateKeyErrno
	}
	// go-sqlmock, used by this package's own tests, returns plain errors
	// that can only carry the errno as text.
	return strings.Contains(err.Error(), "1062")
}
