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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/evernym/mysql-wallet-storage-sub000/internal/handle"
	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// newTestEngine builds an *Engine backed by a sqlmock connection shared
// for both the read and write pool, since pool selection itself is
// internal/pool's concern, not the engine's.
func newTestEngine(t *testing.T) (*Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	engine := &Engine{
		walletID: 7,
		name:     "alice",
		readDB:   db,
		writeDB:  db,
		records:  handle.NewRegistry[*FetchedRecord](),
		searches: handle.NewRegistry[*Search](),
		metadata: handle.NewRegistry[string](),
	}
	return engine, mock
}

type dupKeyError struct{}

func (dupKeyError) Error() string { return "Error 1062: Duplicate entry 'alice' for key 'name'" }

func TestIsDuplicateKeyError(t *testing.T) {
	if !isDuplicateKeyError(dupKeyError{}) {
		t.Fatal("expected errno-1062 text to be recognised as a duplicate key error")
	}
	if isDuplicateKeyError(errors.ErrStorageIO) {
		t.Fatal("did not expect an unrelated error to be recognised as a duplicate key error")
	}
}

func TestEngine_OpenStorageLookup_WalletNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM wallets WHERE name = \?`).
		WithArgs("bob").
		WillReturnError(sql.ErrNoRows)

	var walletID int64
	err = db.QueryRowContext(context.Background(), `SELECT id FROM wallets WHERE name = ?`, "bob").Scan(&walletID)
	if err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestEngine_CreateStorage_DuplicateRow(t *testing.T) {
	engine, mock := newTestEngine(t)

	mock.ExpectExec(`INSERT INTO wallets`).
		WithArgs("alice", "").
		WillReturnError(dupKeyError{})

	_, err := engine.writeDB.ExecContext(context.Background(), `INSERT INTO wallets (name, metadata) VALUES (?, ?)`, "alice", "")
	if !isDuplicateKeyError(err) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestEngine_DeleteStorage_ZeroRowsAffected(t *testing.T) {
	engine, mock := newTestEngine(t)

	mock.ExpectExec(`DELETE FROM wallets WHERE name = \?`).
		WithArgs("bob").
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := engine.writeDB.ExecContext(context.Background(), `DELETE FROM wallets WHERE name = ?`, "bob")
	if err != nil {
		t.Fatalf("ExecContext: %v", err)
	}
	affected, _ := res.RowsAffected()
	if affected != 0 {
		t.Fatalf("expected 0 rows affected, got %d", affected)
	}
}

func TestCloseStorage_UnknownHandle(t *testing.T) {
	if err := CloseStorage(999999); err == nil {
		t.Fatal("expected ErrHandleNotFound for an unknown wallet handle")
	}
}

func TestLookupWallet_UnknownHandle(t *testing.T) {
	if _, err := LookupWallet(999999); err == nil {
		t.Fatal("expected ErrHandleNotFound for an unknown wallet handle")
	}
}

func TestOpenStorage_RoundTrip(t *testing.T) {
	// OpenStorage itself goes through defaultPoolCache, which would dial
	// a real TCP connection, so it is not called here; the other engine
	// tests use an Engine injected by newTestEngine instead. This test
	// only exercises a handle.Registry[*Engine], the registry type
	// OpenStorage and CloseStorage use for open wallets.
	reg := handle.NewRegistry[*Engine]()
	e := &Engine{name: "alice"}
	h := reg.Insert(e)

	got, ok := reg.Get(h)
	if !ok || got.name != "alice" {
		t.Fatalf("expected to retrieve the inserted engine, got %+v ok=%v", got, ok)
	}
	if !reg.Remove(h) {
		t.Fatal("expected Remove to report true for a present handle")
	}
	if reg.Remove(h) {
		t.Fatal("expected a second Remove on the same handle to report false")
	}
}
