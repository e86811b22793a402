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

// Package storage is the wallet storage engine: it owns wallet identity,
// maps record and tag operations onto transactional SQL against a MySQL/
// Aurora backend, and hands callers stable handles for open wallets,
// fetched records, and active searches.
//
// # Wallet lifecycle
//
// A wallet is a named logical container identified by a server-assigned
// wallet id. CreateStorage inserts a row in the wallets table;
// OpenStorage resolves the wallet id by name and returns an *Engine tied
// to a read pool and a write pool; CloseStorage drops the engine's
// entry from the process-wide wallet registry. DeleteStorage removes the
// wallet row (and, via the schema's foreign key, cascades to its items).
//
//	cfg := storage.Config{WriteHost: "db.internal", ReadHost: "db-ro.internal", Port: 3306, DBName: "wallets"}
//	creds := storage.Credentials{User: "wallet", Pass: "secret"}
//	storage.CreateStorage(ctx, "alice", cfg, creds, "")
//	handle, err := storage.OpenStorage(ctx, "alice", cfg, creds)
//	engine, _ := storage.LookupWallet(handle)
//	defer storage.CloseStorage(handle)
//
// # Records
//
// Records are (type, id)-addressed within a wallet and carry an opaque
// value plus a tag map. Tag names beginning with "~" are plain-text
// (ordered, LIKE-able); all others are encrypted (equality and set
// membership only). AddRecord is transactional: the item row and its
// JSON tags column commit or roll back together.
//
// FetchRecord and the search cursor's FetchSearchNextRecord both produce
// a *FetchedRecord, registered under the wallet's record registry; its
// fields are populated according to the caller's FetchOptions/
// SearchOptions and remain valid until FreeRecord releases the handle.
//
// # Search
//
// SearchRecords compiles a wql.Operator into SQL via wql.CompileFetch/
// wql.CompileCount and returns a lazy, forward-only cursor. Once
// exhausted, FetchSearchNextRecord keeps failing until FreeSearch is
// called.
package storage
