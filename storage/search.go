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
	"fmt"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
	"github.com/evernym/mysql-wallet-storage-sub000/wql"
)

// Search is a server-side, forward-only cursor plus result-shape
// configuration. Its state machine is Fresh -> Active -> Exhausted:
// once FetchSearchNextRecord drains the cursor, every subsequent call
// keeps failing with errors.ErrSearchExhausted until FreeSearch runs.
type Search struct {
	rows     *sql.Rows
	opts     SearchOptions
	total    *int
	drained  bool
}

// SearchRecords compiles query into SQL, optionally computes a total
// count up front, and opens a lazy cursor over the matching rows. query
// may be empty; it is then parsed as "{}", an unconditional match.
func (e *Engine) SearchRecords(ctx context.Context, recordType string, query []byte, opts SearchOptions) (h int32, err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "search_records", e.name, err)
		}
	}()
	err = timeQuery("search_records", func() error {
		if len(query) == 0 {
			query = []byte("{}")
		}
		op, err := wql.Parse(query)
		if err != nil {
			return err
		}

		search := &Search{opts: opts}

		if opts.RetrieveTotalCount {
			total, err := e.countMatching(ctx, recordType, op)
			if err != nil {
				return err
			}
			search.total = &total
		}

		if opts.RetrieveRecords {
			rows, err := e.queryMatching(ctx, recordType, op, opts)
			if err != nil {
				return err
			}
			search.rows = rows
		}

		h = e.searches.Insert(search)
		metrics.SetRegistrySize("search", e.searches.Len())
		return nil
	})
	return h, err
}

// SearchAllRecords is equivalent to SearchRecords with an unconditional
// predicate and no type restriction: it matches every record in the
// wallet regardless of type. Record retrieval is always enabled;
// column projection still follows opts.
func (e *Engine) SearchAllRecords(ctx context.Context, opts SearchOptions) (h int32, err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "search_all_records", e.name, err)
		}
	}()
	err = timeQuery("search_all_records", func() error {
		opts.RetrieveRecords = true

		search := &Search{opts: opts}

		if opts.RetrieveTotalCount {
			var total int
			err := e.readDB.QueryRowContext(ctx, `SELECT count(*) FROM items WHERE wallet_id = ?`, e.walletID).Scan(&total)
			if err != nil {
				return errors.ErrStorageIO.Wrap(err)
			}
			search.total = &total
		}

		query := fmt.Sprintf(
			`SELECT type, name, %s, %s FROM items WHERE wallet_id = ?`,
			nullable(opts.RetrieveValue, "value"), nullable(opts.RetrieveTags, "tags"))
		rows, err := e.readDB.QueryContext(ctx, query, e.walletID)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		search.rows = rows

		h = e.searches.Insert(search)
		metrics.SetRegistrySize("search", e.searches.Len())
		return nil
	})
	return h, err
}

func (e *Engine) countMatching(ctx context.Context, recordType string, op wql.Operator) (int, error) {
	query, args, err := wql.CompileCount(e.walletID, recordType, op)
	if err != nil {
		return 0, err
	}

	var total int
	if err := e.readDB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, errors.ErrStorageIO.Wrap(err)
	}
	return total, nil
}

func (e *Engine) queryMatching(ctx context.Context, recordType string, op wql.Operator, opts SearchOptions) (*sql.Rows, error) {
	proj := wql.Projection{Type: opts.RetrieveType, Value: opts.RetrieveValue, Tags: opts.RetrieveTags}
	query, args, err := wql.CompileFetch(e.walletID, recordType, op, proj)
	if err != nil {
		return nil, err
	}

	rows, err := e.readDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.ErrStorageIO.Wrap(err)
	}
	return rows, nil
}

// GetSearch resolves searchHandle to its *Search.
func (e *Engine) GetSearch(searchHandle int32) (*Search, error) {
	search, ok := e.searches.Get(searchHandle)
	if !ok {
		return nil, errors.ErrHandleNotFound
	}
	return search, nil
}

// FetchSearchNextRecord advances the search's cursor by one row,
// materialising it into the wallet's record registry. Once the cursor
// is exhausted (or the search never opened one, e.g.
// opts.RetrieveRecords was false), it keeps returning
// errors.ErrSearchExhausted.
func (e *Engine) FetchSearchNextRecord(searchHandle int32) (int32, error) {
	search, err := e.GetSearch(searchHandle)
	if err != nil {
		return 0, err
	}

	if search.rows == nil || search.drained {
		search.drained = true
		return 0, errors.ErrSearchExhausted
	}

	if !search.rows.Next() {
		search.drained = true
		if err := search.rows.Err(); err != nil {
			return 0, errors.ErrStorageIO.Wrap(err)
		}
		search.rows.Close()
		return 0, errors.ErrSearchExhausted
	}

	var rawType, rawName, rawTags sql.NullString
	var rawValue []byte
	if err := search.rows.Scan(&rawType, &rawName, &rawValue, &rawTags); err != nil {
		return 0, errors.ErrStorageIO.Wrap(err)
	}

	rec := &FetchedRecord{ID: rawName.String}
	if search.opts.RetrieveType {
		rec.recordType = rawType.String
		rec.hasType = true
	}
	if search.opts.RetrieveValue {
		rec.value = rawValue
		rec.hasValue = true
	}
	if search.opts.RetrieveTags {
		rec.tagsJSON = rawTags.String
		rec.hasTags = true
	}

	h := e.records.Insert(rec)
	metrics.SetRegistrySize("record", e.records.Len())
	return h, nil
}

// GetSearchTotalCount returns the pre-computed total, failing with
// errors.ErrNoTotalCount if the search never set RetrieveTotalCount.
func (e *Engine) GetSearchTotalCount(searchHandle int32) (int, error) {
	search, err := e.GetSearch(searchHandle)
	if err != nil {
		return 0, err
	}
	if search.total == nil {
		return 0, errors.ErrNoTotalCount
	}
	return *search.total, nil
}

// FreeSearch closes the underlying cursor (if one was opened) and
// removes the search from the wallet's registry.
func (e *Engine) FreeSearch(searchHandle int32) error {
	search, ok := e.searches.Get(searchHandle)
	if !ok {
		return errors.ErrHandleNotFound
	}
	if search.rows != nil {
		search.rows.Close()
	}
	e.searches.Remove(searchHandle)
	metrics.SetRegistrySize("search", e.searches.Len())
	return nil
}
