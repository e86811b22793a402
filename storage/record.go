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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// FetchedRecord is a server-side row materialised into an in-memory,
// borrow-stable object. Optional fields reflect the caller's
// FetchOptions/SearchOptions: a field that was not retrieved is left at
// its zero value and its retrieved flag stays false, so the matching
// accessor fails with errors.ErrFieldNotRetrieved rather than returning
// a misleading empty string.
type FetchedRecord struct {
	ID string

	recordType string
	hasType    bool

	value    []byte
	hasValue bool

	tagsJSON string
	hasTags  bool
}

// GetType returns the record's type, if it was retrieved.
func (r *FetchedRecord) GetType() (string, error) {
	if !r.hasType {
		return "", errors.ErrFieldNotRetrieved.WithDetail("field", "type")
	}
	return r.recordType, nil
}

// GetValue returns the record's opaque value, if it was retrieved.
func (r *FetchedRecord) GetValue() ([]byte, error) {
	if !r.hasValue {
		return nil, errors.ErrFieldNotRetrieved.WithDetail("field", "value")
	}
	return r.value, nil
}

// GetTags returns the record's serialised tags JSON, if it was retrieved.
func (r *FetchedRecord) GetTags() (string, error) {
	if !r.hasTags {
		return "", errors.ErrFieldNotRetrieved.WithDetail("field", "tags")
	}
	return r.tagsJSON, nil
}

// AddRecord inserts a new record within a single transaction: the item
// row (value plus the tags JSON object) commits or rolls back as one
// unit, so a partial failure never leaves an item without its tags
// observable to a concurrent FetchRecord.
func (e *Engine) AddRecord(ctx context.Context, recordType, id string, value []byte, tags Tags) (err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "add_record", e.name, err)
		}
	}()
	return timeQuery("add_record", func() error {
		if tags == nil {
			tags = Tags{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return errors.ErrInvalidValue.Wrap(err)
		}

		tx, err := e.writeDB.BeginTx(ctx, nil)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO items (wallet_id, type, name, value, tags) VALUES (?, ?, ?, ?, ?)`,
			e.walletID, recordType, id, value, tagsJSON)
		if err != nil {
			tx.Rollback()
			if isDuplicateKeyError(err) {
				return errors.ErrRecordAlreadyExists.WithDetail("type", recordType).WithDetail("id", id)
			}
			return errors.ErrStorageIO.Wrap(err)
		}

		if err := tx.Commit(); err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return nil
	})
}

// UpdateRecordValue replaces a record's value.
func (e *Engine) UpdateRecordValue(ctx context.Context, recordType, id string, value []byte) (err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "update_record_value", e.name, err)
		}
	}()
	return timeQuery("update_record_value", func() error {
		res, err := e.writeDB.ExecContext(ctx,
			`UPDATE items SET value = ? WHERE wallet_id = ? AND type = ? AND name = ?`,
			value, e.walletID, recordType, id)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return requireOneRowAffected(res, recordType, id)
	})
}

// DeleteRecord removes a record.
func (e *Engine) DeleteRecord(ctx context.Context, recordType, id string) (err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "delete_record", e.name, err)
		}
	}()
	return timeQuery("delete_record", func() error {
		res, err := e.writeDB.ExecContext(ctx,
			`DELETE FROM items WHERE wallet_id = ? AND type = ? AND name = ?`,
			e.walletID, recordType, id)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return requireOneRowAffected(res, recordType, id)
	})
}

// AddRecordTags merge-patches the tags JSON column: existing keys in
// tags are overwritten, keys not mentioned are left alone. Calling it
// twice with the same tags is idempotent.
func (e *Engine) AddRecordTags(ctx context.Context, recordType, id string, tags Tags) (err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "add_record_tags", e.name, err)
		}
	}()
	return timeQuery("add_record_tags", func() error {
		patch, err := json.Marshal(tags)
		if err != nil {
			return errors.ErrInvalidValue.Wrap(err)
		}

		res, err := e.writeDB.ExecContext(ctx,
			`UPDATE items SET tags = JSON_MERGE_PATCH(tags, ?) WHERE wallet_id = ? AND type = ? AND name = ?`,
			patch, e.walletID, recordType, id)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return requireOneRowAffected(res, recordType, id)
	})
}

// UpdateRecordTags replaces the tags JSON column wholesale.
func (e *Engine) UpdateRecordTags(ctx context.Context, recordType, id string, tags Tags) (err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "update_record_tags", e.name, err)
		}
	}()
	return timeQuery("update_record_tags", func() error {
		if tags == nil {
			tags = Tags{}
		}
		body, err := json.Marshal(tags)
		if err != nil {
			return errors.ErrInvalidValue.Wrap(err)
		}

		res, err := e.writeDB.ExecContext(ctx,
			`UPDATE items SET tags = ? WHERE wallet_id = ? AND type = ? AND name = ?`,
			body, e.walletID, recordType, id)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return requireOneRowAffected(res, recordType, id)
	})
}

// DeleteRecordTags removes the listed keys from the tags JSON column.
// Names that are not present in the map simply have no effect; only a
// record match failure (0 rows affected) is an error.
func (e *Engine) DeleteRecordTags(ctx context.Context, recordType, id string, tagNames []string) (err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "delete_record_tags", e.name, err)
		}
	}()
	if len(tagNames) == 0 {
		return nil
	}
	return timeQuery("delete_record_tags", func() error {
		paths := make([]string, len(tagNames))
		args := make([]interface{}, 0, len(tagNames)+3)
		for i, name := range tagNames {
			if err := validateTagName(name); err != nil {
				return err
			}
			paths[i] = "?"
			args = append(args, fmt.Sprintf(`$."%s"`, name))
		}
		args = append(args, e.walletID, recordType, id)

		query := fmt.Sprintf(
			`UPDATE items SET tags = JSON_REMOVE(tags, %s) WHERE wallet_id = ? AND type = ? AND name = ?`,
			strings.Join(paths, ", "))

		res, err := e.writeDB.ExecContext(ctx, query, args...)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return requireOneRowAffected(res, recordType, id)
	})
}

// FetchRecord loads a record and materialises it as a *FetchedRecord,
// registering it in the wallet's record registry. id is populated from
// the request input, not the row, since it is part of the lookup key
// rather than a stored column.
func (e *Engine) FetchRecord(ctx context.Context, recordType, id string, opts FetchOptions) (h int32, err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "fetch_record", e.name, err)
		}
	}()
	err = timeQuery("fetch_record", func() error {
		query := fmt.Sprintf(
			`SELECT %s, %s, %s FROM items WHERE wallet_id = ? AND type = ? AND name = ?`,
			nullable(opts.RetrieveType, "type"),
			nullable(opts.RetrieveValue, "value"),
			nullable(opts.RetrieveTags, "tags"))

		row := e.readDB.QueryRowContext(ctx, query, e.walletID, recordType, id)

		var rawType, rawTags sql.NullString
		var rawValue []byte
		if err := row.Scan(&rawType, &rawValue, &rawTags); err != nil {
			if goerrors.Is(err, sql.ErrNoRows) {
				return errors.ErrItemNotFound.WithDetail("type", recordType).WithDetail("id", id)
			}
			return errors.ErrStorageIO.Wrap(err)
		}

		rec := &FetchedRecord{ID: id}
		if opts.RetrieveType {
			rec.recordType = rawType.String
			rec.hasType = true
		}
		if opts.RetrieveValue {
			rec.value = rawValue
			rec.hasValue = true
		}
		if opts.RetrieveTags {
			rec.tagsJSON = rawTags.String
			rec.hasTags = true
		}

		h = e.records.Insert(rec)
		metrics.SetRegistrySize("record", e.records.Len())
		return nil
	})
	return h, err
}

// GetRecord resolves recordHandle to its *FetchedRecord, as every
// accessor (GetRecordType/ID/Value/Tags) must before reading a field.
func (e *Engine) GetRecord(recordHandle int32) (*FetchedRecord, error) {
	rec, ok := e.records.Get(recordHandle)
	if !ok {
		return nil, errors.ErrHandleNotFound
	}
	return rec, nil
}

// FreeRecord releases a record handle. Interior data the caller already
// read via an accessor must not be dereferenced afterward.
func (e *Engine) FreeRecord(recordHandle int32) error {
	if !e.records.Remove(recordHandle) {
		return errors.ErrHandleNotFound
	}
	metrics.SetRegistrySize("record", e.records.Len())
	return nil
}

// nullable returns column when retrieve is true, or the literal NULL
// otherwise, matching the fetch-mode projection rule §4.3 specifies for
// search queries and reused here for point fetches.
func nullable(retrieve bool, column string) string {
	if retrieve {
		return column
	}
	return "NULL"
}

// requireOneRowAffected translates a zero-affected-rows Result into
// errors.ErrItemNotFound, the contract every single-row mutation shares.
func requireOneRowAffected(res sql.Result, recordType, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrStorageIO.Wrap(err)
	}
	if affected == 0 {
		return errors.ErrItemNotFound.WithDetail("type", recordType).WithDetail("id", id)
	}
	return nil
}
