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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

func TestEngine_SearchAllRecords_DrainsThenExhausts(t *testing.T) {
	engine, mock := newTestEngine(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"type", "name", "value", "tags"}).
		AddRow("type1", "r1", nil, nil).
		AddRow("type1", "r2", nil, nil).
		AddRow("type2", "r3", nil, nil)
	mock.ExpectQuery(`SELECT type, name, NULL, NULL FROM items WHERE wallet_id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	searchHandle, err := engine.SearchAllRecords(ctx, SearchOptions{})
	if err != nil {
		t.Fatalf("SearchAllRecords: %v", err)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		recHandle, err := engine.FetchSearchNextRecord(searchHandle)
		if err != nil {
			t.Fatalf("FetchSearchNextRecord[%d]: %v", i, err)
		}
		rec, err := engine.GetRecord(recHandle)
		if err != nil {
			t.Fatalf("GetRecord: %v", err)
		}
		ids = append(ids, rec.ID)
	}
	if len(ids) != 3 || ids[0] != "r1" || ids[2] != "r3" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	if _, err := engine.FetchSearchNextRecord(searchHandle); errors.StatusCode(err) != errors.ItemNotFound {
		t.Fatalf("expected exhausted search to report ItemNotFound, got %v", err)
	}
	// Subsequent calls keep failing the same way; the search stays drained.
	if _, err := engine.FetchSearchNextRecord(searchHandle); errors.StatusCode(err) != errors.ItemNotFound {
		t.Fatalf("expected repeated calls on a drained search to report ItemNotFound, got %v", err)
	}

	if err := engine.FreeSearch(searchHandle); err != nil {
		t.Fatalf("FreeSearch: %v", err)
	}
	if _, err := engine.GetSearch(searchHandle); errors.StatusCode(err) != errors.InvalidState {
		t.Fatalf("expected InvalidState after FreeSearch, got %v", err)
	}
}

func TestEngine_SearchRecords_WithTotalCount(t *testing.T) {
	engine, mock := newTestEngine(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM items i WHERE`).
		WithArgs("v1", "type1", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT NULL, name, NULL, NULL FROM items WHERE`).
		WithArgs("v1", "type1", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"type", "name", "value", "tags"}).AddRow(nil, "r1", nil, nil))

	opts := SearchOptions{RetrieveRecords: true, RetrieveTotalCount: true}
	searchHandle, err := engine.SearchRecords(ctx, "type1", []byte(`{"tag1":"v1"}`), opts)
	if err != nil {
		t.Fatalf("SearchRecords: %v", err)
	}

	total, err := engine.GetSearchTotalCount(searchHandle)
	if err != nil || total != 1 {
		t.Fatalf("GetSearchTotalCount: %d, %v", total, err)
	}

	recHandle, err := engine.FetchSearchNextRecord(searchHandle)
	if err != nil {
		t.Fatalf("FetchSearchNextRecord: %v", err)
	}
	rec, _ := engine.GetRecord(recHandle)
	if rec.ID != "r1" {
		t.Fatalf("expected id r1, got %q", rec.ID)
	}
}

func TestEngine_GetSearchTotalCount_NotCaptured(t *testing.T) {
	engine, mock := newTestEngine(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT NULL, name, NULL, NULL FROM items WHERE`).
		WithArgs("type1", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"type", "name", "value", "tags"}))

	searchHandle, err := engine.SearchRecords(ctx, "type1", []byte(`{}`), DefaultSearchOptions())
	if err != nil {
		t.Fatalf("SearchRecords: %v", err)
	}

	if _, err := engine.GetSearchTotalCount(searchHandle); errors.StatusCode(err) != errors.InvalidState {
		t.Fatalf("expected InvalidState for a search without a captured total, got %v", err)
	}
}

func TestEngine_SearchRecords_RejectsRangeOnEncryptedTag(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.SearchRecords(ctx, "type1", []byte(`{"age":{"$gt":"30"}}`), DefaultSearchOptions())
	if errors.StatusCode(err) != errors.InvalidStructure {
		t.Fatalf("expected InvalidStructure for $gt on an encrypted tag, got %v", err)
	}
}
