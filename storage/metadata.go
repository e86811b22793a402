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

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// GetMetadata reads the wallet's metadata column and registers it in
// the wallet's metadata registry, returning a handle to a stable string
// buffer that stays borrow-valid until FreeMetadata runs.
func (e *Engine) GetMetadata(ctx context.Context) (h int32, err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "get_metadata", e.name, err)
		}
	}()
	err = timeQuery("get_metadata", func() error {
		var metadata string
		err := e.readDB.QueryRowContext(ctx, `SELECT metadata FROM wallets WHERE id = ?`, e.walletID).Scan(&metadata)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		h = e.metadata.Insert(metadata)
		metrics.SetRegistrySize("metadata", e.metadata.Len())
		return nil
	})
	return h, err
}

// SetMetadata replaces the wallet's metadata column.
func (e *Engine) SetMetadata(ctx context.Context, value string) (err error) {
	defer func() {
		if err != nil {
			logOperationError(ctx, "set_metadata", e.name, err)
		}
	}()
	return timeQuery("set_metadata", func() error {
		_, err := e.writeDB.ExecContext(ctx, `UPDATE wallets SET metadata = ? WHERE id = ?`, value, e.walletID)
		if err != nil {
			return errors.ErrStorageIO.Wrap(err)
		}
		return nil
	})
}

// GetMetadataValue resolves a metadata handle to its string value.
func (e *Engine) GetMetadataValue(metadataHandle int32) (string, error) {
	value, ok := e.metadata.Get(metadataHandle)
	if !ok {
		return "", errors.ErrHandleNotFound
	}
	return value, nil
}

// FreeMetadata releases a metadata handle.
func (e *Engine) FreeMetadata(metadataHandle int32) error {
	if !e.metadata.Remove(metadataHandle) {
		return errors.ErrHandleNotFound
	}
	metrics.SetRegistrySize("metadata", e.metadata.Len())
	return nil
}
