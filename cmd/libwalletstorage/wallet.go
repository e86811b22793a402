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

package main

// #include <stdlib.h>
import "C"

import (
	"context"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
	"github.com/evernym/mysql-wallet-storage-sub000/storage"
)

// configAndCreds decodes the config/credentials JSON arguments every
// wallet-lifecycle call shares.
func configAndCreds(configJSON, credsJSON *C.char) (storage.Config, storage.Credentials, errors.ABICode) {
	configStr, code := goStringRequired(configJSON)
	if code != errors.Success {
		return storage.Config{}, storage.Credentials{}, code
	}
	credsStr, code := goStringRequired(credsJSON)
	if code != errors.Success {
		return storage.Config{}, storage.Credentials{}, code
	}

	cfg, err := storage.ParseConfig([]byte(configStr))
	if err != nil {
		return storage.Config{}, storage.Credentials{}, errors.StatusCode(err)
	}
	creds, err := storage.ParseCredentials([]byte(credsStr))
	if err != nil {
		return storage.Config{}, storage.Credentials{}, errors.StatusCode(err)
	}
	return cfg, creds, errors.Success
}

//export create_storage
func create_storage(namePtr, configPtr, credsPtr, metadataPtr *C.char) C.int {
	name, code := goString(namePtr)
	if code != errors.Success {
		return C.int(code)
	}
	cfg, creds, code := configAndCreds(configPtr, credsPtr)
	if code != errors.Success {
		return C.int(code)
	}
	metadata, code := goString(metadataPtr)
	if code != errors.Success {
		return C.int(code)
	}

	if err := storage.CreateStorage(context.Background(), name, cfg, creds, metadata); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export delete_storage
func delete_storage(namePtr, configPtr, credsPtr *C.char) C.int {
	name, code := goString(namePtr)
	if code != errors.Success {
		return C.int(code)
	}
	cfg, creds, code := configAndCreds(configPtr, credsPtr)
	if code != errors.Success {
		return C.int(code)
	}

	if err := storage.DeleteStorage(context.Background(), name, cfg, creds); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}

//export open_storage
func open_storage(namePtr, configPtr, credsPtr *C.char, handleOut *C.int) C.int {
	name, code := goString(namePtr)
	if code != errors.Success {
		return C.int(code)
	}
	cfg, creds, code := configAndCreds(configPtr, credsPtr)
	if code != errors.Success {
		return C.int(code)
	}

	h, err := storage.OpenStorage(context.Background(), name, cfg, creds)
	if err != nil {
		return C.int(errors.StatusCode(err))
	}
	*handleOut = C.int(h)
	return C.int(errors.Success)
}

//export close_storage
func close_storage(storageHandle C.int) C.int {
	if err := storage.CloseStorage(int32(storageHandle)); err != nil {
		return C.int(errors.StatusCode(err))
	}
	return C.int(errors.Success)
}
