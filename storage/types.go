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
	"encoding/json"
	"strings"

	"github.com/evernym/mysql-wallet-storage-sub000/internal/pool"
	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
)

// Config identifies the MySQL/Aurora endpoint pair a wallet operation
// targets. It is the JSON shape every C ABI call accepts as "config".
type Config struct {
	ReadHost string `json:"read_host"`
	WriteHost string `json:"write_host"`
	Port     uint16 `json:"port"`
	DBName   string `json:"db_name"`
}

// Credentials authenticates against a Config's endpoints.
type Credentials struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

func (c Config) toPoolConfig() pool.Config {
	return pool.Config{ReadHost: c.ReadHost, WriteHost: c.WriteHost, Port: c.Port, DBName: c.DBName}
}

func (c Credentials) toPoolCredentials() pool.Credentials {
	return pool.Credentials{User: c.User, Pass: c.Pass}
}

// ParseConfig decodes a Config JSON document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.ErrInvalidFormat.Wrap(err)
	}
	if cfg.WriteHost == "" || cfg.DBName == "" {
		return Config{}, errors.ErrMissingField.WithMessage("config requires write_host and db_name")
	}
	return cfg, nil
}

// ParseCredentials decodes a Credentials JSON document.
func ParseCredentials(data []byte) (Credentials, error) {
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, errors.ErrInvalidFormat.Wrap(err)
	}
	if creds.User == "" {
		return Credentials{}, errors.ErrMissingField.WithMessage("credentials requires user")
	}
	return creds, nil
}

// FetchOptions controls which columns FetchRecord populates on the
// returned FetchedRecord. All three default to true.
type FetchOptions struct {
	RetrieveType  bool
	RetrieveValue bool
	RetrieveTags  bool
}

// DefaultFetchOptions returns the document-wide default: every field
// retrieved.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{RetrieveType: true, RetrieveValue: true, RetrieveTags: true}
}

type fetchOptionsWire struct {
	RetrieveType  *bool `json:"retrieveType"`
	RetrieveValue *bool `json:"retrieveValue"`
	RetrieveTags  *bool `json:"retrieveTags"`
}

// ParseFetchOptions decodes a FetchOptions JSON document. A nil or empty
// document yields DefaultFetchOptions; any field present overrides its
// default.
func ParseFetchOptions(data []byte) (FetchOptions, error) {
	opts := DefaultFetchOptions()
	if len(data) == 0 {
		return opts, nil
	}

	var wire fetchOptionsWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return FetchOptions{}, errors.ErrInvalidFormat.Wrap(err)
	}
	if wire.RetrieveType != nil {
		opts.RetrieveType = *wire.RetrieveType
	}
	if wire.RetrieveValue != nil {
		opts.RetrieveValue = *wire.RetrieveValue
	}
	if wire.RetrieveTags != nil {
		opts.RetrieveTags = *wire.RetrieveTags
	}
	return opts, nil
}

// SearchOptions controls search result shape. RetrieveRecords defaults
// true; every other field defaults false.
type SearchOptions struct {
	RetrieveRecords    bool
	RetrieveTotalCount bool
	RetrieveType       bool
	RetrieveValue      bool
	RetrieveTags       bool
}

// DefaultSearchOptions returns the document-wide default.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{RetrieveRecords: true}
}

type searchOptionsWire struct {
	RetrieveRecords    *bool `json:"retrieveRecords"`
	RetrieveTotalCount *bool `json:"retrieveTotalCount"`
	RetrieveType       *bool `json:"retrieveType"`
	RetrieveValue      *bool `json:"retrieveValue"`
	RetrieveTags       *bool `json:"retrieveTags"`
}

// ParseSearchOptions decodes a SearchOptions JSON document.
func ParseSearchOptions(data []byte) (SearchOptions, error) {
	opts := DefaultSearchOptions()
	if len(data) == 0 {
		return opts, nil
	}

	var wire searchOptionsWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return SearchOptions{}, errors.ErrInvalidFormat.Wrap(err)
	}
	if wire.RetrieveRecords != nil {
		opts.RetrieveRecords = *wire.RetrieveRecords
	}
	if wire.RetrieveTotalCount != nil {
		opts.RetrieveTotalCount = *wire.RetrieveTotalCount
	}
	if wire.RetrieveType != nil {
		opts.RetrieveType = *wire.RetrieveType
	}
	if wire.RetrieveValue != nil {
		opts.RetrieveValue = *wire.RetrieveValue
	}
	if wire.RetrieveTags != nil {
		opts.RetrieveTags = *wire.RetrieveTags
	}
	return opts, nil
}

// Tags maps a tag name to its string value. A name beginning with "~" is
// plain-text (ordered, LIKE-able); any other name is encrypted (equality
// and set membership only). The distinction is purely syntactic - the
// database never enforces it.
type Tags map[string]string

// ParseTags decodes a Tags JSON document, rejecting tag names the WQL
// compiler could not safely interpolate into a JSON path literal.
func ParseTags(data []byte) (Tags, error) {
	if len(data) == 0 {
		return Tags{}, nil
	}

	var tags Tags
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, errors.ErrInvalidFormat.Wrap(err)
	}
	for name := range tags {
		if err := validateTagName(name); err != nil {
			return nil, err
		}
	}
	return tags, nil
}

// validateTagName rejects names that could break out of the
// JSON_EXTRACT path literal they are interpolated into.
func validateTagName(name string) error {
	if strings.ContainsAny(name, `"\`) {
		return errors.ErrInvalidValue.WithDetail("tag", name).WithMessage("tag name must not contain '\"' or '\\'")
	}
	return nil
}

// IsPlainText reports whether name follows the plain-text tag
// convention (a leading "~").
func IsPlainText(name string) bool {
	return strings.HasPrefix(name, "~")
}

// MarshalJSON renders tags in the same shape ParseTags accepts, used
// when AddRecord, AddRecordTags and UpdateRecordTags write the tags column.
func (t Tags) MarshalJSON() ([]byte, error) {
	m := map[string]string(t)
	if m == nil {
		m = map[string]string{}
	}
	return json.Marshal(m)
}
