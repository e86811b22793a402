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

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evernym/mysql-wallet-storage-sub000/pkg/errors"
	"github.com/evernym/mysql-wallet-storage-sub000/storage"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Get, put, and delete records within a wallet",
}

var (
	recordEndpoint endpointFlags
	recordWallet   string
	recordType     string
	recordTagsJSON string
)

// openWallet opens name against the resolved endpoint and returns the
// Engine, plus a closer the caller must defer. Every record/query
// subcommand opens and closes its own wallet handle since a CLI
// invocation has no persistent process to keep one live across calls.
func openWallet(cmd *cobra.Command, name string, f endpointFlags) (*storage.Engine, func(), error) {
	if name == "" {
		return nil, nil, fmt.Errorf("--wallet is required")
	}
	cfg, creds, err := f.resolve()
	if err != nil {
		return nil, nil, err
	}
	h, err := storage.OpenStorage(cmd.Context(), name, cfg, creds)
	if err != nil {
		return nil, nil, err
	}
	engine, err := storage.LookupWallet(h)
	if err != nil {
		return nil, nil, err
	}
	return engine, func() { _ = storage.CloseStorage(h) }, nil
}

var recordGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a record and print its type, value, and tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeWallet, err := openWallet(cmd, recordWallet, recordEndpoint)
		if err != nil {
			return err
		}
		defer closeWallet()

		h, err := engine.FetchRecord(cmd.Context(), recordType, args[0], storage.DefaultFetchOptions())
		if err != nil {
			return err
		}
		defer engine.FreeRecord(h)

		rec, err := engine.GetRecord(h)
		if err != nil {
			return err
		}
		typ, _ := rec.GetType()
		val, _ := rec.GetValue()
		tags, _ := rec.GetTags()
		fmt.Printf("id:    %s\n", rec.ID)
		fmt.Printf("type:  %s\n", typ)
		fmt.Printf("value: %s\n", val)
		fmt.Printf("tags:  %s\n", tags)
		return nil
	},
}

var recordPutCmd = &cobra.Command{
	Use:   "put <id> <value>",
	Short: "Insert a record, or update it if it already exists",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeWallet, err := openWallet(cmd, recordWallet, recordEndpoint)
		if err != nil {
			return err
		}
		defer closeWallet()

		tags, err := storage.ParseTags([]byte(recordTagsJSON))
		if err != nil {
			return err
		}

		id, value := args[0], []byte(args[1])
		err = engine.AddRecord(cmd.Context(), recordType, id, value, tags)
		if err == nil {
			fmt.Printf("record %q created\n", id)
			return nil
		}
		if errors.StatusCode(err) != errors.RecordAlreadyExists {
			return err
		}
		if err := engine.UpdateRecordValue(cmd.Context(), recordType, id, value); err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := engine.UpdateRecordTags(cmd.Context(), recordType, id, tags); err != nil {
				return err
			}
		}
		fmt.Printf("record %q updated\n", id)
		return nil
	},
}

var recordDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeWallet, err := openWallet(cmd, recordWallet, recordEndpoint)
		if err != nil {
			return err
		}
		defer closeWallet()

		if err := engine.DeleteRecord(cmd.Context(), recordType, args[0]); err != nil {
			return err
		}
		fmt.Printf("record %q deleted\n", args[0])
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{recordGetCmd, recordPutCmd, recordDeleteCmd} {
		addEndpointFlags(c, &recordEndpoint)
		c.Flags().StringVar(&recordWallet, "wallet", "", "wallet name (required)")
		c.Flags().StringVar(&recordType, "type", "default", "record type")
	}
	recordPutCmd.Flags().StringVar(&recordTagsJSON, "tags", "{}", "tags as a JSON object")

	recordCmd.AddCommand(recordGetCmd, recordPutCmd, recordDeleteCmd)
}
