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

var (
	queryEndpoint endpointFlags
	queryWallet   string
	queryType     string
	queryTotal    bool
)

var queryCmd = &cobra.Command{
	Use:   "query <wql-document>",
	Short: "Run a raw WQL document against an open wallet and print matching record ids",
	Long: `Run a raw WQL document against a wallet and print every matching
record's id, one per line. An empty document ("{}") matches every
record of --type.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeWallet, err := openWallet(cmd, queryWallet, queryEndpoint)
		if err != nil {
			return err
		}
		defer closeWallet()

		opts := storage.DefaultSearchOptions()
		opts.RetrieveTotalCount = queryTotal
		opts.RetrieveValue = false
		opts.RetrieveTags = false

		sh, err := engine.SearchRecords(cmd.Context(), queryType, []byte(args[0]), opts)
		if err != nil {
			return err
		}
		defer engine.FreeSearch(sh)

		if queryTotal {
			total, err := engine.GetSearchTotalCount(sh)
			if err != nil {
				return err
			}
			fmt.Printf("total: %d\n", total)
		}

		for {
			rh, err := engine.FetchSearchNextRecord(sh)
			if errors.Is(err, errors.ErrSearchExhausted) {
				break
			}
			if err != nil {
				return err
			}
			rec, err := engine.GetRecord(rh)
			if err != nil {
				return err
			}
			fmt.Println(rec.ID)
			engine.FreeRecord(rh)
		}
		return nil
	},
}

func init() {
	addEndpointFlags(queryCmd, &queryEndpoint)
	queryCmd.Flags().StringVar(&queryWallet, "wallet", "", "wallet name (required)")
	queryCmd.Flags().StringVar(&queryType, "type", "", "record type to search (matched exactly; empty matches only records whose type is empty)")
	queryCmd.Flags().BoolVar(&queryTotal, "total", false, "also print the total match count")
}
