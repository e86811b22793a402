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

	"github.com/evernym/mysql-wallet-storage-sub000/storage"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Create, delete, and open wallets",
}

var (
	walletEndpoint endpointFlags
	walletMetadata string
)

var walletCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, creds, err := walletEndpoint.resolve()
		if err != nil {
			return err
		}
		if err := storage.CreateStorage(cmd.Context(), args[0], cfg, creds, walletMetadata); err != nil {
			return err
		}
		fmt.Printf("wallet %q created\n", args[0])
		return nil
	},
}

var walletDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a wallet and every record it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, creds, err := walletEndpoint.resolve()
		if err != nil {
			return err
		}
		if err := storage.DeleteStorage(cmd.Context(), args[0], cfg, creds); err != nil {
			return err
		}
		fmt.Printf("wallet %q deleted\n", args[0])
		return nil
	},
}

var walletOpenCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a wallet and print its storage handle",
	Long: `Open a wallet and print the process-local storage handle OpenStorage
returns. The handle is only meaningful within this invocation; a fresh
walletstoragectl process that needs the same wallet must open it again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, creds, err := walletEndpoint.resolve()
		if err != nil {
			return err
		}
		h, err := storage.OpenStorage(cmd.Context(), args[0], cfg, creds)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", h)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{walletCreateCmd, walletDeleteCmd, walletOpenCmd} {
		addEndpointFlags(c, &walletEndpoint)
	}
	walletCreateCmd.Flags().StringVar(&walletMetadata, "metadata", "", "initial metadata value")

	walletCmd.AddCommand(walletCreateCmd, walletDeleteCmd, walletOpenCmd)
}
