package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the known signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, source, release, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			catalog, err := store.Catalog()
			if err != nil {
				return err
			}
			entries := catalog.Entries()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				out := make([]signatureOutput, len(entries))
				for i, e := range entries {
					out[i] = signatureOutput{File: e.Name, Signature: e.Signature}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			if len(entries) == 0 {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No known signatures in %s\n", source)
				return err
			}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = signatureRow(e.Name, e.Signature)
			}
			return writeTable(cmd.OutOrStdout(), signatureHeaders("name"), rows, signatureAligns())
		},
	}
}
