package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	authorship "github.com/samuel/go-authorship"
	"github.com/samuel/go-authorship/internal/corpus"
)

type signatureOutput struct {
	File      string               `json:"file"`
	Signature authorship.Signature `json:"signature"`
}

func newSignatureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signature FILE...",
		Short: "Print the stylistic signature of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]signatureOutput, 0, len(args))
			for _, path := range args {
				doc, err := corpus.ReadFile(path)
				if err != nil {
					return err
				}
				sig, err := authorship.Compute(doc.Text)
				if err != nil {
					return fmtDocError(doc.Path, err)
				}
				out = append(out, signatureOutput{File: doc.Path, Signature: sig})
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			rows := make([][]string, len(out))
			for i, o := range out {
				rows[i] = signatureRow(o.File, o.Signature)
			}
			return writeTable(cmd.OutOrStdout(), signatureHeaders("file"), rows, signatureAligns())
		},
	}
}

func signatureHeaders(first string) []string {
	headers := []string{first}
	return append(headers, authorship.FeatureNames[:]...)
}

func signatureAligns() []columnAlignment {
	aligns := []columnAlignment{alignLeft}
	for range authorship.FeatureNames {
		aligns = append(aligns, alignRight)
	}
	return aligns
}

func signatureRow(name string, sig authorship.Signature) []string {
	row := []string{name}
	for _, v := range sig {
		row = append(row, formatFloat(v))
	}
	return row
}
