package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	authorship "github.com/samuel/go-authorship"
	"github.com/samuel/go-authorship/classifier"
	"github.com/samuel/go-authorship/internal/corpus"
)

type identifyOutput struct {
	File   string             `json:"file"`
	Source string             `json:"source"`
	Match  string             `json:"match"`
	Scores []authorship.Match `json:"scores"`
}

func newIdentifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identify FILE",
		Short: "Name the known author whose signature is closest to FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showAll, _ := cmd.Flags().GetBool("all")
			jsonOut, _ := cmd.Flags().GetBool("json")

			doc, err := corpus.ReadFile(args[0])
			if err != nil {
				return err
			}

			store, source, release, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			c, err := classifier.NewClassifier(store)
			if err != nil {
				return err
			}
			c.Weights = a.weights

			scores, err := c.Scores(doc.Text)
			if err != nil {
				return fmtDocError(doc.Path, err)
			}
			best := scores[0].Name
			a.log.WithFields(logrus.Fields{
				"file":   doc.Path,
				"source": source,
				"match":  best,
				"score":  scores[0].Score,
			}).Debug("Identified closest signature")

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(identifyOutput{File: doc.Path, Source: source, Match: best, Scores: scores})
			case showAll:
				rows := make([][]string, len(scores))
				for i, m := range scores {
					rows[i] = []string{strconv.Itoa(i + 1), m.Name, formatFloat(m.Score)}
				}
				return writeTable(out, []string{"rank", "name", "score"}, rows,
					[]columnAlignment{alignRight, alignLeft, alignRight})
			default:
				_, err := fmt.Fprintln(out, best)
				return err
			}
		},
	}
	cmd.Flags().Bool("all", false, "Show the score of every known signature")
	return cmd
}

func fmtDocError(path string, err error) error {
	if errors.Is(err, authorship.ErrEmptyInput) {
		return fmt.Errorf("%s has no words to measure: %w", path, err)
	}
	return fmt.Errorf("%s: %w", path, err)
}
