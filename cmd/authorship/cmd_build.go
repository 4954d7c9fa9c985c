package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/samuel/go-authorship/internal/corpus"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build DIR",
		Short: "Compute signatures of the texts in DIR and save them to --database",
		Long: `build computes the signature of every text in DIR and stores it in the
sqlite database given by --database, under the text's file name. Existing
signatures with the same name are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Database
			if path == "" {
				return errors.New("build needs a database: set --database or database in the config file")
			}

			lock := flock.New(path + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("failed to lock %s: %w", path, err)
			}
			if !locked {
				return fmt.Errorf("another build is writing to %s", path)
			}
			defer lock.Unlock()

			docs, err := corpus.ReadDir(args[0])
			if err != nil {
				return err
			}
			entries, err := corpus.Signatures(cmd.Context(), docs, a.cfg.Workers, a.log)
			if err != nil {
				return err
			}

			db, store, err := openDatabase(path)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.PutEntries(entries); err != nil {
				return fmt.Errorf("failed to save signatures: %w", err)
			}
			a.log.WithField("database", path).Infof("Saved %d signatures", len(entries))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d signatures to %s\n", len(entries), path)
			return err
		},
	}
}
