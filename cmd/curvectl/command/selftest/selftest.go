// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selftest

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pmcurve/edwards/cmd/curvectl/command/curveset"
	"github.com/pmcurve/edwards/cmd/curvectl/command/helper"
)

var params struct {
	curve    string
	rounds   int
	logLevel string
}

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Runs the field and group property sweep over the supported curves",
		RunE:  runCommand,
	}

	cmd.Flags().StringVar(&params.curve, "curve", "", "limit the sweep to the given curve")
	cmd.Flags().IntVar(&params.rounds, "rounds", 16, "random rounds per curve")
	cmd.Flags().StringVar(&params.logLevel, "log-level", "info", "minimum log level")

	return cmd
}

func runCommand(cmd *cobra.Command, _ []string) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "curvectl",
		Level: hclog.LevelFromString(params.logLevel),
	})

	var entries []curveset.Entry
	for _, e := range curveset.Entries() {
		if params.curve == "" || e.Name == params.curve {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return fmt.Errorf("unknown curve %q", params.curve)
	}

	// Curves are independent, so the sweep runs them in parallel and the
	// failures are aggregated afterwards.
	results := make([]error, len(entries))
	g := new(errgroup.Group)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			start := time.Now()
			logger.Debug("selftest started", "curve", e.Name)

			if err := e.SelfTest(params.rounds); err != nil {
				logger.Error("selftest failed", "curve", e.Name, "err", err)
				results[i] = err

				return err
			}
			logger.Info("selftest passed", "curve", e.Name, "elapsed", time.Since(start))

			return nil
		})
	}
	_ = g.Wait()

	var result *multierror.Error
	for _, err := range results {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), helper.FormatKV([]string{
		fmt.Sprintf("Curves|%d", len(entries)),
		fmt.Sprintf("Rounds|%d", params.rounds),
		"Result|all checks passed",
	}))

	return nil
}
