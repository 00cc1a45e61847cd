// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmcurve/edwards/cmd/curvectl/command/curves"
	"github.com/pmcurve/edwards/cmd/curvectl/command/selftest"
	"github.com/pmcurve/edwards/cmd/curvectl/command/vectors"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "curvectl",
			Short: "curvectl is a diagnostic tool for the supported twisted Edwards curves and their prime fields",
		},
	}

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		curves.GetCommand(),
		vectors.GetCommand(),
		selftest.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
