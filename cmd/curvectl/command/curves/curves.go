// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmcurve/edwards/cmd/curvectl/command/curveset"
	"github.com/pmcurve/edwards/cmd/curvectl/command/helper"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "Lists the supported curves and their field schedules",
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	rows := []string{
		"NAME|FIELD|BITS|C|LIMBS|WIDTH|BYTES|COFACTOR|ORDER",
	}
	for _, e := range curveset.Entries() {
		order := "-"
		if e.HasOrder {
			order = "embedded"
		}
		rows = append(rows, fmt.Sprintf("%s|%s|%d|%d|%d|%d|%d|%d|%s",
			e.Name,
			e.Field.Name(),
			e.Field.BitLen(),
			e.Field.C(),
			e.Field.Limbs(),
			e.Field.Width(),
			e.Field.Size(),
			e.Cofactor,
			order,
		))
	}

	fmt.Fprintln(cmd.OutOrStdout(), helper.FormatList(rows))
}
