// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vectors

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/pmcurve/edwards/cmd/curvectl/command/curveset"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var params struct {
	curve string
	count int
	start uint64
}

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Emits scalar-multiplication test vectors as JSON",
		RunE:  runCommand,
	}

	cmd.Flags().StringVar(&params.curve, "curve", "", "limit output to the given curve")
	cmd.Flags().IntVar(&params.count, "count", 4, "number of vectors per curve")
	cmd.Flags().Uint64Var(&params.start, "start", 1, "first scalar")

	return cmd
}

func runCommand(cmd *cobra.Command, _ []string) error {
	var out []curveset.Vector

	matched := false
	for _, e := range curveset.Entries() {
		if params.curve != "" && e.Name != params.curve {
			continue
		}
		matched = true
		for i := 0; i < params.count; i++ {
			out = append(out, e.Vector(params.start+uint64(i)))
		}
	}
	if !matched {
		return fmt.Errorf("unknown curve %q", params.curve)
	}

	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(enc))

	return nil
}
