// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/pmcurve/edwards/cmd/curvectl/command/root"

func main() {
	root.NewRootCommand().Execute()
}
