// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// radixq loads word lists into a radix tree and queries them.
//
//	radixq -i words.txt prefix rom
//	RADIXQ_SPLIT=graphemes radixq -i words.txt tree
package main

import (
	"os"

	"github.com/gaissmai/radix/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
