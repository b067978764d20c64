// SPDX-License-Identifier: MIT

// Command linalg runs small matrix jobs on YAML/JSON matrix files.
//
//	linalg demo
//	linalg invert a.yaml
//	linalg det a.yaml
//	linalg multiply a.yaml b.yaml
//	linalg transpose a.yaml
//	linalg rotate v.yaml --deg 0,0,90
//
// Results are written to stdout in the same document format.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
