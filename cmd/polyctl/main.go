// SPDX-License-Identifier: MIT

// Command polyctl builds, combines, evaluates and fingerprints sparse
// polynomials from the command line.
package main

import "github.com/katalvlaran/lvpoly/internal/cli"

func main() {
	cli.Execute()
}
