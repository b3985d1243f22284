// SPDX-License-Identifier: MPL-2.0

package main

import cmd "gridsmith-cli/cmd/gridsmith"

func main() {
	cmd.Execute()
}
