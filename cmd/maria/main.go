// Command maria builds and queries the pangenome tag-array index: the
// external driver around the graphmodel/pfp/tagindex/resolver core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
