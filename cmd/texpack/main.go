// Command texpack packs textures into LZ4 frames the viewer loads directly
// and prints information about packed and plain textures.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type commonArgs struct {
	quiet   bool
	supress bool
}

var cargs = &commonArgs{}

var rootCmd = &cobra.Command{
	Use:           "texpack",
	Short:         "Pack and inspect viewer textures",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cargs.quiet, "quiet", "q", false, "disables informational logging")
	rootCmd.PersistentFlags().BoolVar(&cargs.supress, "supress", false, "disables soft error logging")
	rootCmd.AddCommand(createPackCommand(), createInfoCommand())
}

func main() {
	harderr(rootCmd.Execute())
}

// gatherInputFiles expands the globs. Patterns without a match are passed
// through so that the caller reports them as missing.
func gatherInputFiles(globs []string) []string {
	matched := []string{}
	for _, g := range globs {
		m, err := filepath.Glob(g)
		if softerr(err) {
			continue
		}
		if len(m) == 0 {
			m = []string{g}
		}
		matched = append(matched, m...)
	}
	return matched
}

func logf(format string, a ...any) {
	if !cargs.quiet {
		fmt.Printf(format, a...)
	}
}

func softerr(err error) bool {
	if err != nil {
		if !cargs.supress {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return true
	}
	return false
}

func harderr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
