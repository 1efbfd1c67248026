package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gl-viewer/libio"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type fileInfo struct {
	Path string
	libio.Info
}

func createInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info file-glob...",
		Short: "print the format, size and channels of textures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, globs []string) error {
			var infos []fileInfo
			for _, file := range gatherInputFiles(globs) {
				info, err := libio.Stat(file)
				if softerr(err) {
					continue
				}
				infos = append(infos, fileInfo{Path: file, Info: info})
			}
			writeInfoTable(os.Stdout, infos)
			return nil
		},
	}
}

func writeInfoTable(w io.Writer, infos []fileInfo) {
	slices.SortFunc(infos, func(a, b fileInfo) int {
		return strings.Compare(a.Path, b.Path)
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tFORMAT\tSIZE\tCHANNELS\tPACKED")
	for _, info := range infos {
		supported := ""
		if info.Channels != 3 && info.Channels != 4 {
			supported = " (unsupported)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d%s\t%v\n", info.Path, info.Format, info.Width, info.Height, info.Channels, supported, info.Compressed)
	}
	tw.Flush()
}
