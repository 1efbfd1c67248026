package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gl-viewer/libio"

	"github.com/spf13/cobra"
)

type packArgs struct {
	compress int
	out      string
	check    bool
	force    bool
}

func createPackCommand() *cobra.Command {
	args := packArgs{
		compress: 9,
		check:    true,
	}

	cmd := &cobra.Command{
		Use:   "pack file-glob...",
		Short: "compress images into .lz4 textures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, globs []string) error {
			if _, err := libio.CompressionLevel(args.compress); err != nil {
				return err
			}
			if args.out != "" {
				if err := os.MkdirAll(args.out, 0o755); err != nil {
					return fmt.Errorf("cannot create output directory: %w", err)
				}
			}
			failed := 0
			for _, file := range gatherInputFiles(globs) {
				if softerr(packFile(args, file)) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) could not be packed", failed)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&args.compress, "compress", "c", args.compress, "the compression level from 0 (fast) to 9 (high)")
	flags.StringVarP(&args.out, "out", "o", args.out, "the output directory, defaults to the input's directory")
	flags.BoolVar(&args.check, "check", args.check, "refuse files the viewer cannot decode")
	flags.BoolVarP(&args.force, "force", "f", args.force, "overwrite existing outputs")
	return cmd
}

// packedPath is the output path of file: the input name plus ".lz4", in
// out or next to the input when out is empty.
func packedPath(file, out string) string {
	dir := filepath.Dir(file)
	if out != "" {
		dir = out
	}
	return filepath.Join(dir, filepath.Base(file)+libio.Lz4Ext)
}

func packFile(args packArgs, file string) error {
	if libio.IsCompressed(file) {
		return fmt.Errorf("%s is already packed", file)
	}
	if args.check {
		if _, err := libio.DecodeFile(file, libio.DecodeOptions{}); err != nil {
			return err
		}
	}

	target := packedPath(file, args.out)
	if _, err := os.Stat(target); err == nil && !args.force {
		return fmt.Errorf("%s exists, use --force to overwrite", target)
	}

	src, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("cannot open input: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("cannot create output: %w", err)
	}
	written, err := libio.Compress(dst, src, args.compress)
	if err != nil {
		dst.Close()
		os.Remove(target)
		return fmt.Errorf("cannot pack %s: %w", file, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", target, err)
	}

	if stat, err := os.Stat(target); err == nil && written > 0 {
		logf("%s -> %s (%.1f%%)\n", file, target, 100*float64(stat.Size())/float64(written))
	}
	return nil
}
