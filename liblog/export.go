package liblog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Export writes the console lines to w, one per line. With compress set the
// output is a single LZ4 frame.
func (c *Console) Export(w io.Writer, compress bool) (err error) {
	var lzw *lz4.Writer
	if compress {
		lzw = lz4.NewWriter(w)
		if err := lzw.Apply(lz4.CompressionLevelOption(lz4.Fast)); err != nil {
			return fmt.Errorf("could not configure lz4 writer: %w", err)
		}
		w = lzw
	}

	bw := bufio.NewWriter(w)
	for _, line := range c.Lines() {
		if _, err = bw.WriteString(line.Text); err != nil {
			return fmt.Errorf("could not export log: %w", err)
		}
		if err = bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("could not export log: %w", err)
		}
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("could not export log: %w", err)
	}
	if lzw != nil {
		if err = lzw.Close(); err != nil {
			return fmt.Errorf("could not finish log export: %w", err)
		}
	}
	return nil
}

// ExportFile writes the console to path. A ".lz4" extension selects the
// compressed format.
func (c *Console) ExportFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create log file: %w", err)
	}
	compress := strings.EqualFold(filepath.Ext(path), ".lz4")
	if err := c.Export(f, compress); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
