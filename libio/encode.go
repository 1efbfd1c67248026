package libio

import (
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

var compressionLevels = []lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// CompressionLevel maps 0 (fast) to 9 (best) onto lz4 levels.
func CompressionLevel(level int) (lz4.CompressionLevel, error) {
	if level < 0 || level >= len(compressionLevels) {
		return 0, fmt.Errorf("compression level %d outside [0, %d]", level, len(compressionLevels)-1)
	}
	return compressionLevels[level], nil
}

// Compress copies src to dst as an LZ4 frame.
func Compress(dst io.Writer, src io.Reader, level int) (written int64, err error) {
	lvl, err := CompressionLevel(level)
	if err != nil {
		return 0, err
	}

	lzw := lz4.NewWriter(dst)
	if err := lzw.Apply(lz4.CompressionLevelOption(lvl)); err != nil {
		return 0, fmt.Errorf("could not configure lz4 writer: %w", err)
	}

	written, err = io.Copy(lzw, src)
	if err != nil {
		return written, fmt.Errorf("could not compress: %w", err)
	}
	if err := lzw.Close(); err != nil {
		return written, fmt.Errorf("could not finish lz4 frame: %w", err)
	}
	return written, nil
}
