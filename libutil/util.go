package libutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	Rad2Deg = float32(180 / math.Pi)
	Deg2Rad = float32(math.Pi / 180)
)

const InvalidAddress uintptr = 0xffff_ffff_ffff_ffff

type Deleter interface {
	Delete()
}

// Clamp limits x to the closed range [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(hi, x))
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// DeleteAll calls Delete on every non-nil deleter, in reverse order.
func DeleteAll(deleters ...Deleter) {
	for i := len(deleters) - 1; i >= 0; i-- {
		if deleters[i] != nil {
			deleters[i].Delete()
		}
	}
}
