package datastruct

import "go.llib.dev/frameless/pkg/errorkit"

const (
	ErrIndexOutOfRange errorkit.Error = "index out of range"
	ErrInvalidIndices  errorkit.Error = "invalid indices"
	ErrNegativeSize    errorkit.Error = "negative size not allowed"
	ErrNegativeCount   errorkit.Error = "negative count"
	ErrEmptyArray      errorkit.Error = "empty array"
	ErrEmptyList       errorkit.Error = "empty list"
	ErrNullList        errorkit.Error = "null list"
)

func errIndexOutOfRange(index, length int) error {
	return ErrIndexOutOfRange.F("index %d is outside of [0, %d)", index, length)
}

// CheckRange validates an inclusive [lo, hi] sub-range against a length.
func CheckRange(lo, hi, length int) error {
	if lo < 0 || length <= hi || hi < lo {
		return ErrInvalidIndices.F("range [%d, %d] is not valid for length %d", lo, hi, length)
	}
	return nil
}
