package dateparse

import (
	"strconv"

	"github.com/danieljhkim/zap/internal/filetime"
)

// ParseAdjust parses a -A style delta: [-][[hh]mm]SS.
//
// An optional leading '-' negates the result. The remainder must be an
// even number of digits, at most six, split from the right into two-digit
// groups read as seconds, then minutes, then hours; an absent group
// contributes zero. Each group parses independently with no per-group
// upper bound beyond its two digits.
func ParseAdjust(s string) (filetime.Adjustment, error) {
	digits := s
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	if !allDigits(digits) {
		return 0, syntaxErr(s, "adjustment must be [-][[hh]mm]SS")
	}
	if len(digits)%2 != 0 {
		return 0, syntaxErr(s, "adjustment needs an even number of digits")
	}
	if len(digits) > 6 {
		return 0, syntaxErr(s, "adjustment has at most three two-digit groups")
	}

	// Right-to-left: seconds, minutes, hours.
	multipliers := []int64{1, 60, 3600}
	var total int64
	for i := 0; len(digits) > 0; i++ {
		group := digits[len(digits)-2:]
		digits = digits[:len(digits)-2]

		n, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return 0, syntaxErr(s, "bad digit group %q", group)
		}

		total, err = checkedAdd(total, n*multipliers[i])
		if err != nil {
			return 0, overflowErr(s, "adjustment seconds overflow")
		}
	}

	if negative {
		total = -total
	}
	return filetime.Adjustment(total), nil
}

func checkedAdd(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, filetime.ErrAdjustOverflow
	}
	return sum, nil
}
