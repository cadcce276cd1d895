package fstree

import "strconv"

// units are the binary magnitude labels applied by FormatSize.
//
//nolint:gochecknoglobals // Format constant
var units = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

// FormatSize converts a byte count into a human-readable magnitude string
// using 1024-based unit steps and 4 significant digits, with no space
// before the unit.
//
//	FormatSize(0)    == "0B"
//	FormatSize(1024) == "1KiB"
//	FormatSize(1<<100 bytes) == "1.049e+06YiB"
//
// Values past the YiB step stay in YiB and fall back to e-notation. It is
// the single formatting authority for every size the reports display.
func FormatSize(size float64) string {
	for _, unit := range units[:len(units)-1] {
		if size < 1024 {
			return strconv.FormatFloat(size, 'g', 4, 64) + unit
		}

		size /= 1024
	}

	return strconv.FormatFloat(size, 'g', 4, 64) + units[len(units)-1]
}
