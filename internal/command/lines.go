package command

import (
	"bufio"
	"math"
)

// MaxLineLen bounds a single command-file line.  Longer lines are split
// and the remainder is returned by the next read.
const MaxLineLen = 255

// readLine returns the next line including its '\n' terminator, if any.
// ok is false only when nothing could be read (EOF or I/O error).
func readLine(r *bufio.Reader) (line string, ok bool) {
	buf := make([]byte, 0, 64)
	for len(buf) < MaxLineLen {
		c, err := r.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, c)
		if c == '\n' {
			break
		}
	}
	return string(buf), len(buf) > 0
}

// Atoi converts the leading decimal integer of s the way C atoi does:
// leading whitespace is skipped, an optional sign is honoured, and
// parsing stops at the first non-digit.  Input with no digits is 0.
// Like strtol, values beyond the int64 range saturate at MaxInt64 or
// MinInt64; the result is then truncated to 32 bits, so "-1" yields
// 4294967295.
func Atoi(s string) uint32 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	// limit is the largest magnitude representable for the sign.
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var mag uint64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if mag > (limit-d)/10 {
			mag = limit
			continue
		}
		mag = mag*10 + d
	}

	var v int64
	switch {
	case neg && mag == limit:
		v = math.MinInt64
	case neg:
		v = -int64(mag)
	default:
		v = int64(mag)
	}
	return uint32(v)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
