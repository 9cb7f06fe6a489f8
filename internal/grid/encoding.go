package grid

// unset marks a cell that holds no value.
const unset int8 = -1

// decodeChar maps a single character of a textual grid representation to
// a cell value. ok is false if the character is not one of the accepted
// encodings described in §3/§6 of the specification: '0'..'9' for values
// 0..9, 'a'..'w' (either case) for values 10..32, and 'x'/'X'/space for
// an unset cell.
func decodeChar(b byte) (value int8, isUnset bool, ok bool) {
	switch {
	case b == ' ' || b == 'x' || b == 'X':
		return unset, true, true
	case b >= '0' && b <= '9':
		return int8(b - '0'), false, true
	case b >= 'a' && b <= 'w':
		return int8(b-'a') + 10, false, true
	case b >= 'A' && b <= 'W':
		return int8(b-'A') + 10, false, true
	default:
		return 0, false, false
	}
}

// encodeValue renders a cell value using the canonical lowercase
// encoding: '0'..'9' for values below 10, 'a'..'w' for values 10..32.
// The unset value renders as a single space.
func encodeValue(v int8) byte {
	if v == unset {
		return ' '
	}
	if v < 10 {
		return byte('0' + v)
	}
	return byte('a' + (v - 10))
}

// EncodeValue renders a set cell value (0..32) using the same
// canonical lowercase encoding Serialize uses, for callers outside
// this package that display individual cell values (e.g. a printer).
func EncodeValue(v int) byte {
	return encodeValue(int8(v))
}
