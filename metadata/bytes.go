package metadata

import "encoding/hex"

// encodeByteStr returns the canonical serialized form of a byte sequence:
// "0x" followed by two lowercase hex digits per byte, or the empty string
// with no prefix for empty input. Size-zero code and empty payloads
// serialize as "", not "0x".
func encodeByteStr(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return "0x" + hex.EncodeToString(b)
}

// displayByteStr is the human-readable form used by String methods for
// logging and diagnostics. Unlike encodeByteStr it keeps the 0x prefix for
// empty input; the two forms agree everywhere else.
func displayByteStr(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
