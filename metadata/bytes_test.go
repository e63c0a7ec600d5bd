package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeByteStr(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  string
	}{
		{
			name:  "empty input has no prefix",
			bytes: nil,
			want:  "",
		},
		{
			name:  "zero-length slice has no prefix",
			bytes: []byte{},
			want:  "",
		},
		{
			name:  "single byte",
			bytes: []byte{0x00},
			want:  "0x00",
		},
		{
			name:  "multiple bytes, lowercase digits",
			bytes: []byte{0xDE, 0xAD, 0xBE, 0xEF},
			want:  "0xdeadbeef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeByteStr(tt.bytes))
		})
	}
}

// The display form keeps the 0x prefix even for empty input; only the
// serialized form carries the empty-string special case.
func TestDisplayByteStrDivergesOnEmpty(t *testing.T) {
	assert.Equal(t, "0x", displayByteStr(nil))
	assert.Equal(t, "", encodeByteStr(nil))

	b := []byte{0x01, 0x02}
	assert.Equal(t, "0x0102", displayByteStr(b))
	assert.Equal(t, "0x0102", encodeByteStr(b))
}
