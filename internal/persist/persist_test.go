package persist

import (
	"testing"

	"github.com/kalexmills/cellsheet/internal/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	recs := []Record{
		{Pos: position.New(1, 1), Payload: "42"},
		{Pos: position.New(2, 1), Payload: ""},
		{Pos: position.New(1, 2), Payload: "=A1+B1"},
		{Pos: position.New(2, 2), Payload: "hello (world)"},
	}
	encoded := Encode(recs)
	decoded, ok := Decode(encoded)
	require.True(t, ok)
	assert.Equal(t, recs, decoded)
}

func TestDecodeEmpty(t *testing.T) {
	recs, ok := Decode("")
	assert.True(t, ok)
	assert.Empty(t, recs)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unmatched open paren", data: "(A1;1;x"},
		{name: "unmatched close paren", data: "A1;1;x)"},
		{name: "non-digit length", data: "(A1;x;5)"},
		{name: "truncated payload", data: "(A1;10;abc)"},
		{name: "bad position", data: "(1A;1;x)"},
		{name: "negative length", data: "(A1;-1;x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Decode(tt.data)
			assert.False(t, ok)
		})
	}
}

func TestDecodePayloadContainingDelimiters(t *testing.T) {
	recs := []Record{{Pos: position.New(1, 1), Payload: "a;b)c(d"}}
	encoded := Encode(recs)
	decoded, ok := Decode(encoded)
	require.True(t, ok)
	assert.Equal(t, recs, decoded)
}

func TestCorruptedLoadRejected(t *testing.T) {
	recs := []Record{{Pos: position.New(3, 4), Payload: "=A1+1"}}
	encoded := Encode(recs)
	mangled := []byte(encoded)
	// flip the ';' that ends the position field, the way a corrupted save would.
	for i, c := range mangled {
		if c == ';' {
			mangled[i] = 'z'
			break
		}
	}
	_, ok := Decode(string(mangled))
	assert.False(t, ok)
}
