package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		{name: "single letter", input: "A1", want: New(1, 1)},
		{name: "two letters", input: "AA1", want: New(27, 1)},
		{name: "lowercase", input: "b2", want: New(2, 2)},
		{name: "leading zero row", input: "C007", want: New(3, 7)},
		{name: "missing row", input: "A", wantErr: true},
		{name: "missing column", input: "12", wantErr: true},
		{name: "row zero", input: "A0", wantErr: true},
		{name: "trailing junk", input: "A1x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeDecodeColumnRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 25, 26, 27, 52, 676, 677, 702, 703} {
		letters := EncodeColumn(n)
		back, err := DecodeColumn(letters)
		assert.NoError(t, err)
		assert.Equal(t, n, back, "round trip for column %d via %q", n, letters)
	}
}

func TestEncodeColumn(t *testing.T) {
	assert.Equal(t, "A", EncodeColumn(1))
	assert.Equal(t, "Z", EncodeColumn(26))
	assert.Equal(t, "AA", EncodeColumn(27))
	assert.Equal(t, "AZ", EncodeColumn(52))
	assert.Equal(t, "BA", EncodeColumn(53))
}

func TestLess(t *testing.T) {
	assert.True(t, New(1, 1).Less(New(2, 1)))
	assert.True(t, New(1, 1).Less(New(1, 2)))
	assert.False(t, New(2, 1).Less(New(1, 5)))
}
