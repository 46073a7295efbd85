package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "formatted", input: "529.982.247-25", want: "52998224725"},
		{name: "digits only", input: "52998224725", want: "52998224725"},
		{name: "with spaces", input: " 529 982 247 25 ", want: "52998224725"},
		{name: "letters mixed in", input: "a529b982247-25", want: "52998224725"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat("529.982.247-25"))
	assert.True(t, IsValidFormat("52998224725"))
	assert.False(t, IsValidFormat("5299822472"))
	assert.False(t, IsValidFormat("529982247250"))
	assert.False(t, IsValidFormat(""))
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "known valid", input: "529.982.247-25", want: true},
		{name: "known valid unformatted", input: "52998224725", want: true},
		{name: "repeated digits formatted", input: "111.111.111-11", want: false},
		{name: "repeated zeros", input: "00000000000", want: false},
		{name: "bad first check digit", input: "529.982.247-35", want: false},
		{name: "bad second check digit", input: "529.982.247-24", want: false},
		{name: "too short", input: "1234567890", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input))
		})
	}
}

func TestIsValid_AllRepeatedSequences(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		seq := string(make([]byte, 0, 11))
		for i := 0; i < 11; i++ {
			seq += string(d)
		}
		assert.False(t, IsValid(seq), "sequence %s must be rejected", seq)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "529.982.247-25", Format("52998224725"))
	assert.Equal(t, "529.982.247-25", Format("529.982.247-25"))
	// Not 11 digits: returned as given.
	assert.Equal(t, "12345", Format("12345"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "529.***.**7-25", Mask("52998224725"))
	assert.Equal(t, "529.***.**7-25", Mask("529.982.247-25"))
	assert.Equal(t, "12345", Mask("12345"))
}

// Format and Mask are presentation only: cleaning their output must not
// change checksum validity.
func TestFormatMaskPreserveValidity(t *testing.T) {
	valid := "52998224725"
	assert.True(t, IsValid(Format(valid)))
	assert.Equal(t, valid, Clean(Format(valid)))
}
