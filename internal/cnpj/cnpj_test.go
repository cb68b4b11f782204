package cnpj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"fully punctuated", "12.345.678/0001-95", true},
		{"digits only", "12345678000195", true},
		{"partial punctuation", "12.345.678000195", true},
		{"surrounding whitespace", "  12345678000195 ", true},
		{"only slash", "12345678/000195", true},
		{"misplaced punctuation", "123.456.780-001-95", false},
		{"empty", "", false},
		{"letters", "abcdefghijklmn", false},
		{"too few digits", "1234567800019", false},
		{"too many digits", "123456780001950", false},
		{"doubled separator", "12..345.678/0001-95", false},
		{"wrong separator", "12-345-678/0001-95", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"removes slash", "12.345.678/0001-95", "12.345.6780001-95"},
		{"no slash is identity", "12345678000195", "12345678000195"},
		{"only first slash", "a/b/c", "ab/c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("12.345.678/0001-95")
	assert.Equal(t, once, Normalize(once))
}

func BenchmarkValidate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Validate("12.345.678/0001-95")
	}
}
