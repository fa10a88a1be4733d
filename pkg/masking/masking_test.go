package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "홍**", Name("홍길동"))
	assert.Equal(t, "K**", Name(" Kim "))
	assert.Equal(t, "", Name("   "))
	assert.Equal(t, "김", Name(" 김 "))
}

func TestStudentID(t *testing.T) {
	tests := map[string]string{
		"20231234":  "20******",
		"220231234": "220******",
		"123":       "123",
		"19991234":  "199**********",
		"":          "",
	}
	for in, want := range tests {
		assert.Equal(t, want, StudentID(in), in)
	}
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "010-****-5678", Phone("01012345678"))
	assert.Equal(t, "010-****-5678", Phone("010-1234-5678"))
	assert.Equal(t, "1234", Phone("1234"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "010-1234-5678", FormatPhone("01012345678"))
	assert.Equal(t, "011-123-4567", FormatPhone("0111234567"))
	assert.Equal(t, "12345", FormatPhone("12345"))
}
