package percent

import (
	"testing"
	"testing/quick"

	"webtools/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "пустая строка", input: "", want: ""},
		{name: "пробел и восклицательный знак", input: "hello world!", want: "hello%20world!"},
		{name: "зарезервированные символы", input: "&=?#;/:@+$,", want: "%26%3D%3F%23%3B%2F%3A%40%2B%24%2C"},
		{name: "unreserved", input: "AZaz09-_.!~*'()", want: "AZaz09-_.!~*'()"},
		{name: "latin-1", input: "é", want: "%C3%A9"},
		{name: "BMP", input: "€", want: "%E2%82%AC"},
		{name: "вне BMP", input: "😀", want: "%F0%9F%98%80"},
		{name: "кириллица", input: "ключ", want: "%D0%BA%D0%BB%D1%8E%D1%87"},
		{name: "невалидный UTF-8", input: "a\xffb", want: "a%EF%BF%BDb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeComponent(tt.input))
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "пустая строка", input: "", want: ""},
		{name: "восклицательный знак кодируется", input: "hello world!", want: "hello%20world%21"},
		{name: "не кодирует @*_+-./", input: "@*_+-./", want: "@*_+-./"},
		{name: "зарезервированные символы", input: "&=?#;:$,", want: "%26%3D%3F%23%3B%3A%24%2C"},
		{name: "latin-1 одним байтом", input: "é", want: "%E9"},
		{name: "BMP как %u", input: "€", want: "%u20AC"},
		{name: "суррогатная пара", input: "😀", want: "%uD83D%uDE00"},
		{name: "тильда и скобки", input: "~'()", want: "%7E%27%28%29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.input))
		})
	}
}

func TestTablesDiffer(t *testing.T) {
	input := "a@b+c/d!"
	assert.Equal(t, "a%40b%2Bc%2Fd!", EncodeComponent(input))
	assert.Equal(t, "a@b+c/d%21", Escape(input))
}

func TestDecodeComponent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "без escape", input: "plain", want: "plain"},
		{name: "пробел", input: "hello%20world!", want: "hello world!"},
		{name: "нижний регистр hex", input: "%c3%a9", want: "é"},
		{name: "вне BMP", input: "%F0%9F%98%80", want: "😀"},
		{name: "плюс не пробел", input: "a+b", want: "a+b"},
		{name: "одиночный процент", input: "%", wantErr: true},
		{name: "одна hex цифра", input: "abc%4", wantErr: true},
		{name: "не hex", input: "%zz", wantErr: true},
		{name: "обрезанная последовательность", input: "%C3", wantErr: true},
		{name: "неверный continuation", input: "%C3%28", wantErr: true},
		{name: "continuation без лидера", input: "%80", wantErr: true},
		{name: "суррогат", input: "%ED%A0%80", wantErr: true},
		{name: "overlong", input: "%C0%AF", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeComponent(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "latin-1", input: "%E9", want: "é"},
		{name: "%u группа", input: "%u20AC", want: "€"},
		{name: "суррогатная пара", input: "%uD83D%uDE00", want: "😀"},
		{name: "одиночный суррогат", input: "%uD83D", want: "�"},
		{name: "литералы не трогаются", input: "a+b/c", want: "a+b/c"},
		{name: "обрезанная %u", input: "%u20A", wantErr: true},
		{name: "не hex в %u", input: "%uZZZZ", wantErr: true},
		{name: "хвостовой процент", input: "abc%", wantErr: true},
		{name: "одна hex цифра", input: "%4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unescape(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, models.ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMalformedError_Offset(t *testing.T) {
	_, err := DecodeComponent("ok%2")

	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 2, merr.Offset)
	assert.Contains(t, err.Error(), "position 2")
}

func TestRoundTrip(t *testing.T) {
	modern := func(s string) bool {
		got, err := DecodeComponent(EncodeComponent(s))
		return err == nil && got == s
	}
	legacy := func(s string) bool {
		got, err := Unescape(Escape(s))
		return err == nil && got == s
	}

	require.NoError(t, quick.Check(modern, nil))
	require.NoError(t, quick.Check(legacy, nil))
}
