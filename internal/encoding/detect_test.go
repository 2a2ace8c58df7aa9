package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/moneymate/internal/encoding"
)

func readAll(t *testing.T, input []byte) (string, string) {
	t.Helper()

	r, charset, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got), charset
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "type,date,category,description,amount\nexpense,2024-03-01,Food,Café,12.50\n"

	got, charset := readAll(t, []byte(input))
	assert.Equal(t, input, got)
	assert.Equal(t, encoding.CharsetUTF8, charset)
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// "Descrição;Montante\n" in Windows-1252: ç = 0xE7, ã = 0xE3
	latin1 := []byte{
		'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', ';',
		'M', 'o', 'n', 't', 'a', 'n', 't', 'e', '\n',
	}

	got, _ := readAll(t, latin1)
	assert.Equal(t, "Descrição;Montante\n", got)
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Café;1\n")...)

	got, charset := readAll(t, input)
	assert.Equal(t, "Café;1\n", got)
	assert.Equal(t, encoding.CharsetUTF8, charset)
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("Café;1\n"))
	require.NoError(t, err)

	got, charset := readAll(t, encoded)
	assert.Equal(t, "Café;1\n", got)
	assert.Equal(t, encoding.CharsetUTF16LE, charset)
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	got, charset := readAll(t, nil)
	assert.Empty(t, got)
	assert.Equal(t, encoding.CharsetUTF8, charset)
}
