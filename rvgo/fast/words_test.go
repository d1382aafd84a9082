package fast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWords(t *testing.T) {
	data := []byte{
		0xb3, 0x81, 0x20, 0x00, // add x3, x1, x2
		0x93, 0x02, 0xa0, 0x00, // addi x5, x0, 10
	}
	words, err := ReadWords(bytes.NewReader(data), 0x1000)
	require.NoError(t, err)
	require.Equal(t, []Word{
		{Addr: 0x1000, Instr: 0x002081B3},
		{Addr: 0x1004, Instr: 0x00A00293},
	}, words)

	words, err = ReadWords(bytes.NewReader(nil), 0)
	require.NoError(t, err)
	require.Empty(t, words)

	_, err = ReadWords(bytes.NewReader(data[:6]), 0)
	require.ErrorContains(t, err, "trailing partial instruction of 2 bytes")
}

func TestParseHexWords(t *testing.T) {
	src := `# test program
0x002081b3   # add x3, x1, x2
00a00293

208463 0x7f
`
	words, err := ParseHexWords(strings.NewReader(src), 0x80)
	require.NoError(t, err)
	require.Equal(t, []Word{
		{Addr: 0x80, Instr: 0x002081B3},
		{Addr: 0x84, Instr: 0x00A00293},
		{Addr: 0x88, Instr: 0x00208463},
		{Addr: 0x8C, Instr: 0x0000007F},
	}, words)

	_, err = ParseHexWords(strings.NewReader("0x13\nnope\n"), 0)
	require.ErrorContains(t, err, "line 2")
}

func TestParseHexWord(t *testing.T) {
	for s, expected := range map[string]U32{
		"0x00300193": 0x00300193,
		"00300193":   0x00300193,
		"0X73":       0x73,
		"f":          0xF,
		"0xFFFFFFFF": 0xFFFF_FFFF,
	} {
		instr, err := ParseHexWord(s)
		require.NoError(t, err, s)
		require.Equal(t, expected, instr, s)
	}
	for _, s := range []string{"", "0x", "0x123456789", "0xzz"} {
		_, err := ParseHexWord(s)
		require.Error(t, err, s)
	}
}
