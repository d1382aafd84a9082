package fast

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Word is an instruction word and the address it was loaded from.
type Word struct {
	Addr  U32 `json:"addr"`
	Instr U32 `json:"instr"`
}

// ReadWords reads a stream of little-endian instruction words, the first one located at base.
func ReadWords(r io.Reader, base U32) ([]Word, error) {
	var out []Word
	var buf [4]byte
	addr := base
	for {
		n, err := io.ReadFull(r, buf[:])
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("trailing partial instruction of %d bytes at %08x", n, addr)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read instruction at %08x: %w", addr, err)
		}
		out = append(out, Word{Addr: addr, Instr: binary.LittleEndian.Uint32(buf[:])})
		addr += 4
	}
}

// ParseHexWords reads instruction words written as hex text, whitespace separated,
// with an optional 0x prefix. Everything after a '#' on a line is ignored.
func ParseHexWords(r io.Reader, base U32) ([]Word, error) {
	var out []Word
	addr := base
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			instr, err := ParseHexWord(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, Word{Addr: addr, Instr: instr})
			addr += 4
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hex words: %w", err)
	}
	return out, nil
}

// ParseHexWord parses a single big-endian hex word of at most 8 digits, 0x prefix optional.
func ParseHexWord(s string) (U32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) == 0 || len(digits) > 8 {
		return 0, fmt.Errorf("invalid instruction word %q: need 1 to 8 hex digits", s)
	}
	digits = strings.Repeat("0", 8-len(digits)) + digits
	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction word %q: %w", s, err)
	}
	return binary.BigEndian.Uint32(b), nil
}
