package fast

import (
	"bytes"
	"debug/elf"
	"fmt"
	"sort"
)

// LoadELF collects the instruction words of every executable section of a 32 bit RISC-V ELF.
func LoadELF(f *elf.File) ([]Word, error) {
	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("ELF is not RISC-V, but got %q", f.Machine.String())
	}
	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("ELF is not 32 bit, but got %q", f.Class.String())
	}
	var out []Word
	for i, sec := range f.Sections {
		if sec.Type != elf.SHT_PROGBITS || sec.Flags&elf.SHF_EXECINSTR == 0 {
			continue
		}
		data, err := sec.Data()
		if err != nil {
			return nil, fmt.Errorf("failed to read section %d (%s): %w", i, sec.Name, err)
		}
		// sections may be padded to a 2 byte alignment, drop the incomplete tail
		data = data[:len(data)&^3]
		words, err := ReadWords(bytes.NewReader(data), U32(sec.Addr))
		if err != nil {
			return nil, fmt.Errorf("failed to read section %d (%s): %w", i, sec.Name, err)
		}
		out = append(out, words...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ELF has no executable sections")
	}
	return out, nil
}

type SortedSymbols []elf.Symbol

// FindSymbol finds the symbol that intersects with the given addr, or nil if none exists
func (s SortedSymbols) FindSymbol(addr uint64) elf.Symbol {
	// find first symbol with higher start. Or n if no such symbol exists
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Value > addr
	})
	if i == 0 {
		return elf.Symbol{Name: "!start", Value: 0}
	}
	out := &s[i-1]
	if out.Value+out.Size < addr { // addr may be pointing to a gap between symbols
		return elf.Symbol{Name: "!gap", Value: addr}
	}
	return *out
}

// Label returns the name of a function symbol starting exactly at addr.
func (s SortedSymbols) Label(addr uint64) (string, bool) {
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Value >= addr
	})
	for ; i < len(s) && s[i].Value == addr; i++ {
		if elf.ST_TYPE(s[i].Info) == elf.STT_FUNC && s[i].Name != "" {
			return s[i].Name, true
		}
	}
	return "", false
}

func Symbols(f *elf.File) (SortedSymbols, error) {
	symbols, err := f.Symbols()
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols data: %w", err)
	}
	// not every ELF has sorted symbols
	out := make(SortedSymbols, len(symbols))
	copy(out, symbols)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out, nil
}
