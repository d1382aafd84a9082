package fast

import (
	"debug/elf"
	"testing"

	"github.com/stretchr/testify/require"
)

func funcSymbol(name string, value, size uint64) elf.Symbol {
	return elf.Symbol{Name: name, Value: value, Size: size, Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC)}
}

func TestSortedSymbols(t *testing.T) {
	symbols := SortedSymbols{
		funcSymbol("_start", 0x1000, 0x10),
		funcSymbol("main", 0x1020, 0x40),
	}

	require.Equal(t, "!start", symbols.FindSymbol(0x800).Name)
	require.Equal(t, "_start", symbols.FindSymbol(0x1000).Name)
	require.Equal(t, "main", symbols.FindSymbol(0x1024).Name)
	require.Equal(t, "!gap", symbols.FindSymbol(0x2000).Name)

	// mapping symbols share the address of the function they are in
	symbols = SortedSymbols{
		{Name: "$x", Value: 0x1000, Info: elf.ST_INFO(elf.STB_LOCAL, elf.STT_NOTYPE)},
		funcSymbol("_start", 0x1000, 0x10),
		funcSymbol("main", 0x1020, 0x40),
	}
	label, ok := symbols.Label(0x1000)
	require.True(t, ok)
	require.Equal(t, "_start", label)
	label, ok = symbols.Label(0x1020)
	require.True(t, ok)
	require.Equal(t, "main", label)
	_, ok = symbols.Label(0x1024)
	require.False(t, ok)
	_, ok = SortedSymbols(nil).Label(0)
	require.False(t, ok)
}

func TestLoadELFRejects(t *testing.T) {
	_, err := LoadELF(&elf.File{FileHeader: elf.FileHeader{Machine: elf.EM_X86_64, Class: elf.ELFCLASS32}})
	require.ErrorContains(t, err, "not RISC-V")

	_, err = LoadELF(&elf.File{FileHeader: elf.FileHeader{Machine: elf.EM_RISCV, Class: elf.ELFCLASS64}})
	require.ErrorContains(t, err, "not 32 bit")

	_, err = LoadELF(&elf.File{FileHeader: elf.FileHeader{Machine: elf.EM_RISCV, Class: elf.ELFCLASS32}})
	require.ErrorContains(t, err, "no executable sections")
}
