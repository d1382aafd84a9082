package slow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	require.Equal(t, Fields{
		Opcode: 0x7F,
		Rd:     31,
		Funct3: 7,
		Rs1:    31,
		Rs2:    31,
		Funct7: 0x7F,
		ImmI:   0xFFFF_FFFF,
		ImmS:   0xFFF,
		ImmB:   0x1FFE,
		ImmU:   0xFFFF_F000,
		ImmJ:   0x1F_FFFE,
	}, ParseFields(0xFFFF_FFFF))

	f := ParseFields(0x00208463) // beq x1, x2, 8
	require.Equal(t, uint32(0x63), f.Opcode)
	require.Equal(t, uint32(1), f.Rs1)
	require.Equal(t, uint32(2), f.Rs2)
	require.Equal(t, uint32(8), f.ImmB)
}

func TestSar32(t *testing.T) {
	require.Equal(t, uint32(0xFFFF_F800), Val(sar32(toU32(20), FromUint32(0x8000_0000))))
	require.Equal(t, uint32(0x7FF), Val(sar32(toU32(20), FromUint32(0x7FF0_0000))))
	require.Equal(t, uint32(0xFFFF_FFFF), Val(sar32(toU32(255), FromUint32(0x8000_0000))))
	require.Equal(t, uint32(0), Val(sar32(toU32(255), FromUint32(0x7FFF_FFFF))))
}

func TestShl32Truncates(t *testing.T) {
	require.Equal(t, uint32(0x8000_0000), Val(shl32(toU32(31), toU32(1))))
	require.Equal(t, uint32(0), Val(shl32(toU32(32), toU32(1))), "bits above 32 must be dropped")
	require.Equal(t, uint32(0xFFFF_FFFF), Val(u32Mask()))
}
