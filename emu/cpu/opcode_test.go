package cpu

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOpcodeFields(t *testing.T) {
	op := Opcode(0x1234)

	assert.Equal(t, uint8(0x1), op.C())
	assert.Equal(t, uint8(0x2), op.X())
	assert.Equal(t, uint8(0x3), op.Y())
	assert.Equal(t, uint8(0x4), op.N())
	assert.Equal(t, uint8(0x34), op.KK())
	assert.Equal(t, uint16(0x234), op.NNN())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		op   Opcode
		kind Kind
	}{
		{op: 0x0123, kind: SysAddr},
		{op: 0x00E1, kind: SysAddr}, // one past CLS is still a legacy 0NNN
		{op: 0x00E0, kind: Cls},
		{op: 0x00EE, kind: Ret},
		{op: 0x1ABC, kind: Jump},
		{op: 0x2ABC, kind: Call},
		{op: 0x3122, kind: SkipEqImm},
		{op: 0x4122, kind: SkipNeImm},
		{op: 0x5120, kind: SkipEqReg},
		{op: 0x5121, kind: Unknown},
		{op: 0x6122, kind: LoadImm},
		{op: 0x7122, kind: AddImm},
		{op: 0x8120, kind: LoadReg},
		{op: 0x8121, kind: Or},
		{op: 0x8122, kind: And},
		{op: 0x8123, kind: Xor},
		{op: 0x8124, kind: AddReg},
		{op: 0x8125, kind: SubReg},
		{op: 0x8126, kind: Shr},
		{op: 0x8127, kind: SubN},
		{op: 0x812E, kind: Shl},
		{op: 0x812F, kind: Unknown},
		{op: 0x9120, kind: SkipNeReg},
		{op: 0x9121, kind: Unknown},
		{op: 0xAABC, kind: LoadIndex},
		{op: 0xBABC, kind: JumpV0},
		{op: 0xC122, kind: Random},
		{op: 0xD125, kind: Draw},
		{op: 0xE19E, kind: SkipKey},
		{op: 0xE1A1, kind: SkipNoKey},
		{op: 0xE1FF, kind: Unknown},
		{op: 0xF107, kind: ReadDelay},
		{op: 0xF10A, kind: WaitKey},
		{op: 0xF115, kind: SetDelay},
		{op: 0xF118, kind: SetSound},
		{op: 0xF11E, kind: AddIndex},
		{op: 0xF129, kind: LoadFont},
		{op: 0xF133, kind: StoreBCD},
		{op: 0xF155, kind: StoreRegs},
		{op: 0xF165, kind: LoadRegs},
		{op: 0xF1FF, kind: Unknown},
	}
	for _, tt := range tests {
		in := tt.op.Decode()
		assert.Equal(t, tt.kind, in.Kind, fmt.Sprintf("opcode %04X", uint16(tt.op)))
	}
}

func TestDecodeExtractsOperands(t *testing.T) {
	in := Opcode(0xD7A5).Decode()

	assert.Equal(t, Draw, in.Kind)
	assert.Equal(t, uint8(0x7), in.X)
	assert.Equal(t, uint8(0xA), in.Y)
	assert.Equal(t, uint8(0x5), in.N)
	assert.Equal(t, uint8(0xA5), in.KK)
	assert.Equal(t, uint16(0x7A5), in.NNN)
}

// Decoding must be total: every 16-bit word maps to some instruction, with
// bit patterns outside the instruction set landing on Unknown instead of a
// decode failure.
func TestDecodeIsTotal(t *testing.T) {
	unrecognized := []Opcode{
		0x5121, // 5XY? with a nonzero low nibble
		0x512F,
		0x8128, // the 8XY8..8XYD gap
		0x8129,
		0x812A,
		0x812B,
		0x812C,
		0x812D,
		0x812F,
		0x9121, // 9XY? with a nonzero low nibble
		0xE19F, // neither SKP nor SKNP
		0xE1A2,
		0xE100,
		0xF100, // FX?? outside the timer/index/BCD set
		0xF134,
		0xF1FF,
	}
	for _, op := range unrecognized {
		in := op.Decode()
		assert.Equal(t, Unknown, in.Kind, fmt.Sprintf("opcode %04X", uint16(op)))
	}

	// groups whose whole 12-bit operand space is valid never yield Unknown
	totalGroups := map[uint8]bool{
		0x1: true, 0x2: true, 0x3: true, 0x4: true, 0x6: true, 0x7: true,
		0xA: true, 0xB: true, 0xC: true, 0xD: true,
	}
	for word := 0; word <= 0xFFFF; word++ {
		op := Opcode(word)
		in := op.Decode()
		if totalGroups[op.C()] && in.Kind == Unknown {
			t.Fatalf("opcode %04X in a fully assigned group decoded to Unknown", word)
		}
	}
}
