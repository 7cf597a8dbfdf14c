package cpu

// Opcode is one 16-bit instruction word, fetched big-endian from memory.
//
// The four nibbles carry the operands:
//
//	0x1 2 C D
//	  | | | |_ n / d, low nibble
//	  | | |___ y, register index
//	  | |_____ x, register index
//	  |_______ c, opcode group
//
// kk is the low byte, nnn the low 12 bits.
type Opcode uint16

func (op Opcode) C() uint8    { return uint8(op >> 12) }
func (op Opcode) X() uint8    { return uint8(op>>8) & 0x0F }
func (op Opcode) Y() uint8    { return uint8(op>>4) & 0x0F }
func (op Opcode) N() uint8    { return uint8(op) & 0x0F }
func (op Opcode) KK() uint8   { return uint8(op) }
func (op Opcode) NNN() uint16 { return uint16(op) & 0x0FFF }

// Kind tags a decoded instruction. The set is closed: the executor switches
// over it exhaustively, there is no dispatch through interfaces.
type Kind uint8

const (
	// Unknown is the catch-all for bit patterns outside the instruction set.
	// It executes as a no-op, not as a decode failure.
	Unknown Kind = iota
	SysAddr
	Cls
	Ret
	Jump
	Call
	SkipEqImm
	SkipNeImm
	SkipEqReg
	SkipNeReg
	LoadImm
	AddImm
	LoadReg
	Or
	And
	Xor
	AddReg
	SubReg
	Shr
	SubN
	Shl
	LoadIndex
	JumpV0
	Random
	Draw
	SkipKey
	SkipNoKey
	ReadDelay
	WaitKey
	SetDelay
	SetSound
	AddIndex
	LoadFont
	StoreBCD
	StoreRegs
	LoadRegs
)

var kindNames = [...]string{
	Unknown:   "DW",
	SysAddr:   "SYS",
	Cls:       "CLS",
	Ret:       "RET",
	Jump:      "JP",
	Call:      "CALL",
	SkipEqImm: "SE",
	SkipNeImm: "SNE",
	SkipEqReg: "SE",
	SkipNeReg: "SNE",
	LoadImm:   "LD",
	AddImm:    "ADD",
	LoadReg:   "LD",
	Or:        "OR",
	And:       "AND",
	Xor:       "XOR",
	AddReg:    "ADD",
	SubReg:    "SUB",
	Shr:       "SHR",
	SubN:      "SUBN",
	Shl:       "SHL",
	LoadIndex: "LD",
	JumpV0:    "JP",
	Random:    "RND",
	Draw:      "DRW",
	SkipKey:   "SKP",
	SkipNoKey: "SKNP",
	ReadDelay: "LD",
	WaitKey:   "LD",
	SetDelay:  "LD",
	SetSound:  "LD",
	AddIndex:  "ADD",
	LoadFont:  "LD",
	StoreBCD:  "LD",
	StoreRegs: "LD",
	LoadRegs:  "LD",
}

// String returns the conventional assembler mnemonic.
func (k Kind) String() string {
	return kindNames[k]
}

// Instruction is a decoded opcode: a tag plus every operand field the word
// encodes. Fields a variant does not use are simply ignored by the executor.
type Instruction struct {
	Kind Kind
	X    uint8
	Y    uint8
	N    uint8
	KK   uint8
	NNN  uint16
}

// Decode maps the opcode to its instruction. Decoding is a total function:
// every 16-bit value yields some instruction, unrecognized patterns yield
// Unknown.
func (op Opcode) Decode() Instruction {
	in := Instruction{
		X:   op.X(),
		Y:   op.Y(),
		N:   op.N(),
		KK:  op.KK(),
		NNN: op.NNN(),
	}

	switch op.C() {
	case 0x0:
		switch uint16(op) {
		case 0x00E0:
			in.Kind = Cls
		case 0x00EE:
			in.Kind = Ret
		default:
			// legacy 0NNN machine code call
			in.Kind = SysAddr
		}
	case 0x1:
		in.Kind = Jump
	case 0x2:
		in.Kind = Call
	case 0x3:
		in.Kind = SkipEqImm
	case 0x4:
		in.Kind = SkipNeImm
	case 0x5:
		if op.N() == 0 {
			in.Kind = SkipEqReg
		}
	case 0x6:
		in.Kind = LoadImm
	case 0x7:
		in.Kind = AddImm
	case 0x8:
		switch op.N() {
		case 0x0:
			in.Kind = LoadReg
		case 0x1:
			in.Kind = Or
		case 0x2:
			in.Kind = And
		case 0x3:
			in.Kind = Xor
		case 0x4:
			in.Kind = AddReg
		case 0x5:
			in.Kind = SubReg
		case 0x6:
			in.Kind = Shr
		case 0x7:
			in.Kind = SubN
		case 0xE:
			in.Kind = Shl
		}
	case 0x9:
		if op.N() == 0 {
			in.Kind = SkipNeReg
		}
	case 0xA:
		in.Kind = LoadIndex
	case 0xB:
		in.Kind = JumpV0
	case 0xC:
		in.Kind = Random
	case 0xD:
		in.Kind = Draw
	case 0xE:
		switch op.KK() {
		case 0x9E:
			in.Kind = SkipKey
		case 0xA1:
			in.Kind = SkipNoKey
		}
	case 0xF:
		switch op.KK() {
		case 0x07:
			in.Kind = ReadDelay
		case 0x0A:
			in.Kind = WaitKey
		case 0x15:
			in.Kind = SetDelay
		case 0x18:
			in.Kind = SetSound
		case 0x1E:
			in.Kind = AddIndex
		case 0x29:
			in.Kind = LoadFont
		case 0x33:
			in.Kind = StoreBCD
		case 0x55:
			in.Kind = StoreRegs
		case 0x65:
			in.Kind = LoadRegs
		}
	}

	return in
}
