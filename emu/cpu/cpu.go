// Package cpu implements the CHIP-8 virtual CPU: a fetch/decode/execute
// engine over the 4KB memory, the register file, the call stack, the
// framebuffer, both timers and the keypad wait state.
package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"chyp8/emu/display"
	"chyp8/emu/memory"

	"github.com/retroenv/retrogolib/log"
)

// CPU owns every piece of machine state. It is single threaded by contract:
// the driving loop is the only mutator, Cycle and TickTimers are never
// called concurrently.
type CPU struct {
	mem   *memory.Memory
	regs  RegisterFile
	stack Stack
	fb    display.Framebuffer
	pc    uint16

	delayTimer uint8
	soundTimer uint8

	// key wait suspension, explicit state instead of a blocking read so the
	// driver can keep rendering while the program is parked on Fx0A
	awaitingKey bool
	awaitReg    uint8

	rng    *rand.Rand
	logger *log.Logger
}

// Output reports what one cycle did to the outside visible devices. The
// framebuffer snapshot is a copy, the renderer never aliases CPU state.
type Output struct {
	DisplayUpdated bool
	Framebuffer    display.Framebuffer
}

// New returns a CPU with fonts preloaded, the ROM copied to 0x200 and the
// program counter pointing at it. A ROM that does not fit the user space is
// a construction error, emulation never begins.
func New(rom []byte, logger *log.Logger) (*CPU, error) {
	c := &CPU{
		mem:    memory.New(),
		pc:     memory.UserSpace,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	if err := c.mem.Load(rom); err != nil {
		return nil, err
	}
	return c, nil
}

// Cycle runs one fetch/decode/execute step against the supplied keypad
// snapshot.
//
// While suspended on a key wait the cycle instead scans keys 0..15 in
// ascending order: the first pressed key lands in the waiting register and
// execution resumes on the next cycle. With no key pressed the cycle is a
// true no-op; timers are not touched here, see TickTimers.
//
// Stack overflow/underflow and out of range addressing abort with an error
// naming the faulting opcode and address. Unknown opcodes and the legacy SYS
// instruction are not errors, they have already consumed their two bytes.
func (c *CPU) Cycle(keys Keys) (Output, error) {
	if c.awaitingKey {
		for k := uint8(0); k < 16; k++ {
			if keys[k] {
				c.regs.V[c.awaitReg] = k
				c.awaitingKey = false
				break
			}
		}
		return Output{Framebuffer: c.fb}, nil
	}

	pc := c.pc
	op, err := c.fetch()
	if err != nil {
		return Output{}, err
	}

	out, err := c.execute(op, op.Decode(), keys)
	if err != nil {
		return Output{}, fmt.Errorf("opcode %04X at %03X: %w", uint16(op), pc, err)
	}
	out.Framebuffer = c.fb
	return out, nil
}

// fetch reads the big-endian word at PC and advances PC by 2. The bound
// holds both before and after the fetch: a word crossing 4096 and a PC that
// lands on 4096 after advancing are equally fatal.
func (c *CPU) fetch() (Opcode, error) {
	hi, err := c.mem.Read(c.pc)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	lo, err := c.mem.Read(c.pc + 1)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	c.pc += 2
	if int(c.pc) >= memory.Size {
		return 0, fmt.Errorf("program counter advanced to %#04x: %w",
			c.pc, memory.ErrAddressOutOfRange)
	}
	return Opcode(uint16(hi)<<8 | uint16(lo)), nil
}

//nolint:gocyclo // one flat switch over the closed instruction set
func (c *CPU) execute(op Opcode, in Instruction, keys Keys) (Output, error) {
	var out Output

	switch in.Kind {
	case Unknown:
		c.logger.Debug("unknown opcode ignored", log.Hex("opcode", uint16(op)))

	case SysAddr:
		// 0NNN called native code on the COSMAC VIP, a no-op everywhere since
		c.logger.Debug("sys instruction ignored", log.Hex("addr", in.NNN))

	case Cls:
		c.fb.Reset()
		out.DisplayUpdated = true

	case Ret:
		addr, err := c.stack.Pop()
		if err != nil {
			return out, err
		}
		c.pc = addr

	case Jump:
		c.pc = in.NNN

	case Call:
		if err := c.stack.Push(c.pc); err != nil {
			return out, err
		}
		c.pc = in.NNN

	case SkipEqImm:
		if c.regs.V[in.X] == in.KK {
			c.pc += 2
		}

	case SkipNeImm:
		if c.regs.V[in.X] != in.KK {
			c.pc += 2
		}

	case SkipEqReg:
		if c.regs.V[in.X] == c.regs.V[in.Y] {
			c.pc += 2
		}

	case SkipNeReg:
		if c.regs.V[in.X] != c.regs.V[in.Y] {
			c.pc += 2
		}

	case LoadImm:
		c.regs.V[in.X] = in.KK

	case AddImm:
		// no carry flag on the immediate form
		c.regs.V[in.X] += in.KK

	case LoadReg:
		c.regs.V[in.X] = c.regs.V[in.Y]

	case Or:
		c.regs.V[in.X] |= c.regs.V[in.Y]

	case And:
		c.regs.V[in.X] &= c.regs.V[in.Y]

	case Xor:
		c.regs.V[in.X] ^= c.regs.V[in.Y]

	case AddReg:
		sum := uint16(c.regs.V[in.X]) + uint16(c.regs.V[in.Y])
		var carry uint8
		if sum > 0xFF {
			carry = 1
		}
		c.regs.V[in.X] = uint8(sum)
		c.regs.V[VF] = carry

	case SubReg:
		// VF=1 means no borrow occurred
		vx, vy := c.regs.V[in.X], c.regs.V[in.Y]
		var noBorrow uint8
		if vx >= vy {
			noBorrow = 1
		}
		c.regs.V[in.X] = vx - vy
		c.regs.V[VF] = noBorrow

	case Shr:
		bit := c.regs.V[in.X] & 0x01
		c.regs.V[in.X] >>= 1
		c.regs.V[VF] = bit

	case SubN:
		vx, vy := c.regs.V[in.X], c.regs.V[in.Y]
		var noBorrow uint8
		if vy >= vx {
			noBorrow = 1
		}
		c.regs.V[in.X] = vy - vx
		c.regs.V[VF] = noBorrow

	case Shl:
		bit := c.regs.V[in.X] >> 7
		c.regs.V[in.X] <<= 1
		c.regs.V[VF] = bit

	case LoadIndex:
		c.regs.I = in.NNN

	case JumpV0:
		c.pc = in.NNN + uint16(c.regs.V[0])

	case Random:
		c.regs.V[in.X] = uint8(c.rng.Intn(256)) & in.KK

	case Draw:
		updated, err := c.draw(in)
		if err != nil {
			return out, err
		}
		out.DisplayUpdated = updated

	case SkipKey:
		if keys[c.regs.V[in.X]&0x0F] {
			c.pc += 2
		}

	case SkipNoKey:
		if !keys[c.regs.V[in.X]&0x0F] {
			c.pc += 2
		}

	case ReadDelay:
		c.regs.V[in.X] = c.delayTimer

	case WaitKey:
		c.awaitingKey = true
		c.awaitReg = in.X

	case SetDelay:
		c.delayTimer = c.regs.V[in.X]

	case SetSound:
		c.soundTimer = c.regs.V[in.X]

	case AddIndex:
		c.regs.I += uint16(c.regs.V[in.X])

	case LoadFont:
		c.regs.I = memory.FontAddress(c.regs.V[in.X])

	case StoreBCD:
		v := c.regs.V[in.X]
		digits := [3]uint8{v / 100, v / 10 % 10, v % 10}
		for i, d := range digits {
			if err := c.mem.Write(c.regs.I+uint16(i), d); err != nil {
				return out, err
			}
		}

	case StoreRegs:
		// V0..Vx inclusive, I itself stays put
		for i := uint16(0); i <= uint16(in.X); i++ {
			if err := c.mem.Write(c.regs.I+i, c.regs.V[i]); err != nil {
				return out, err
			}
		}

	case LoadRegs:
		for i := uint16(0); i <= uint16(in.X); i++ {
			b, err := c.mem.Read(c.regs.I + i)
			if err != nil {
				return out, err
			}
			c.regs.V[i] = b
		}
	}

	return out, nil
}

// draw XORs an n row sprite read from memory at I onto the framebuffer at
// (Vx, Vy). Coordinates wrap modulo the screen dimensions per cell, not per
// sprite. VF is cleared first and set to 1, never back to 0, when a lit
// pixel is erased.
func (c *CPU) draw(in Instruction) (bool, error) {
	x0 := int(c.regs.V[in.X]) % display.Width
	y0 := int(c.regs.V[in.Y]) % display.Height

	c.regs.V[VF] = 0
	for row := 0; row < int(in.N); row++ {
		sprite, err := c.mem.Read(c.regs.I + uint16(row))
		if err != nil {
			return false, err
		}
		for col := 0; col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			cell := (y0+row)%display.Height*display.Width + (x0+col)%display.Width
			if c.fb.Get(cell) == 1 {
				c.regs.V[VF] = 1
			}
			c.fb.Set(cell, c.fb.Get(cell)^1)
		}
	}
	return true, nil
}
