package cpu

import "errors"

var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
)

// Stack is the bounded LIFO of return addresses, sixteen entries deep.
// Overflow and underflow are fatal to the emulation, never silently dropped.
type Stack struct {
	addrs [16]uint16
	sp    int
}

func (s *Stack) Push(addr uint16) error {
	if s.sp == len(s.addrs) {
		return ErrStackOverflow
	}
	s.addrs[s.sp] = addr
	s.sp++
	return nil
}

func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.addrs[s.sp], nil
}

// Depth returns how many addresses are currently pushed.
func (s *Stack) Depth() int {
	return s.sp
}
