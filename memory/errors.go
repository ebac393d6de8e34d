package memory

import "errors"

var (
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidRegister = errors.New("invalid register")
	ErrShortValues     = errors.New("not enough values")
	ErrUnterminated    = errors.New("unterminated string")
	ErrNoInstruction   = errors.New("port does not expose the next instruction")
)
