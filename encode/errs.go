package encode

import (
	"errors"
	"fmt"

	"github.com/signadot/toml-format/go-toml/ir"
)

var (
	ErrEncoding = errors.New("encoding error")
	ErrTooDeep  = ir.ErrTooDeep
)

func depthErr() error {
	return fmt.Errorf("%w: %w", ErrEncoding, ErrTooDeep)
}
