package hints

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/log"
)

// Func is a hint routine.
type Func func(h Host, s *Scope) error

// Processor executes the routine registered for code. It returns an error
// wrapping ErrUnknownHint when it has no such routine.
type Processor interface {
	Execute(code string, h Host, s *Scope) error
}

// Catalog maps exact hint text to its routine.
type Catalog map[string]Func

func (c Catalog) Execute(code string, h Host, s *Scope) error {
	fn, ok := c[code]
	if !ok {
		return &UnknownHintError{Code: code}
	}
	log.Trace("Running hint", "hint", summary(code))
	if err := fn(h, s); err != nil {
		return fmt.Errorf("hint %q: %w", summary(code), err)
	}
	return nil
}

// Codes lists the registered hint texts in sorted order.
func (c Catalog) Codes() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Chain tries each processor in order and moves on only when one does not
// know the hint. Any other outcome, success or failure, is final.
type Chain []Processor

func (c Chain) Execute(code string, h Host, s *Scope) error {
	for _, p := range c {
		err := p.Execute(code, h, s)
		if errors.Is(err, ErrUnknownHint) {
			continue
		}
		return err
	}
	return &UnknownHintError{Code: code}
}

// ExtendedProcessor tries a custom processor before its own built-in
// catalog, so custom entries shadow built-in ones with the same text.
type ExtendedProcessor struct {
	custom  Processor
	builtin Catalog
}

func NewExtendedProcessor(custom Processor) *ExtendedProcessor {
	return &ExtendedProcessor{custom: custom, builtin: make(Catalog)}
}

// AddHint registers fn in the built-in catalog.
func (p *ExtendedProcessor) AddHint(code string, fn Func) {
	p.builtin[code] = fn
}

func (p *ExtendedProcessor) Execute(code string, h Host, s *Scope) error {
	err := p.custom.Execute(code, h, s)
	if !errors.Is(err, ErrUnknownHint) {
		return err
	}
	log.Trace("Falling back to built-in hints", "hint", summary(code))
	return p.builtin.Execute(code, h, s)
}
