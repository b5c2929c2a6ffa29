package stake

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidModifier = errors.New("invalid modifier")

// Modifier holds the scoring flags of one hand. Use ModifierBuilder to get one.
type Modifier struct {
	kontra    bool
	re        bool
	tout      bool
	sie       bool
	schneider bool
	schwarz   bool
	laufende  int
}

func (m Modifier) Kontra() bool     { return m.kontra }
func (m Modifier) Re() bool         { return m.re }
func (m Modifier) Tout() bool       { return m.tout }
func (m Modifier) Sie() bool        { return m.sie }
func (m Modifier) Schneider() bool  { return m.schneider }
func (m Modifier) Schwarz() bool    { return m.schwarz }
func (m Modifier) NumLaufende() int { return m.laufende }

func (m Modifier) String() string {
	var flags []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{m.kontra, "kontra"}, {m.re, "re"}, {m.tout, "tout"}, {m.sie, "sie"},
		{m.schneider, "schneider"}, {m.schwarz, "schwarz"},
	} {
		if f.set {
			flags = append(flags, f.name)
		}
	}
	if m.laufende > 0 {
		flags = append(flags, fmt.Sprintf("laufende=%d", m.laufende))
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

// ModifierBuilder collects flags and yields an immutable Modifier.
// The zero value is ready to use.
type ModifierBuilder struct {
	m Modifier
}

func NewModifierBuilder() *ModifierBuilder { return &ModifierBuilder{} }

func (b *ModifierBuilder) Kontra(v bool) *ModifierBuilder    { b.m.kontra = v; return b }
func (b *ModifierBuilder) Re(v bool) *ModifierBuilder        { b.m.re = v; return b }
func (b *ModifierBuilder) Tout(v bool) *ModifierBuilder      { b.m.tout = v; return b }
func (b *ModifierBuilder) Sie(v bool) *ModifierBuilder       { b.m.sie = v; return b }
func (b *ModifierBuilder) Schneider(v bool) *ModifierBuilder { b.m.schneider = v; return b }
func (b *ModifierBuilder) Schwarz(v bool) *ModifierBuilder   { b.m.schwarz = v; return b }
func (b *ModifierBuilder) Laufende(n int) *ModifierBuilder   { b.m.laufende = n; return b }

// Build checks the flag combination and returns the Modifier.
// re requires kontra, tout and sie exclude each other.
func (b *ModifierBuilder) Build() (Modifier, error) {
	var errs []string
	if b.m.re && !b.m.kontra {
		errs = append(errs, "re requires kontra")
	}
	if b.m.tout && b.m.sie {
		errs = append(errs, "tout and sie are mutually exclusive")
	}
	if b.m.laufende < 0 {
		errs = append(errs, fmt.Sprintf("number of laufende must be >= 0, got %d", b.m.laufende))
	}
	if len(errs) > 0 {
		return Modifier{}, errors.Wrap(ErrInvalidModifier, strings.Join(errs, "; "))
	}
	return b.m, nil
}
