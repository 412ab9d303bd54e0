// Package style defines the formatting style parameters of the layout
// engine and their TOML configuration surface.
//
// The layout algebra is parameterized by exactly five options. All costs
// are integers scaled by the penalty weights; keeping the weights integral
// keeps crossover arithmetic in the optimizer exact.
//
// # Configuration
//
// Styles can be loaded from a TOML file:
//
//	column_limit = 100
//	over_column_limit_penalty = 100
//	line_break_penalty = 2
//	wrap_spaces = 4
//	indentation_spaces = 2
//
// Unknown keys are rejected so that typos in style files surface
// immediately rather than silently falling back to defaults.
package style

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jwojnowski/linefold/pkg/errors"
)

// Style holds the formatting parameters consumed by the layout engine.
type Style struct {
	// ColumnLimit is the column beyond which characters incur overflow
	// penalty.
	ColumnLimit int `toml:"column_limit"`

	// OverColumnLimitPenalty is the cost per character past ColumnLimit.
	OverColumnLimitPenalty int `toml:"over_column_limit_penalty"`

	// LineBreakPenalty is the cost per line break introduced by stacking.
	LineBreakPenalty int `toml:"line_break_penalty"`

	// WrapSpaces is the indentation applied to function-call arguments
	// stacked under their call header.
	WrapSpaces int `toml:"wrap_spaces"`

	// IndentationSpaces is the per-level indentation used by downstream
	// partition consumers. The layout algebra itself does not read it.
	IndentationSpaces int `toml:"indentation_spaces"`
}

// Default returns the default style.
func Default() Style {
	return Style{
		ColumnLimit:            100,
		OverColumnLimitPenalty: 100,
		LineBreakPenalty:       2,
		WrapSpaces:             4,
		IndentationSpaces:      2,
	}
}

// Validate checks that the style parameters are usable by the engine.
func (s Style) Validate() error {
	if s.ColumnLimit <= 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "column_limit must be positive, got %d", s.ColumnLimit)
	}
	if s.OverColumnLimitPenalty < 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "over_column_limit_penalty must be non-negative, got %d", s.OverColumnLimitPenalty)
	}
	if s.LineBreakPenalty < 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "line_break_penalty must be non-negative, got %d", s.LineBreakPenalty)
	}
	if s.WrapSpaces < 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "wrap_spaces must be non-negative, got %d", s.WrapSpaces)
	}
	if s.IndentationSpaces < 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "indentation_spaces must be non-negative, got %d", s.IndentationSpaces)
	}
	return nil
}

// Decode reads a TOML style document from r. Options not present in the
// document keep their default values.
func Decode(r io.Reader) (Style, error) {
	s := Default()
	meta, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "malformed style document")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style option %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Load reads a TOML style file from path.
func Load(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "failed to open style file %s", path)
	}
	defer f.Close()
	return Decode(f)
}
