package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emrzvv/bulksim/internal/errs"
)

// Parse reads `<ID> <params...>` from s.
func Parse(s *Scanner) (Distribution, error) {
	id, err := s.Token("distribution")
	if err != nil {
		return Distribution{}, err
	}

	var d Distribution
	switch id {
	case "CONS":
		v, err := s.Float("value for CONS")
		if err != nil {
			return d, err
		}
		return NewConstant(v), nil
	case "UNIF":
		a, b, err := twoFloats(s, "UNIF", "a", "b")
		if err != nil {
			return d, err
		}
		return NewUniform(a, b), nil
	case "ERLANG":
		shape, err := s.Int("shape for ERLANG")
		if err != nil {
			return d, err
		}
		rate, err := s.Float("rate for ERLANG")
		if err != nil {
			return d, err
		}
		return wrapInvalid(NewErlang(shape, rate))
	case "NORM":
		mean, dev, err := twoFloats(s, "NORM", "mean", "dev")
		if err != nil {
			return d, err
		}
		return wrapInvalid(NewNormal(mean, dev))
	case "EXP":
		rate, err := s.Float("rate for EXP")
		if err != nil {
			return d, err
		}
		return wrapInvalid(NewExponential(rate))
	case "HYPO":
		a, b, err := twoFloats(s, "HYPO", "a", "b")
		if err != nil {
			return d, err
		}
		return NewHypoexponential(a, b), nil
	default:
		return d, fmt.Errorf("unknown distribution %q: %w", id, errs.ErrMalformedInput)
	}
}

// ParseDistribution parses a single distribution and rejects trailing tokens.
func ParseDistribution(text string) (Distribution, error) {
	s := NewScanner(strings.NewReader(text))
	d, err := Parse(s)
	if err != nil {
		return Distribution{}, err
	}
	if err := s.Done(); err != nil {
		return Distribution{}, err
	}
	return d, nil
}

func twoFloats(s *Scanner, id, first, second string) (float64, float64, error) {
	a, err := s.Float(first + " for " + id)
	if err != nil {
		return 0, 0, err
	}
	b, err := s.Float(second + " for " + id)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// wrapInvalid reports constructor rejections as malformed input, since at
// parse time an out-of-range parameter is a defect of the text.
func wrapInvalid(d Distribution, err error) (Distribution, error) {
	if err != nil {
		return Distribution{}, fmt.Errorf("%v: %w", err, errs.ErrMalformedInput)
	}
	return d, nil
}

// Format renders the distribution in the form Parse reads back.
func (d Distribution) Format() string {
	var b strings.Builder
	b.WriteString(d.kind.String())
	for i, p := range d.Params() {
		b.WriteByte(' ')
		if d.kind == Erlang && i == 0 {
			b.WriteString(strconv.Itoa(d.shape))
			continue
		}
		b.WriteString(formatFloat(p))
	}
	return b.String()
}

func (d Distribution) String() string {
	return d.Format()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
