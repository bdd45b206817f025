package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/emrzvv/bulksim/internal/errs"
)

// Scanner reads whitespace-separated tokens and reports the name of the
// field it was trying to read on failure.
type Scanner struct {
	sc *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

func (s *Scanner) Token(field string) (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", fmt.Errorf("unable to parse %s: %v: %w", field, err, errs.ErrMalformedInput)
		}
		return "", fmt.Errorf("unable to parse %s: unexpected end of input: %w", field, errs.ErrMalformedInput)
	}
	return s.sc.Text(), nil
}

func (s *Scanner) Float(field string) (float64, error) {
	tok, err := s.Token(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s from %q: %w", field, tok, errs.ErrMalformedInput)
	}
	return v, nil
}

func (s *Scanner) Int(field string) (int, error) {
	tok, err := s.Token(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s from %q: %w", field, tok, errs.ErrMalformedInput)
	}
	return v, nil
}

// Done reports an error if any token is left.
func (s *Scanner) Done() error {
	if s.sc.Scan() {
		return fmt.Errorf("unexpected trailing token %q: %w", s.sc.Text(), errs.ErrMalformedInput)
	}
	return s.sc.Err()
}
