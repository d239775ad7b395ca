// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyfasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// ErrMissingHeader is returned when sequence data is found before
// the first header line.
var ErrMissingHeader = errors.New("tinyfasta: sequence line before header")

// Parser reads FASTA records from a file.
type Parser struct {
	// Path is the location of the FASTA file.
	Path string

	open Opener
}

// NewParser returns a Parser for the file at path. The file is opened
// with open when iteration begins. If open is nil, Open is used.
func NewParser(path string, open Opener) *Parser {
	if open == nil {
		open = Open
	}
	return &Parser{Path: path, open: open}
}

// Scan returns a Scanner for a single pass over the parser's file.
func (p *Parser) Scan() *Scanner {
	return &Scanner{path: p.Path, open: p.open}
}

// All returns an iterator over the records in the parser's file. The
// file is closed when the iterator completes or the loop is left early.
// A non-nil error is yielded at most once, as the final element.
func (p *Parser) All() iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		sc := p.Scan()
		defer sc.Close()
		for sc.Next() {
			if !yield(sc.Record(), nil) {
				return
			}
		}
		if err := sc.Error(); err != nil {
			yield(nil, err)
		}
	}
}

// ReadAll returns all the records in the parser's file.
func (p *Parser) ReadAll() ([]*Record, error) {
	var recs []*Record
	for r, err := range p.All() {
		if err != nil {
			return recs, err
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// Scanner is a single pass pull iterator over FASTA records. Successive
// calls to Next step through the records of the file. A Scanner is not
// safe for concurrent use.
type Scanner struct {
	path string
	open Opener

	rc      io.ReadCloser
	r       *bufio.Reader
	line    int
	readErr error

	current *Record
	next    *Record

	done bool
	err  error
}

// Next advances the scanner to the next record, which is then available
// through Record. It returns false when the scan stops, either by
// reaching the end of the input or an error. The underlying file is
// opened on the first call and closed when Next returns false.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	if s.r == nil {
		rc, err := s.open(s.path)
		if err != nil {
			s.stop(err)
			return false
		}
		s.rc = rc
		s.r = bufio.NewReader(rc)
	}
	for s.readErr == nil {
		line, err := s.r.ReadString('\n')
		s.readErr = err
		if line == "" {
			continue
		}
		s.line++
		if !strings.HasPrefix(line, ">") {
			if s.next == nil {
				s.stop(fmt.Errorf("line %d: %w", s.line, ErrMissingHeader))
				return false
			}
			s.next.AddSequenceLine(line)
			continue
		}
		r := s.next
		s.next = NewRecord(line)
		if r != nil {
			s.current = r
			return true
		}
	}
	if s.readErr != io.EOF {
		s.stop(s.readErr)
		return false
	}
	s.current, s.next = s.next, nil
	s.stop(nil)
	return s.current != nil
}

// stop ends the scan, releasing the file. A non-nil err is retained
// for Error in place of any error from closing the file.
func (s *Scanner) stop(err error) {
	if err != nil {
		s.current = nil
		s.next = nil
	}
	cerr := s.Close()
	if err == nil {
		err = cerr
	}
	s.err = err
}

// Record returns the most recent record read by a call to Next.
func (s *Scanner) Record() *Record { return s.current }

// Error returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Error() error { return s.err }

// Close releases the underlying file. It is safe to call Close more
// than once and before the scan is complete; subsequent calls to Next
// return false.
func (s *Scanner) Close() error {
	s.done = true
	if s.rc == nil {
		return nil
	}
	rc := s.rc
	s.rc = nil
	return rc.Close()
}
