// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyfasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
)

// Opener opens the file at path for reading.
type Opener func(path string) (io.ReadCloser, error)

// Open opens the file at path as plain text.
func Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// OpenGzip opens the gzip compressed file at path, returning the
// decompressed stream.
func OpenGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}

var gzipMagic = []byte{0x1f, 0x8b}

// OpenAuto opens the file at path, decompressing it if it begins with
// the gzip magic number.
func OpenAuto(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	magic, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(magic, gzipMagic) {
		return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}

// readCloser closes each of its closers in order when Close is called.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
