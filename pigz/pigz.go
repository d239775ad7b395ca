// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pigz provides interaction with the pigz parallel gzip
// decompressor. The gzip command accepts the same arguments when
// Procs is zero.
package pigz

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"text/template"

	"github.com/biogo/external"
)

var ErrMissingRequired = errors.New("pigz: missing required argument")

// PIGZ defines parameters for the pigz decompressor.
type PIGZ struct {
	// Usage: pigz [options] [files ...]
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}pigz{{end}}"` // pigz

	// Operation options:
	Decompress bool `buildarg:"{{if .}}--decompress{{end}}"` // -d: decompress the input
	Stdout     bool `buildarg:"{{if .}}--stdout{{end}}"`     // -c: write to stdout
	Keep       bool `buildarg:"{{if .}}--keep{{end}}"`       // -k: do not delete the input file
	Force      bool `buildarg:"{{if .}}--force{{end}}"`      // -f: force decompression of unrecognised input
	Quiet      bool `buildarg:"{{if .}}--quiet{{end}}"`      // -q: print no messages

	// Parallel options:
	Procs int `buildarg:"{{if .}}--processes{{split}}{{.}}{{end}}"` // -p: number of threads

	// Input file:
	File string `buildarg:"{{.}}"` // "file.gz"
}

// BuildCommand returns an exec.Cmd built from the parameters in p.
func (p PIGZ) BuildCommand() (*exec.Cmd, error) {
	if p.File == "" {
		return nil, ErrMissingRequired
	}
	cl, err := external.Build(p, template.FuncMap{})
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// Open decompresses the file at path to a stream read from the
// decompressor's standard output. Open satisfies the tinyfasta.Opener
// signature as a method value.
//
// Close must be called to reap the decompressor. If the stream was
// read to the end, Close reports a failed decompression.
func (p PIGZ) Open(path string) (io.ReadCloser, error) {
	_, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	p.File = path
	p.Decompress = true
	p.Stdout = true
	cmd, err := p.BuildCommand()
	if err != nil {
		return nil, err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	err = cmd.Start()
	if err != nil {
		return nil, err
	}
	return &commandReader{ReadCloser: out, cmd: cmd, stderr: &stderr}, nil
}

// commandReader reads the standard output of a running command.
type commandReader struct {
	io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer
	eof    bool
}

func (r *commandReader) Read(b []byte) (int, error) {
	n, err := r.ReadCloser.Read(b)
	if err == io.EOF {
		r.eof = true
	}
	return n, err
}

// Close closes the pipe and waits for the command to exit. Closing
// the pipe before the end of the stream stops the command, so its exit
// status is only reported when the stream was read to the end.
func (r *commandReader) Close() error {
	r.ReadCloser.Close()
	err := r.cmd.Wait()
	if err == nil || !r.eof {
		return nil
	}
	if msg := bytes.TrimSpace(r.stderr.Bytes()); len(msg) != 0 {
		return fmt.Errorf("pigz: %v: %s", err, msg)
	}
	return fmt.Errorf("pigz: %v", err)
}
