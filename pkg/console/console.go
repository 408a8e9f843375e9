// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console is the operator side of the menu programs: a byte
// oriented terminal with a tiny line editor on top.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const (
	maxChoiceDigits = 63
	maxDecDigits    = 10
	// MaxHexDigits is the width of a full 32-bit word.
	MaxHexDigits = 8

	backspace = '\b'
	del       = 127
)

// Console is a byte level terminal.
type Console interface {
	io.Writer
	ReadByte() (byte, error)
	WriteByte(c byte) error
}

type rw struct {
	r *bufio.Reader
	w io.Writer
}

// New builds a Console on top of a reader and a writer.
func New(r io.Reader, w io.Writer) Console {
	return &rw{bufio.NewReader(r), w}
}

func (c *rw) ReadByte() (byte, error) {
	return c.r.ReadByte()
}

func (c *rw) WriteByte(b byte) error {
	_, err := c.w.Write([]byte{b})
	return err
}

func (c *rw) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

// Editor reads numbers from a Console.
type Editor struct {
	c Console
}

func NewEditor(c Console) *Editor {
	return &Editor{c}
}

func (e *Editor) Printf(format string, a ...interface{}) {
	fmt.Fprintf(e.c, format, a...)
}

// ReadKey returns the next byte from the operator.
func (e *Editor) ReadKey() (byte, error) {
	return e.c.ReadByte()
}

// readLine collects up to max bytes accepted by ok, echoing them, until CR
// or LF. Backspace and DEL erase the last byte. Once the line is full further
// input is dropped until the terminator.
func (e *Editor) readLine(max int, ok func(byte) bool) (string, error) {
	buf := make([]byte, 0, max)
	for {
		c, err := e.c.ReadByte()
		if err != nil {
			return "", err
		}
		switch {
		case c == '\r' || c == '\n':
			e.Printf("\r\n")
			return string(buf), nil
		case c == backspace || c == del:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				e.Printf("\b \b")
			}
		case ok(c) && len(buf) < max:
			buf = append(buf, c)
			if err := e.c.WriteByte(c); err != nil {
				return "", err
			}
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// parse keeps the low 32 bits of s. The line editor bounds the length so
// the 64-bit conversion cannot fail on anything but an empty string, which
// reads as 0.
func parse(s string, base int) uint32 {
	v, _ := strconv.ParseUint(s, base, 64)
	return uint32(v)
}

// ReadChoice reads a menu selection. An empty line gives -1.
func (e *Editor) ReadChoice() (int, error) {
	s, err := e.readLine(maxChoiceDigits, isDigit)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Out of int range; any value works, it is not a menu entry.
		return -1, nil
	}
	return n, nil
}

// ReadDec prints prompt and reads a decimal number of up to 10 digits.
func (e *Editor) ReadDec(prompt string) (uint32, error) {
	e.Printf("%s", prompt)
	s, err := e.readLine(maxDecDigits, isDigit)
	if err != nil {
		return 0, err
	}
	return parse(s, 10), nil
}

// ReadHex prints prompt and reads up to digits hex digits. The second
// result is false when nothing was typed.
func (e *Editor) ReadHex(prompt string, digits int) (uint32, bool, error) {
	e.Printf("%s", prompt)
	s, err := e.readLine(digits, isHex)
	if err != nil {
		return 0, false, err
	}
	return parse(s, 16), s != "", nil
}
