// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/u-root/plbench/pkg/console"
	"github.com/u-root/plbench/pkg/led"
	"github.com/u-root/plbench/pkg/logger"
	"go.uber.org/zap"
)

// LEDShell is the single key menu of the LED controller.
type LEDShell struct {
	base
	l   *led.Controller
	log *zap.SugaredLogger
}

func NewLEDShell(c console.Console, l *led.Controller) *LEDShell {
	return &LEDShell{
		base: newBase(c),
		l:    l,
		log:  logger.LogContainer.GetSimpleLogger(),
	}
}

func (s *LEDShell) menu() {
	s.printf("\r\n")
	s.printf("========================================\r\n")
	s.printf("   KV260 LED Mode Controller\r\n")
	s.printf("========================================\r\n")
	s.printf("  [PL Mode Control]\r\n")
	s.printf("    0: OFF\r\n")
	s.printf("    1: BLINK   (all LEDs blink)\r\n")
	s.printf("    2: COUNTER (binary counter)\r\n")
	s.printf("    3: KNIGHT  (knight rider)\r\n")
	s.printf("\r\n")
	s.printf("  [Direct LED Control]\r\n")
	s.printf("    4: All ON\r\n")
	s.printf("    5: All OFF\r\n")
	s.printf("    6: Alternate 1 (0xAA)\r\n")
	s.printf("    7: Alternate 2 (0x55)\r\n")
	s.printf("    8: Custom pattern (hex)\r\n")
	s.printf("\r\n")
	s.printf("  [Demos]\r\n")
	s.printf("    D: LED demo\r\n")
	s.printf("    C: Cycle PL modes\r\n")
	s.printf("    T: Sequential LED test\r\n")
	s.printf("    B: Binary count\r\n")
	s.printf("    K: Knight rider (software)\r\n")
	s.printf("\r\n")
	s.printf("    S: Show status\r\n")
	s.printf("    Q: Quit\r\n")
	s.printf("========================================\r\n")
	s.printf("Select: ")
}

// Run initializes the GPIO channels and serves the menu until Q.
func (s *LEDShell) Run() error {
	if err := s.l.Init(); err != nil {
		return err
	}
	if err := s.l.SetMode(led.Off); err != nil {
		return err
	}
	for {
		s.menu()
		key, err := s.readKey()
		if err != nil {
			return finished(err)
		}
		s.printf("%c\r\n", key)
		quit, err := s.dispatch(key)
		if err != nil {
			return finished(err)
		}
		if quit {
			return nil
		}
	}
}

// readKey skips line endings and blanks.
func (s *LEDShell) readKey() (byte, error) {
	for {
		k, err := s.e.ReadKey()
		if err != nil {
			return 0, err
		}
		switch k {
		case '\r', '\n', ' ', '\t':
			continue
		}
		return k, nil
	}
}

// dispatch runs one menu entry. Controller errors are printed and do not
// end the session.
func (s *LEDShell) dispatch(key byte) (quit bool, err error) {
	var opErr error
	switch key {
	case '0', '1', '2', '3':
		m := led.Mode(key - '0')
		s.printf("\r\n>> PL Mode: %s\r\n", m)
		opErr = s.l.SetMode(m)
	case '4':
		s.printf("\r\n>> All LEDs ON\r\n")
		opErr = s.l.SetLED(led.AllOn)
	case '5':
		s.printf("\r\n>> All LEDs OFF\r\n")
		opErr = s.l.SetLED(led.AllOff)
	case '6':
		s.printf("\r\n>> Alternate pattern 1\r\n")
		opErr = s.l.SetLED(led.Alternate1)
	case '7':
		s.printf("\r\n>> Alternate pattern 2\r\n")
		opErr = s.l.SetLED(led.Alternate2)
	case '8':
		v, ok, err := s.e.ReadHex("Enter hex value (00-FF): 0x", 2)
		if err != nil {
			return false, err
		}
		if !ok {
			s.printf("Invalid input. Cancelled.\r\n")
			break
		}
		opErr = s.l.SetLED(uint8(v))
	case 'd', 'D':
		opErr = s.l.Demo()
	case 'c', 'C':
		s.printf("\r\n>> Cycling PL modes (5 s each)\r\n")
		opErr = s.l.ModeCycle()
	case 't', 'T':
		opErr = s.l.SequentialTest()
	case 'b', 'B':
		opErr = s.l.BinaryCount()
	case 'k', 'K':
		opErr = s.l.KnightRider()
	case 's', 'S':
		st, err := s.l.Status()
		if err != nil {
			opErr = err
			break
		}
		st.Print(s.c)
	case 'q', 'Q':
		s.printf("\r\nTurning off LEDs...\r\n")
		if err := s.l.SetMode(led.Off); err != nil {
			s.log.Warnw("reset mode on exit", "err", err)
		}
		if err := s.l.SetLED(led.AllOff); err != nil {
			s.log.Warnw("clear LEDs on exit", "err", err)
		}
		s.printf("Goodbye!\r\n")
		return true, nil
	default:
		s.printf("Invalid option.\r\n")
	}
	if opErr != nil {
		s.printf("ERROR: %v\r\n", opErr)
		s.log.Errorw("LED operation failed", "key", string(key), "err", opErr)
	}
	return false, nil
}
