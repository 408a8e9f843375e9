// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"errors"

	"github.com/u-root/plbench/pkg/bram"
	"github.com/u-root/plbench/pkg/console"
	"github.com/u-root/plbench/pkg/logger"
	"github.com/u-root/plbench/pkg/pattern"
	"go.uber.org/zap"
)

type BRAMShell struct {
	base
	b   *bram.BRAM
	log *zap.SugaredLogger
}

func NewBRAMShell(c console.Console, b *bram.BRAM) *BRAMShell {
	return &BRAMShell{
		base: newBase(c),
		b:    b,
		log:  logger.LogContainer.GetSimpleLogger(),
	}
}

func (s *BRAMShell) menu() {
	s.printf("\r\n")
	s.printf(separator)
	s.printf("                    MAIN MENU\r\n")
	s.printf(separator)
	s.printf("  [Write Operations]\r\n")
	s.printf("    1. Write Single Word\r\n")
	s.printf("    2. Write Multiple Words\r\n")
	s.printf("    3. Fill All BRAM with Value\r\n")
	s.printf("\r\n")
	s.printf("  [Read Operations]\r\n")
	s.printf("    4. Read Single Word\r\n")
	s.printf("    5. Read Multiple Words\r\n")
	s.printf("    6. Read All BRAM\r\n")
	s.printf("\r\n")
	s.printf("  [Pattern Tests]\r\n")
	s.printf("    7. Write Test Pattern\r\n")
	s.printf("    8. Verify Test Pattern\r\n")
	s.printf("\r\n")
	s.printf("  [ILA Debug]\r\n")
	s.printf("    9. ILA Burst Test (rapid access)\r\n")
	s.printf("\r\n")
	s.printf("  [Utilities]\r\n")
	s.printf("   10. Hex Dump\r\n")
	s.printf("   11. Clear All BRAM\r\n")
	s.printf("   12. Show BRAM Info\r\n")
	s.printf("\r\n")
	s.printf("    0. Exit\r\n")
	s.printf(separator)
	s.printf("Enter your choice: ")
}

// Run prints the banner and serves the menu until exit.
func (s *BRAMShell) Run() error {
	s.printf("\r\n")
	s.printf("============================================================\r\n")
	s.printf("   KV260 BRAM AXI Test Application with ILA Debugging\r\n")
	s.printf("============================================================\r\n")
	s.printf("\r\n")
	s.info()

	for {
		s.menu()
		choice, err := s.e.ReadChoice()
		if err != nil {
			return finished(err)
		}
		if choice == 0 {
			s.printf("\r\nExiting...\r\n")
			break
		}
		if err := s.dispatch(choice); err != nil {
			return finished(err)
		}
		s.printf("\r\n")
	}
	s.printf("Program terminated.\r\n")
	return nil
}

func (s *BRAMShell) dispatch(choice int) error {
	switch choice {
	case 1:
		return s.writeSingle()
	case 2:
		return s.writeMultiple()
	case 3:
		return s.fillAll()
	case 4:
		return s.readSingle()
	case 5:
		return s.readMultiple()
	case 6:
		s.readAll()
	case 7:
		return s.patternWrite()
	case 8:
		return s.patternVerify()
	case 9:
		return s.burst()
	case 10:
		return s.hexDump()
	case 11:
		s.printf("Clearing all BRAM to 0x00000000...\r\n")
		s.b.FillAll(0)
		s.printf("Done!\r\n")
	case 12:
		s.info()
	default:
		s.printf("Invalid choice! Please try again.\r\n")
	}
	return nil
}

func (s *BRAMShell) info() {
	s.b.Info(s.c)
	s.printf("\r\n")
}

// failed prints a validation error. It reports whether there was one.
func (s *BRAMShell) failed(err error) bool {
	if err == nil {
		return false
	}
	s.printf("ERROR: %v!\r\n", err)
	return true
}

func (s *BRAMShell) offsetPrompt() string {
	return "Enter offset (0-" + itoa(s.b.MaxOffset()) + "): "
}

func (s *BRAMShell) writeSingle() error {
	s.title("Write Single Word")
	off, err := s.e.ReadDec(s.offsetPrompt())
	if err != nil {
		return err
	}
	if s.failed(s.b.CheckOffset(off)) {
		return nil
	}
	v, _, err := s.e.ReadHex("Enter data (hex): 0x", console.MaxHexDigits)
	if err != nil {
		return err
	}
	s.printf("\r\nWriting 0x%08X to offset %d (addr: 0x%08X)...\r\n", v, off, s.b.Address(off))
	rb, ok, err := s.b.WriteVerify(off, v)
	if s.failed(err) {
		return nil
	}
	s.printf("Readback: 0x%08X\r\n", rb)
	if ok {
		s.printf("SUCCESS: Write verified!\r\n")
	} else {
		s.printf("ERROR: Mismatch! Expected 0x%08X, got 0x%08X\r\n", v, rb)
	}
	return nil
}

func (s *BRAMShell) readCount(prompt, limited string) (uint32, error) {
	count, err := s.e.ReadDec(prompt)
	if err != nil {
		return 0, err
	}
	count, clamped := bram.ClampMulti(count)
	if clamped {
		s.printf("%s\r\n", limited)
	}
	return count, nil
}

// readRange asks for a start offset and a word count. ok is false when the
// range was rejected.
func (s *BRAMShell) readRange(countPrompt, limited string) (start, count uint32, ok bool, err error) {
	start, err = s.e.ReadDec("Enter start offset: ")
	if err != nil {
		return 0, 0, false, err
	}
	if s.failed(s.b.CheckOffset(start)) {
		return 0, 0, false, nil
	}
	count, err = s.readCount(countPrompt, limited)
	if err != nil {
		return 0, 0, false, err
	}
	if err := s.b.CheckRange(start, count); err != nil {
		if errors.Is(err, bram.ErrOutOfRange) {
			s.printf("ERROR: End offset exceeds BRAM size!\r\n")
		} else {
			s.failed(err)
		}
		return 0, 0, false, nil
	}
	return start, count, true, nil
}

func (s *BRAMShell) writeMultiple() error {
	s.title("Write Multiple Words")
	start, count, ok, err := s.readRange("Enter word count (max 64): ", "Limited to 64 words.")
	if err != nil || !ok {
		return err
	}

	s.printf("\r\nSelect data pattern:\r\n")
	s.printf("  1. Manual input for each word\r\n")
	s.printf("  2. Incrementing (0x00, 0x01, 0x02, ...)\r\n")
	s.printf("  3. Base value + offset\r\n")
	s.printf("  4. Same value for all\r\n")
	s.printf("Choice: ")
	code, err := s.e.ReadChoice()
	if err != nil {
		return err
	}
	src, fellBack := bram.ParseSource(code)
	if fellBack {
		s.printf("Invalid choice, using incrementing pattern.\r\n")
		s.log.Warnw("unknown data source, using incrementing", "code", code)
	}

	var arg uint32
	var manual []uint32
	switch src {
	case bram.SourceManual:
		for i := uint32(0); i < count; i++ {
			v, _, err := s.e.ReadHex("Data["+itoa(i)+"]: 0x", console.MaxHexDigits)
			if err != nil {
				return err
			}
			manual = append(manual, v)
		}
	case bram.SourceBaseOffset:
		if arg, _, err = s.e.ReadHex("Enter base value: 0x", console.MaxHexDigits); err != nil {
			return err
		}
	case bram.SourceConstant:
		if arg, _, err = s.e.ReadHex("Enter value: 0x", console.MaxHexDigits); err != nil {
			return err
		}
	}
	vals := src.Values(count, arg, manual)
	switch src {
	case bram.SourceIncrementing:
		s.printf("Pattern: 0x00, 0x01, 0x02, ...\r\n")
	case bram.SourceBaseOffset:
		s.printf("Pattern:")
		for i := 0; i < len(vals) && i < 3; i++ {
			s.printf(" 0x%08X,", vals[i])
		}
		s.printf(" ...\r\n")
	}

	s.printf("\r\nWriting %d words starting at offset %d...\r\n", count, start)
	if s.failed(s.b.WriteWords(start, vals)) {
		return nil
	}
	s.printf("Write complete! Verifying...\r\n")
	r, err := s.b.VerifyWords(start, vals)
	if s.failed(err) {
		return nil
	}
	s.report(r, "All "+itoa(count)+" words verified!")
	return nil
}

// report prints the kept mismatches and the verdict.
func (s *BRAMShell) report(r *bram.VerifyResult, success string) {
	for _, m := range r.Mismatches {
		s.printf("ERROR at offset %d: expected 0x%08X, got 0x%08X\r\n", m.Offset, m.Expected, m.Actual)
	}
	if r.Total > uint32(len(r.Mismatches)) {
		s.printf("... %d more not shown\r\n", r.Total-uint32(len(r.Mismatches)))
	}
	if r.Passed() {
		s.printf("SUCCESS: %s\r\n", success)
	} else {
		s.printf("FAILED: %d errors found!\r\n", r.Total)
	}
}

func (s *BRAMShell) fillAll() error {
	s.title("Fill All BRAM with Value")
	v, _, err := s.e.ReadHex("Enter fill value: 0x", console.MaxHexDigits)
	if err != nil {
		return err
	}
	s.printf("\r\nFilling all %d words with 0x%08X...\r\n", s.b.Words(), v)
	s.b.FillAll(v)
	s.printf("Fill complete!\r\n")
	s.printf("Verifying samples...\r\n")
	s.report(s.b.SampleFill(v), "Sample verification passed!")
	return nil
}

func (s *BRAMShell) readSingle() error {
	s.title("Read Single Word")
	off, err := s.e.ReadDec(s.offsetPrompt())
	if err != nil {
		return err
	}
	v, err := s.b.ReadWord(off)
	if s.failed(err) {
		return nil
	}
	s.printf("\r\nAddress: 0x%08X\r\n", s.b.Address(off))
	s.printf("Offset:  %d\r\n", off)
	s.printf("Data:    0x%08X (%d decimal)\r\n", v, v)
	return nil
}

func (s *BRAMShell) readMultiple() error {
	s.title("Read Multiple Words")
	start, count, ok, err := s.readRange("Enter word count (max 64 for display): ", "Limited to 64 words for display.")
	if err != nil || !ok {
		return err
	}
	s.printf("\r\n")
	s.failed(s.b.HexDump(s.c, start, count))
	return nil
}

func (s *BRAMShell) readAll() {
	s.title("Read All BRAM")
	s.printf("Reading all BRAM (%d words)...\r\n", s.b.Words())
	sum := s.b.Summary()
	s.printf("Summary:\r\n")
	s.printf("  - Total words: %d\r\n", sum.Words)
	s.printf("  - Non-zero words: %d\r\n", sum.NonZero)
	if sum.NonZero > 0 {
		s.printf("  - First non-zero at offset: %d (0x%08X)\r\n", sum.FirstOff, sum.FirstData)
		s.printf("  - Last non-zero at offset: %d (0x%08X)\r\n", sum.LastOff, sum.LastData)
	}

	n := uint32(16)
	if n > s.b.Words() {
		n = s.b.Words()
	}
	s.printf("\r\nDisplay first %d and last %d words:\r\n", n, n)
	s.printf("\r\n--- First %d words ---\r\n", n)
	s.failed(s.b.HexDump(s.c, 0, n))
	s.printf("\r\n--- Last %d words ---\r\n", n)
	s.failed(s.b.HexDump(s.c, s.b.Words()-n, n))
}

func (s *BRAMShell) choosePattern(prompt string) (pattern.Pattern, bool, error) {
	s.printf("%s\r\n", prompt)
	s.printf("  1. Incrementing (0, 1, 2, 3, ...)\r\n")
	s.printf("  2. Address pattern (offset value)\r\n")
	s.printf("  3. Checkerboard (0x55AA55AA / 0xAA55AA55)\r\n")
	s.printf("  4. Walking ones\r\n")
	s.printf("  5. All 0xFFFFFFFF\r\n")
	s.printf("  6. All 0x00000000\r\n")
	s.printf("Choice: ")
	code, err := s.e.ReadChoice()
	if err != nil {
		return 0, false, err
	}
	p, ok := pattern.Lookup(code)
	if !ok {
		s.printf("Invalid choice!\r\n")
	}
	return p, ok, nil
}

func (s *BRAMShell) patternWrite() error {
	s.title("Write Test Pattern")
	p, ok, err := s.choosePattern("Select pattern:")
	if err != nil || !ok {
		return err
	}
	s.printf("Writing pattern to all %d words...\r\n", s.b.Words())
	s.b.WritePattern(p)
	s.printf("Pattern: %s\r\n", p)
	s.printf("Pattern write complete!\r\n")
	return nil
}

func (s *BRAMShell) patternVerify() error {
	s.title("Verify Test Pattern")
	p, ok, err := s.choosePattern("Select pattern to verify:")
	if err != nil || !ok {
		return err
	}
	s.printf("Verifying pattern...\r\n")
	s.report(s.b.VerifyPattern(p), "All "+itoa(s.b.Words())+" words verified correctly!")
	return nil
}

func (s *BRAMShell) burst() error {
	s.title("ILA Burst Test")
	s.printf("This test performs rapid consecutive accesses\r\n")
	s.printf("for easy ILA capture. Set ILA trigger before running.\r\n")
	s.printf(separator)
	s.printf("\r\nSelect burst type:\r\n")
	s.printf("  1. Write burst (100 consecutive writes)\r\n")
	s.printf("  2. Read burst (100 consecutive reads)\r\n")
	s.printf("  3. Mixed read/write burst\r\n")
	s.printf("  4. Custom burst count\r\n")
	s.printf("Choice: ")
	code, err := s.e.ReadChoice()
	if err != nil {
		return err
	}
	kind := bram.BurstKind(code)
	if kind < bram.BurstWrite || kind > bram.BurstCustom {
		s.printf("Invalid choice!\r\n")
		return nil
	}

	s.printf("\r\n*** Arm ILA trigger now! Press any key to start burst ***\r\n")
	if _, err := s.e.ReadKey(); err != nil {
		return err
	}
	var count uint32
	if kind == bram.BurstCustom {
		if count, err = s.e.ReadDec("Enter burst count: "); err != nil {
			return err
		}
		count = s.b.BurstLimit(count)
		s.printf("\r\n*** Press any key to start ***\r\n")
		if _, err := s.e.ReadKey(); err != nil {
			return err
		}
		s.printf("Starting custom burst (%d operations)...\r\n", count)
	} else {
		s.printf("Starting %s burst...\r\n", kind)
	}
	if _, err := s.b.Burst(kind, count); s.failed(err) {
		return nil
	}
	s.printf("%s burst complete!\r\n", title(kind.String()))
	return nil
}

func (s *BRAMShell) hexDump() error {
	start, err := s.e.ReadDec("Start offset (decimal): ")
	if err != nil {
		return err
	}
	count, err := s.e.ReadDec("Word count: ")
	if err != nil {
		return err
	}
	s.failed(s.b.HexDump(s.c, start, count))
	return nil
}
