// Package serial implements the Game Boy's serial link port (SB/SC), the
// single-byte shift register used for link-cable communication.
//
// Only the two memory-mapped registers and their shift timing are modeled;
// there is no real link-cable peer. Outgoing bytes are buffered into
// SentBytes instead of pushed synchronously to a peer, and incoming bytes
// are supplied by the host through ReceiveExternalByte, decoupling the core
// from host I/O latency.
package serial

import "gameboy-emulator/internal/interrupt"

// Serial register memory addresses.
const (
	SBAddr = 0xFF01 // Serial transfer data register
	SCAddr = 0xFF02 // Serial transfer control register
)

// SC register bit masks.
const (
	SCTransferStartBit = 0x80 // Bit 7: Transfer Start Flag (1 = active/requested)
	SCClockSpeedBit    = 0x02 // Bit 1: Clock Speed (CGB only, 0 = normal, 1 = fast)
	SCClockSourceBit   = 0x01 // Bit 0: Shift Clock (1 = internal, 0 = external)
	SCUnusedBitsDMG    = 0x7C // Bits 6-2 read as 1 on DMG
)

// cyclesPerBit is the number of T-cycles the internal clock takes to shift
// one bit at normal (single) speed: 8192 Hz, i.e. 4194304/8192/8 = 64... the
// Game Boy shifts one bit every 512 T-cycles, completing a byte (8 bits)
// every 4096 T-cycles.
const cyclesPerBit = 512

// Serial implements the SB/SC shift register.
type Serial struct {
	SB uint8 // 0xFF01 - shift register
	SC uint8 // 0xFF02 - control register

	transferActive bool
	externalWait   bool // true while waiting on the host for an external-clock byte
	bitsRemaining  uint8
	cycleCounter   uint16

	// SentBytes buffers every byte shifted out since the last drain. The
	// host drains it once per Poll call instead of the core pushing bytes
	// synchronously to a peer that may not be ready to receive them.
	SentBytes []uint8

	ic *interrupt.InterruptController
}

// NewSerial creates a new serial port wired to the shared interrupt
// controller; a completed transfer raises the serial interrupt directly.
func NewSerial(ic *interrupt.InterruptController) *Serial {
	return &Serial{
		ic: ic,
	}
}

// Reset returns the serial port to its post-boot state.
func (s *Serial) Reset() {
	s.SB = 0x00
	s.SC = 0x00
	s.transferActive = false
	s.externalWait = false
	s.bitsRemaining = 0
	s.cycleCounter = 0
	s.SentBytes = nil
}

// ReadRegister reads a serial register; returns 0xFF for unmapped addresses.
func (s *Serial) ReadRegister(address uint16) uint8 {
	switch address {
	case SBAddr:
		return s.SB
	case SCAddr:
		return s.SC | SCUnusedBitsDMG
	default:
		return 0xFF
	}
}

// WriteRegister writes a serial register; writes to unmapped addresses are
// ignored. A write to SC with the start bit and internal clock source set
// begins a transfer; with the start bit set but external clock source, the
// transfer stalls until the host supplies a byte via ReceiveExternalByte.
func (s *Serial) WriteRegister(address uint16, value uint8) {
	switch address {
	case SBAddr:
		if !s.transferActive {
			s.SB = value
		}
	case SCAddr:
		s.SC = value
		s.maybeStartTransfer()
	}
}

// IsSerialRegister returns true if the address is a serial register.
func IsSerialRegister(address uint16) bool {
	return address == SBAddr || address == SCAddr
}

func (s *Serial) maybeStartTransfer() {
	if s.transferActive || s.externalWait {
		return
	}
	if s.SC&SCTransferStartBit == 0 {
		return
	}

	if s.SC&SCClockSourceBit != 0 {
		// Internal clock: we drive the shift ourselves.
		s.transferActive = true
		s.bitsRemaining = 8
		s.cycleCounter = 0
		return
	}

	// External clock: act as the slave and wait for the host to supply the
	// incoming byte (simulating the peer's clock pulses arriving at once).
	s.externalWait = true
}

// ReceiveExternalByte supplies the byte clocked in by an external peer,
// completing a transfer that was stalled waiting on an external clock.
// The current SB value is appended to SentBytes as the byte that would
// have been shifted out to that peer.
func (s *Serial) ReceiveExternalByte(incoming uint8) {
	if !s.externalWait {
		return
	}
	s.externalWait = false
	s.completeTransfer(incoming)
}

// Step advances the serial shift register by the given number of T-cycles.
// Only internal-clock transfers progress here; external-clock transfers
// wait indefinitely for ReceiveExternalByte.
func (s *Serial) Step(cycles uint8) {
	if !s.transferActive {
		return
	}

	s.cycleCounter += uint16(cycles)
	for s.cycleCounter >= cyclesPerBit && s.bitsRemaining > 0 {
		s.cycleCounter -= cyclesPerBit
		s.bitsRemaining--
	}

	if s.bitsRemaining == 0 {
		// No real peer on the other end of an internal-clock transfer;
		// the line reads back all 1s (idle/disconnected).
		s.completeTransfer(0xFF)
	}
}

func (s *Serial) completeTransfer(incoming uint8) {
	s.SentBytes = append(s.SentBytes, s.SB)
	s.SB = incoming
	s.SC &^= SCTransferStartBit
	s.transferActive = false
	s.bitsRemaining = 0
	s.cycleCounter = 0
	s.ic.Serial(true)
}

// DrainSentBytes returns every byte shifted out since the last drain and
// clears the buffer, matching spec's per-Poll buffered sent_bytes model.
func (s *Serial) DrainSentBytes() []uint8 {
	if len(s.SentBytes) == 0 {
		return nil
	}
	out := s.SentBytes
	s.SentBytes = nil
	return out
}

// IsWaitingForExternalByte reports whether a transfer is stalled waiting on
// ReceiveExternalByte, useful for the host to know whether to supply one.
func (s *Serial) IsWaitingForExternalByte() bool {
	return s.externalWait
}
