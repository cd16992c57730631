package cartridge

import "log/slog"

// mbc2RAMSize is the fixed size of MBC2's built-in 4-bit RAM: 512 nibbles
// addressed as bytes, only the low nibble of each byte is meaningful.
const mbc2RAMSize = 0x200

// MBC2Controller implements Memory Bank Controller 2: up to 256KB ROM via
// a 4-bit bank number folded into the ROM-bank-select write, plus a built-in
// 512x4-bit RAM (no external RAM chip).
type MBC2Controller struct {
	romData []byte
	ram     [mbc2RAMSize]uint8

	romBank      int
	ramEnabled   bool
	romBankCount int

	// SaveRAM is invoked with the built-in RAM contents whenever RAM is
	// disabled (1->0 transition), mirroring the RAM-enable flush hook every
	// battery-backed controller exposes.
	SaveRAM func([]byte)
}

// NewMBC2 creates a new MBC2 controller.
func NewMBC2(romData []byte) *MBC2Controller {
	return &MBC2Controller{
		romData:      romData,
		romBank:      1,
		romBankCount: len(romData) / (16 * 1024),
	}
}

// ReadByte reads from ROM (banked) or the built-in 4-bit RAM.
func (mbc *MBC2Controller) ReadByte(address uint16) uint8 {
	switch {
	case address <= 0x3FFF:
		if int(address) < len(mbc.romData) {
			return mbc.romData[address]
		}
		return 0xFF

	case address >= 0x4000 && address <= 0x7FFF:
		bankOffset := mbc.romBank * 16 * 1024
		romAddress := bankOffset + int(address-0x4000)
		if romAddress < len(mbc.romData) {
			return mbc.romData[romAddress]
		}
		return 0xFF

	case address >= 0xA000 && address <= 0xA1FF:
		if !mbc.ramEnabled {
			slog.Warn("read from disabled MBC2 RAM", "addr", address)
			return 0xFF
		}
		// Only the low nibble is wired; the upper nibble reads as set.
		return mbc.ram[address-0xA000] | 0xF0

	case address >= 0xA200 && address <= 0xBFFF:
		// MBC2 RAM is echoed across the rest of the external RAM window.
		return mbc.ReadByte(0xA000 + (address-0xA000)%mbc2RAMSize)

	default:
		return 0xFF
	}
}

// WriteByte handles RAM enable, ROM bank select, and 4-bit RAM writes.
func (mbc *MBC2Controller) WriteByte(address uint16, value uint8) {
	switch {
	case address <= 0x3FFF:
		// Bit 8 of the address distinguishes RAM-enable writes from
		// ROM-bank-select writes in the same 0x0000-0x3FFF window.
		if address&0x100 == 0 {
			wasEnabled := mbc.ramEnabled
			mbc.ramEnabled = (value & 0x0F) == 0x0A
			if wasEnabled && !mbc.ramEnabled && mbc.SaveRAM != nil {
				mbc.SaveRAM(mbc.ram[:])
			}
		} else {
			bank := int(value&0x0F)
			if bank == 0 {
				bank = 1
			}
			mbc.romBank = bank
			if mbc.romBankCount > 0 {
				mbc.romBank %= mbc.romBankCount
				if mbc.romBank == 0 {
					mbc.romBank = 1
				}
			}
		}

	case address >= 0xA000 && address <= 0xA1FF:
		if !mbc.ramEnabled {
			slog.Warn("write to disabled MBC2 RAM", "addr", address)
			return
		}
		mbc.ram[address-0xA000] = value & 0x0F
	}
}

// GetCurrentROMBank returns the currently selected ROM bank.
func (mbc *MBC2Controller) GetCurrentROMBank() int { return mbc.romBank }

// GetCurrentRAMBank always returns 0; MBC2's RAM is not banked.
func (mbc *MBC2Controller) GetCurrentRAMBank() int { return 0 }

// HasRAM returns true; MBC2 always has its built-in 4-bit RAM.
func (mbc *MBC2Controller) HasRAM() bool { return true }

// IsRAMEnabled returns true if the built-in RAM is currently enabled.
func (mbc *MBC2Controller) IsRAMEnabled() bool { return mbc.ramEnabled }
