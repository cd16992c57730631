package cartridge

import "log/slog"

// MBC5Controller implements Memory Bank Controller 5: up to 8MB ROM via a
// full 9-bit bank number (two separate bank-select registers, no bank-0
// remap quirk) and up to 128KB external RAM. This is the most common
// controller in late-era CGB titles.
type MBC5Controller struct {
	romData []byte
	ramData []byte

	romBank    int // 0-511, bank 0 is valid and selectable (unlike MBC1/2/3)
	ramBank    int // 0-15
	ramEnabled bool

	romBankCount int
	ramBankCount int

	// SaveRAM is invoked with the external RAM contents whenever RAM is
	// disabled (1->0 transition).
	SaveRAM func([]byte)
}

// NewMBC5 creates a new MBC5 controller.
func NewMBC5(romData []byte, ramSize int) *MBC5Controller {
	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}
	return &MBC5Controller{
		romData:      romData,
		ramData:      ramData,
		romBank:      1,
		romBankCount: len(romData) / (16 * 1024),
		ramBankCount: ramSize / (8 * 1024),
	}
}

// ReadByte reads from ROM or banked external RAM.
func (mbc *MBC5Controller) ReadByte(address uint16) uint8 {
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

	case address >= 0xA000 && address <= 0xBFFF:
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			slog.Warn("read from disabled MBC5 RAM", "addr", address)
			return 0xFF
		}
		bankOffset := mbc.ramBank * 8 * 1024
		ramAddress := bankOffset + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			return mbc.ramData[ramAddress]
		}
		return 0xFF

	default:
		return 0xFF
	}
}

// WriteByte handles RAM enable, the two ROM-bank-select registers, RAM
// bank select, and external RAM writes.
func (mbc *MBC5Controller) WriteByte(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		wasEnabled := mbc.ramEnabled
		mbc.ramEnabled = (value & 0x0F) == 0x0A
		if wasEnabled && !mbc.ramEnabled && mbc.SaveRAM != nil {
			mbc.SaveRAM(mbc.ramData)
		}

	case address >= 0x2000 && address <= 0x2FFF:
		// Low 8 bits of the 9-bit ROM bank number.
		mbc.romBank = (mbc.romBank &^ 0xFF) | int(value)
		mbc.clampROMBank()

	case address >= 0x3000 && address <= 0x3FFF:
		// Bit 8 of the 9-bit ROM bank number.
		mbc.romBank = (mbc.romBank &^ 0x100) | (int(value&0x01) << 8)
		mbc.clampROMBank()

	case address >= 0x4000 && address <= 0x5FFF:
		mbc.ramBank = int(value & 0x0F)
		if mbc.ramBankCount > 0 {
			mbc.ramBank %= mbc.ramBankCount
		}

	case address >= 0xA000 && address <= 0xBFFF:
		if !mbc.ramEnabled || len(mbc.ramData) == 0 {
			slog.Warn("write to disabled MBC5 RAM", "addr", address)
			return
		}
		bankOffset := mbc.ramBank * 8 * 1024
		ramAddress := bankOffset + int(address-0xA000)
		if ramAddress < len(mbc.ramData) {
			mbc.ramData[ramAddress] = value
		}
	}
}

// clampROMBank wraps the bank number into the available range. Unlike
// MBC1/2/3, bank 0 is a legitimate selection on MBC5 and is never remapped.
func (mbc *MBC5Controller) clampROMBank() {
	if mbc.romBankCount > 0 {
		mbc.romBank %= mbc.romBankCount
	}
}

// GetCurrentROMBank returns the currently selected ROM bank.
func (mbc *MBC5Controller) GetCurrentROMBank() int { return mbc.romBank }

// GetCurrentRAMBank returns the currently selected RAM bank.
func (mbc *MBC5Controller) GetCurrentRAMBank() int { return mbc.ramBank }

// HasRAM returns true if this cartridge has external RAM.
func (mbc *MBC5Controller) HasRAM() bool { return len(mbc.ramData) > 0 }

// IsRAMEnabled returns true if external RAM is currently enabled.
func (mbc *MBC5Controller) IsRAMEnabled() bool { return mbc.ramEnabled }
