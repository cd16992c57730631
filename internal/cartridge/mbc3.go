package cartridge

import "log/slog"

// MBC3Controller implements Memory Bank Controller 3: up to 2MB ROM via a
// full 7-bit bank number (bank 0 maps to bank 1, with no 0x20/0x40/0x60
// quirk), up to 32KB external RAM, and an optional real-time clock
// selected through the same RAM-bank-select register.
type MBC3Controller struct {
	romData []byte
	ramData []byte

	romBank    int
	ramOrRTC   uint8 // 0x00-0x03 selects a RAM bank; 0x08-0x0C selects an RTC register
	ramEnabled bool

	romBankCount int
	ramBankCount int

	rtc *RTC // nil if this cartridge has no timer

	// SaveRAM is invoked with the external RAM contents whenever RAM is
	// disabled (1->0 transition).
	SaveRAM func([]byte)
}

// NewMBC3 creates a new MBC3 controller. rtc is nil for MBC3 variants
// without a timer (cartridge types 0x11-0x13).
func NewMBC3(romData []byte, ramSize int, rtc *RTC) *MBC3Controller {
	var ramData []byte
	if ramSize > 0 {
		ramData = make([]byte, ramSize)
	}
	return &MBC3Controller{
		romData:      romData,
		ramData:      ramData,
		romBank:      1,
		romBankCount: len(romData) / (16 * 1024),
		ramBankCount: ramSize / (8 * 1024),
		rtc:          rtc,
	}
}

// ReadByte reads from ROM, banked external RAM, or a latched RTC register.
func (mbc *MBC3Controller) ReadByte(address uint16) uint8 {
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
		if !mbc.ramEnabled {
			slog.Warn("read from disabled MBC3 RAM/RTC", "addr", address)
			return 0xFF
		}

		if mbc.ramOrRTC <= 0x03 {
			bankOffset := int(mbc.ramOrRTC) * 8 * 1024
			ramAddress := bankOffset + int(address-0xA000)
			if ramAddress < len(mbc.ramData) {
				return mbc.ramData[ramAddress]
			}
			return 0xFF
		}

		if mbc.rtc != nil {
			mbc.rtc.Sync()
			if value, ok := mbc.rtc.ReadSelected(mbc.ramOrRTC); ok {
				return value
			}
		}
		return 0xFF

	default:
		return 0xFF
	}
}

// WriteByte handles RAM/RTC enable, ROM bank select, RAM-bank/RTC-register
// select, the latch sequence, and RAM/RTC register writes.
func (mbc *MBC3Controller) WriteByte(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		wasEnabled := mbc.ramEnabled
		mbc.ramEnabled = (value & 0x0F) == 0x0A
		if wasEnabled && !mbc.ramEnabled && mbc.SaveRAM != nil {
			mbc.SaveRAM(mbc.ramData)
		}

	case address >= 0x2000 && address <= 0x3FFF:
		bank := int(value & 0x7F)
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

	case address >= 0x4000 && address <= 0x5FFF:
		mbc.ramOrRTC = value

	case address >= 0x6000 && address <= 0x7FFF:
		if mbc.rtc != nil {
			mbc.rtc.WriteLatch(value)
		}

	case address >= 0xA000 && address <= 0xBFFF:
		if !mbc.ramEnabled {
			slog.Warn("write to disabled MBC3 RAM/RTC", "addr", address)
			return
		}

		if mbc.ramOrRTC <= 0x03 {
			bankOffset := int(mbc.ramOrRTC) * 8 * 1024
			ramAddress := bankOffset + int(address-0xA000)
			if ramAddress < len(mbc.ramData) {
				mbc.ramData[ramAddress] = value
			}
			return
		}

		if mbc.rtc != nil {
			mbc.rtc.WriteSelected(mbc.ramOrRTC, value)
		}
	}
}

// GetCurrentROMBank returns the currently selected ROM bank.
func (mbc *MBC3Controller) GetCurrentROMBank() int { return mbc.romBank }

// GetCurrentRAMBank returns the currently selected RAM bank, or 0 if an
// RTC register is currently selected instead of a RAM bank.
func (mbc *MBC3Controller) GetCurrentRAMBank() int {
	if mbc.ramOrRTC <= 0x03 {
		return int(mbc.ramOrRTC)
	}
	return 0
}

// HasRAM returns true if this cartridge has external RAM.
func (mbc *MBC3Controller) HasRAM() bool { return len(mbc.ramData) > 0 }

// IsRAMEnabled returns true if external RAM/RTC access is currently enabled.
func (mbc *MBC3Controller) IsRAMEnabled() bool { return mbc.ramEnabled }
