package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMBC2_BasicReads(t *testing.T) {
	romData := make([]byte, 64*1024) // 4 banks
	romData[0x0000] = 0x00
	romData[0x4000] = 0x10

	mbc := NewMBC2(romData)

	assert.Equal(t, uint8(0x00), mbc.ReadByte(0x0000), "Should read bank 0")
	assert.Equal(t, uint8(0x10), mbc.ReadByte(0x4000), "Should read initial bank 1")
	assert.Equal(t, 1, mbc.GetCurrentROMBank(), "Should start on bank 1")
}

func TestMBC2_BankSwitching(t *testing.T) {
	romData := make([]byte, 64*1024) // 4 banks
	romData[0x4000] = 0x10           // bank 1
	romData[0x8000] = 0x20           // bank 2
	romData[0xC000] = 0x30           // bank 3

	mbc := NewMBC2(romData)

	// RAM-enable/rom-bank-select share the 0x0000-0x3FFF window, split by
	// address bit 8.
	mbc.WriteByte(0x2100, 0x02)
	assert.Equal(t, 2, mbc.GetCurrentROMBank())
	assert.Equal(t, uint8(0x20), mbc.ReadByte(0x4000))

	mbc.WriteByte(0x2100, 0x00) // bank 0 request becomes bank 1
	assert.Equal(t, 1, mbc.GetCurrentROMBank())
}

func TestMBC2_RAMEnableUsesAddressBit8(t *testing.T) {
	romData := make([]byte, 32*1024)
	mbc := NewMBC2(romData)

	assert.False(t, mbc.IsRAMEnabled())

	// Bit 8 clear -> RAM enable write.
	mbc.WriteByte(0x0000, 0x0A)
	assert.True(t, mbc.IsRAMEnabled())

	// Bit 8 set -> ROM bank select; RAM enable is left as it was.
	mbc.WriteByte(0x0100, 0x00)
	assert.True(t, mbc.IsRAMEnabled())
}

func TestMBC2_RAMNibbleMaskingAndEcho(t *testing.T) {
	romData := make([]byte, 32*1024)
	mbc := NewMBC2(romData)
	mbc.WriteByte(0x0000, 0x0A) // enable RAM

	mbc.WriteByte(0xA000, 0xFF)
	assert.Equal(t, uint8(0xFF), mbc.ReadByte(0xA000), "Low nibble set, high nibble reads as set too")

	mbc.WriteByte(0xA001, 0x03)
	assert.Equal(t, uint8(0xF3), mbc.ReadByte(0xA001), "Only low nibble is writable")

	// Echoed across 0xA200-0xBFFF.
	assert.Equal(t, mbc.ReadByte(0xA000), mbc.ReadByte(0xA200), "RAM should echo every 0x200 bytes")
}

func TestMBC2_DisabledRAMReadsFF(t *testing.T) {
	romData := make([]byte, 32*1024)
	mbc := NewMBC2(romData)

	assert.Equal(t, uint8(0xFF), mbc.ReadByte(0xA000), "Disabled RAM should read 0xFF")

	mbc.WriteByte(0xA000, 0x05) // should be ignored
	mbc.WriteByte(0x0000, 0x0A)
	assert.Equal(t, uint8(0xF0), mbc.ReadByte(0xA000), "Write to disabled RAM must be dropped")
}

func TestMBC2_SaveRAMCalledOnDisable(t *testing.T) {
	romData := make([]byte, 32*1024)
	mbc := NewMBC2(romData)

	var saved []byte
	mbc.SaveRAM = func(data []byte) {
		saved = append([]byte(nil), data...)
	}

	mbc.WriteByte(0x0000, 0x0A)
	mbc.WriteByte(0xA000, 0x07)
	mbc.WriteByte(0x0000, 0x00) // disable -> should flush

	assert.NotNil(t, saved)
	assert.Equal(t, uint8(0x07), saved[0])
}

func TestMBC2_Properties(t *testing.T) {
	romData := make([]byte, 32*1024)
	mbc := NewMBC2(romData)

	assert.True(t, mbc.HasRAM(), "MBC2 always has built-in RAM")
	assert.Equal(t, 0, mbc.GetCurrentRAMBank(), "MBC2 RAM is not banked")
}
