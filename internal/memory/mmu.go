// Package memory implements the Game Boy Memory Management Unit: the
// single address-space router every other component reads and writes
// through. It owns the flat internal RAM regions (WRAM, HRAM, and the
// raw byte array backing VRAM/OAM before a PPU is attached) and
// dispatches cartridge, timer, joypad, serial, DMA, PPU, and APU
// addresses to their owning components in the right order every step.
package memory

import (
	"gameboy-emulator/internal/apu"
	"gameboy-emulator/internal/cartridge"
	"gameboy-emulator/internal/dma"
	"gameboy-emulator/internal/interrupt"
	"gameboy-emulator/internal/joypad"
	"gameboy-emulator/internal/ppu"
	"gameboy-emulator/internal/serial"
	"gameboy-emulator/internal/timer"
)

// Memory region boundaries (Game Boy 64KB address space)
const (
	ROMBank0Start uint16 = 0x0000
	ROMBank0End   uint16 = 0x3FFF
	ROMBank0Size  uint32 = 0x4000

	ROMBank1Start uint16 = 0x4000
	ROMBank1End   uint16 = 0x7FFF
	ROMBank1Size  uint32 = 0x4000

	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	VRAMSize  uint32 = 0x2000

	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	ExternalRAMSize  uint32 = 0x2000

	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF
	WRAMSize  uint32 = 0x2000

	EchoRAMStart uint16 = 0xE000
	EchoRAMEnd   uint16 = 0xFDFF

	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
	OAMSize  uint32 = 0x00A0

	ProhibitedStart uint16 = 0xFEA0
	ProhibitedEnd   uint16 = 0xFEFF

	IORegistersStart uint16 = 0xFF00
	IORegistersEnd   uint16 = 0xFF7F
	IORegistersSize  uint32 = 0x0080

	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
	HRAMSize  uint32 = 0x007F

	InterruptEnableRegister uint16 = 0xFFFF
)

// I/O register addresses
const (
	JoypadRegister            uint16 = 0xFF00
	SerialDataRegister        uint16 = 0xFF01
	SerialControlRegister     uint16 = 0xFF02
	DividerRegister           uint16 = 0xFF04
	TimerCounterRegister      uint16 = 0xFF05
	TimerModuloRegister       uint16 = 0xFF06
	TimerControlRegister      uint16 = 0xFF07
	InterruptFlagRegister     uint16 = 0xFF0F
	LCDControlRegister        uint16 = 0xFF40
	LCDStatusRegister         uint16 = 0xFF41
	ScrollYRegister           uint16 = 0xFF42
	ScrollXRegister           uint16 = 0xFF43
	LYRegister                uint16 = 0xFF44
	LYCompareRegister         uint16 = 0xFF45
	DMARegister               uint16 = 0xFF46
	BackgroundPaletteRegister uint16 = 0xFF47
	ObjectPalette0Register    uint16 = 0xFF48
	ObjectPalette1Register    uint16 = 0xFF49
	WindowYRegister           uint16 = 0xFF4A
	WindowXRegister           uint16 = 0xFF4B
	BootROMDisableRegister    uint16 = 0xFF50
	WRAMBankRegister          uint16 = 0xFF70
)

// MemoryInterface is the contract every component that only needs plain
// byte/word access (CPU, DMA) depends on, instead of the concrete MMU.
type MemoryInterface interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, value uint8)
	ReadWord(address uint16) uint16
	WriteWord(address uint16, value uint16)
}

// MMU is the Game Boy Memory Management Unit. It owns the flat internal
// memory array used for WRAM, HRAM, and any region without a dedicated
// owner, and dispatches the rest of the 64KB address space to the
// cartridge, timer, joypad, serial port, OAM DMA controller, and
// (once attached) the PPU/APU.
type MMU struct {
	memory [0x10000]uint8

	mbc cartridge.MBC
	ic  *interrupt.InterruptController

	timer  *timer.Timer
	joypad *joypad.Joypad
	serial *serial.Serial
	dma    *dma.DMAController

	videoUnit *ppu.PPU
	audioUnit *apu.APU

	bootROM        []byte
	bootROMEnabled bool

	// CGB-only state. wram holds all 8 banks even in DMG mode (bank 1 is
	// simply the only one ever selected then); SetMode enables the rest.
	cgbMode          bool
	wram             [8][0x1000]uint8
	wramBank         uint8
	doubleSpeed      bool
	speedSwitchArmed bool
	hdma             hdmaState
}

// NewMMU creates an MMU wired to the given cartridge controller and
// interrupt controller. Timer, joypad, serial, and DMA are always present;
// PPU and APU are optional and attached later via SetPPU/SetAPU so tests
// (and a headless build) can run the MMU without them, falling back to
// the flat internal array for VRAM/OAM/LCD register access.
func NewMMU(mbc cartridge.MBC, ic *interrupt.InterruptController) *MMU {
	return &MMU{
		mbc:      mbc,
		ic:       ic,
		timer:    timer.NewTimer(ic),
		joypad:   joypad.NewJoypad(ic),
		serial:   serial.NewSerial(ic),
		dma:      dma.NewDMAController(),
		wramBank: 1,
	}
}

// SetPPU attaches a PPU; VRAM, OAM, and the LCD register block (0xFF40-
// 0xFF4B) are routed to it instead of the flat internal array.
func (m *MMU) SetPPU(p *ppu.PPU) {
	m.videoUnit = p
	p.SetInterruptController(m.ic)
}

// SetAPU attaches an APU; the NRxx/wave-RAM register block (0xFF10-
// 0xFF3F) is routed to it instead of the flat internal array.
func (m *MMU) SetAPU(a *apu.APU) { m.audioUnit = a }

// SetBootROM installs a boot ROM overlay, visible at 0x0000-0x00FF (and,
// for the 2304-byte CGB blob, 0x0200-0x08FF too) until the game disables
// it by writing to 0xFF50.
func (m *MMU) SetBootROM(data []byte) {
	m.bootROM = data
	m.bootROMEnabled = len(data) > 0
}

func (m *MMU) GetDMAController() *dma.DMAController { return m.dma }
func (m *MMU) GetTimer() *timer.Timer                { return m.timer }
func (m *MMU) GetJoypad() *joypad.Joypad             { return m.joypad }
func (m *MMU) GetSerial() *serial.Serial             { return m.serial }

func (m *MMU) inBootROM(address uint16) bool {
	if !m.bootROMEnabled {
		return false
	}
	if address <= 0x00FF {
		return int(address) < len(m.bootROM)
	}
	if address >= 0x0200 && address <= 0x08FF {
		return int(address) < len(m.bootROM)
	}
	return false
}

// ReadByte reads a single byte from the full 64KB address space, routing
// to the cartridge, a peripheral, or the internal flat array as appropriate.
func (m *MMU) ReadByte(address uint16) uint8 {
	switch {
	case m.inBootROM(address):
		return m.bootROM[address]

	case address <= ROMBank1End:
		return m.mbc.ReadByte(address)

	case address >= VRAMStart && address <= VRAMEnd:
		if m.videoUnit != nil {
			if m.videoUnit.GetCurrentMode() == ppu.ModeDrawing {
				return 0xFF
			}
			return m.videoUnit.ReadVRAM(address)
		}
		return m.memory[address]

	case address >= ExternalRAMStart && address <= ExternalRAMEnd:
		return m.mbc.ReadByte(address)

	case address >= WRAMStart && address <= WRAMEnd:
		return m.readWRAM(address)

	case address >= EchoRAMStart && address <= EchoRAMEnd:
		return m.readWRAM(address)

	case address >= OAMStart && address <= OAMEnd:
		if m.videoUnit != nil {
			mode := m.videoUnit.GetCurrentMode()
			if mode == ppu.ModeOAMScan || mode == ppu.ModeDrawing {
				return 0xFF
			}
			return m.videoUnit.ReadOAM(address)
		}
		return m.memory[address]

	case address >= ProhibitedStart && address <= ProhibitedEnd:
		return 0x00

	case address == DMARegister:
		return 0xFF // write-only

	case address == JoypadRegister:
		return m.joypad.ReadRegister(address)

	case serial.IsSerialRegister(address):
		return m.serial.ReadRegister(address)

	case timer.IsTimerRegister(address):
		return m.timer.ReadRegister(address)

	case address == InterruptFlagRegister:
		return m.ic.GetInterruptFlag()

	case address == KEY1Register:
		return m.ReadKEY1()

	case address == WRAMBankRegister:
		return m.ReadSVBK()

	case address == HDMA1Register, address == HDMA2Register, address == HDMA3Register,
		address == HDMA4Register, address == HDMA5Register:
		return m.ReadHDMA(address)

	case m.audioUnit != nil && address >= 0xFF10 && address <= 0xFF3F:
		return m.audioUnit.ReadByte(address)

	case m.videoUnit != nil && address >= LCDControlRegister && address <= WindowXRegister:
		return m.videoUnit.ReadRegister(address)

	case m.videoUnit != nil && address == ppu.VBKAddress:
		return m.videoUnit.ReadVBK()

	case m.videoUnit != nil && address == ppu.BCPSAddress:
		return m.videoUnit.ReadBCPS()

	case m.videoUnit != nil && address == ppu.BCPDAddress:
		return m.videoUnit.ReadBCPD()

	case m.videoUnit != nil && address == ppu.OCPSAddress:
		return m.videoUnit.ReadOCPS()

	case m.videoUnit != nil && address == ppu.OCPDAddress:
		return m.videoUnit.ReadOCPD()

	case address >= IORegistersStart && address <= IORegistersEnd:
		return m.memory[address]

	case address >= HRAMStart && address <= HRAMEnd:
		return m.memory[address]

	case address == InterruptEnableRegister:
		return m.ic.GetInterruptEnable()

	default:
		return 0xFF
	}
}

// WriteByte writes a single byte, routing the same way ReadByte does.
func (m *MMU) WriteByte(address uint16, value uint8) {
	switch {
	case address <= ROMBank1End:
		m.mbc.WriteByte(address, value)

	case address >= VRAMStart && address <= VRAMEnd:
		if m.videoUnit != nil {
			if m.videoUnit.GetCurrentMode() == ppu.ModeDrawing {
				return
			}
			m.videoUnit.WriteVRAM(address, value)
			return
		}
		m.memory[address] = value

	case address >= ExternalRAMStart && address <= ExternalRAMEnd:
		m.mbc.WriteByte(address, value)

	case address >= WRAMStart && address <= WRAMEnd:
		m.writeWRAM(address, value)

	case address >= EchoRAMStart && address <= EchoRAMEnd:
		m.writeWRAM(address, value)

	case address >= OAMStart && address <= OAMEnd:
		if m.videoUnit != nil {
			mode := m.videoUnit.GetCurrentMode()
			if mode == ppu.ModeOAMScan || mode == ppu.ModeDrawing {
				return
			}
			m.videoUnit.WriteOAM(address, value)
			return
		}
		m.memory[address] = value

	case address >= ProhibitedStart && address <= ProhibitedEnd:
		// Writes discarded.

	case address == DMARegister:
		m.dma.StartTransfer(value)

	case address == JoypadRegister:
		m.joypad.WriteRegister(address, value)

	case serial.IsSerialRegister(address):
		m.serial.WriteRegister(address, value)

	case timer.IsTimerRegister(address):
		m.timer.WriteRegister(address, value)

	case address == InterruptFlagRegister:
		m.ic.SetInterruptFlag(value)

	case address == BootROMDisableRegister:
		m.bootROMEnabled = false

	case address == KEY1Register:
		m.WriteKEY1(value)

	case address == WRAMBankRegister:
		m.WriteSVBK(value)

	case address == HDMA1Register, address == HDMA2Register, address == HDMA3Register,
		address == HDMA4Register, address == HDMA5Register:
		m.WriteHDMA(address, value)

	case m.audioUnit != nil && address >= 0xFF10 && address <= 0xFF3F:
		m.audioUnit.WriteByte(address, value)

	case m.videoUnit != nil && address >= LCDControlRegister && address <= WindowXRegister:
		m.videoUnit.WriteRegister(address, value)

	case m.videoUnit != nil && address == ppu.VBKAddress:
		m.videoUnit.WriteVBK(value)

	case m.videoUnit != nil && address == ppu.BCPSAddress:
		m.videoUnit.WriteBCPS(value)

	case m.videoUnit != nil && address == ppu.BCPDAddress:
		m.videoUnit.WriteBCPD(value)

	case m.videoUnit != nil && address == ppu.OCPSAddress:
		m.videoUnit.WriteOCPS(value)

	case m.videoUnit != nil && address == ppu.OCPDAddress:
		m.videoUnit.WriteOCPD(value)

	case address >= IORegistersStart && address <= IORegistersEnd:
		m.memory[address] = value

	case address >= HRAMStart && address <= HRAMEnd:
		m.memory[address] = value

	case address == InterruptEnableRegister:
		m.ic.SetInterruptEnable(value)
	}
}

// WriteByteForDMA writes OAM data during an active DMA transfer, bypassing
// the PPU mode restrictions a CPU-initiated write would be subject to —
// real hardware's DMA unit has direct bus access, unlike the CPU.
func (m *MMU) WriteByteForDMA(address uint16, value uint8) {
	if address >= OAMStart && address <= OAMEnd {
		if m.videoUnit != nil {
			m.videoUnit.WriteOAM(address, value)
			return
		}
		m.memory[address] = value
		return
	}
	m.WriteByte(address, value)
}

// ReadWord reads a little-endian 16-bit value.
func (m *MMU) ReadWord(address uint16) uint16 {
	low := uint16(m.ReadByte(address))
	high := uint16(m.ReadByte(address + 1))
	return (high << 8) | low
}

// WriteWord writes a little-endian 16-bit value.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.WriteByte(address, uint8(value&0xFF))
	m.WriteByte(address+1, uint8(value>>8))
}

// UpdateDMA advances any in-progress OAM DMA transfer by the given number
// of CPU cycles. Returns true if the transfer completed this call.
func (m *MMU) UpdateDMA(cycles uint8) bool {
	return m.dma.Update(cycles, m)
}

// Step advances every peripheral by one instruction's worth of cycles, in
// the order that makes cross-peripheral effects (e.g. a timer interrupt
// raised mid-instruction) observable at the next instruction boundary:
// DMA, then PPU, then APU, then timer, then serial, then the joypad.
func (m *MMU) Step(cycles uint8) {
	m.UpdateDMA(cycles)

	peripheralCycles := m.peripheralCycles(cycles)

	if m.videoUnit != nil {
		m.videoUnit.Update(peripheralCycles)
	}

	if m.audioUnit != nil {
		m.audioUnit.Update(peripheralCycles)
	}

	m.timer.Step(peripheralCycles)
	m.serial.Step(peripheralCycles)

	m.stepHDMA()
}

// isValidAddress reports whether address is part of the addressable
// memory map (the prohibited region 0xFEA0-0xFEFF is not).
func (m *MMU) isValidAddress(address uint16) bool {
	return address < ProhibitedStart || address > ProhibitedEnd
}

// getMemoryRegion returns a human-readable name for the region address
// falls in; used for debugging and diagnostics.
func (m *MMU) getMemoryRegion(address uint16) string {
	switch {
	case address <= ROMBank0End:
		return "ROM Bank 0"
	case address <= ROMBank1End:
		return "ROM Bank 1+"
	case address <= VRAMEnd:
		return "VRAM"
	case address <= ExternalRAMEnd:
		return "External RAM"
	case address <= WRAMEnd:
		return "WRAM"
	case address <= EchoRAMEnd:
		return "Echo RAM"
	case address <= OAMEnd:
		return "OAM"
	case address <= ProhibitedEnd:
		return "Prohibited"
	case address <= IORegistersEnd:
		return "I/O Registers"
	case address <= HRAMEnd:
		return "HRAM"
	default:
		return "Interrupt Enable"
	}
}
