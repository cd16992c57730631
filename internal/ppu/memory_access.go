package ppu

// Package ppu - direct VRAM/OAM storage and the register dispatch the MMU
// routes 0xFF40-0xFF4B through.

// ReadVRAM reads a byte from the PPU's own video RAM (0x8000-0x9FFF),
// honoring the CGB VBK bank select (0xFF4F) when CGB mode is on.
// Addresses outside that range return 0xFF, matching an open bus read.
func (ppu *PPU) ReadVRAM(address uint16) uint8 {
	if address < 0x8000 || address > 0x9FFF {
		return 0xFF
	}
	if ppu.cgbMode && ppu.vbk&1 == 1 {
		return ppu.vramBank1[address-0x8000]
	}
	return ppu.vram[address-0x8000]
}

// WriteVRAM writes a byte to VRAM (0x8000-0x9FFF); out-of-range writes are ignored.
func (ppu *PPU) WriteVRAM(address uint16, value uint8) {
	if address < 0x8000 || address > 0x9FFF {
		return
	}
	if ppu.cgbMode && ppu.vbk&1 == 1 {
		ppu.vramBank1[address-0x8000] = value
		return
	}
	ppu.vram[address-0x8000] = value
}

// ReadVRAMBank reads from an explicit VRAM bank (0 or 1) regardless of the
// current VBK selection. Background/window rendering uses this to fetch a
// tile's CGB attribute byte, which always lives in bank 1 at the same
// tile-map address the tile index occupies in bank 0.
func (ppu *PPU) ReadVRAMBank(bank uint8, address uint16) uint8 {
	if address < 0x8000 || address > 0x9FFF {
		return 0xFF
	}
	if bank == 1 {
		return ppu.vramBank1[address-0x8000]
	}
	return ppu.vram[address-0x8000]
}

// ReadOAM reads a byte from Object Attribute Memory (0xFE00-0xFE9F).
func (ppu *PPU) ReadOAM(address uint16) uint8 {
	if address < OAMStartAddress || address > OAMEndAddress {
		return 0xFF
	}
	return ppu.oam[address-OAMStartAddress]
}

// WriteOAM writes a byte to OAM (0xFE00-0xFE9F); out-of-range writes are ignored.
func (ppu *PPU) WriteOAM(address uint16, value uint8) {
	if address < OAMStartAddress || address > OAMEndAddress {
		return
	}
	ppu.oam[address-OAMStartAddress] = value
}

// ReadRegister dispatches a read to the LCD register at address
// (0xFF40-0xFF4B). Unknown addresses in that range return 0xFF.
func (ppu *PPU) ReadRegister(address uint16) uint8 {
	switch address {
	case LCDCAddress:
		return ppu.GetLCDC()
	case STATAddress:
		return ppu.GetSTAT()
	case SCYAddress:
		return ppu.GetSCY()
	case SCXAddress:
		return ppu.GetSCX()
	case LYAddress:
		return ppu.GetLY()
	case LYCAddress:
		return ppu.GetLYC()
	case BGPAddress:
		return ppu.GetBGP()
	case OBP0Address:
		return ppu.GetOBP0()
	case OBP1Address:
		return ppu.GetOBP1()
	case WYAddress:
		return ppu.GetWY()
	case WXAddress:
		return ppu.GetWX()
	default:
		return 0xFF
	}
}

// WriteRegister dispatches a write to the LCD register at address.
// Writes to unknown addresses in range are silently ignored.
func (ppu *PPU) WriteRegister(address uint16, value uint8) {
	switch address {
	case LCDCAddress:
		ppu.SetLCDC(value)
	case STATAddress:
		ppu.SetSTAT(value)
	case SCYAddress:
		ppu.SetSCY(value)
	case SCXAddress:
		ppu.SetSCX(value)
	case LYAddress:
		// Read-only; writes ignored.
	case LYCAddress:
		ppu.SetLYC(value)
	case BGPAddress:
		ppu.SetBGP(value)
	case OBP0Address:
		ppu.SetOBP0(value)
	case OBP1Address:
		ppu.SetOBP1(value)
	case WYAddress:
		ppu.SetWY(value)
	case WXAddress:
		ppu.SetWX(value)
	}
}
