package ppu

// Package ppu - CGB-only register block: VBK (VRAM bank select), and the
// BCPS/BCPD/OCPS/OCPD background/object color palette RAM. Grounded on the
// same 8-palette x 4-color x 15-bit-RGB555 layout real CGB hardware uses.

// CGB register addresses outside the 0xFF40-0xFF4B LCD block.
const (
	VBKAddress  uint16 = 0xFF4F
	BCPSAddress uint16 = 0xFF68
	BCPDAddress uint16 = 0xFF69
	OCPSAddress uint16 = 0xFF6A
	OCPDAddress uint16 = 0xFF6B
)

// cgbPalette is one of the two 8-palette x 4-color banks (background or
// object). Each color is stored as two raw bytes (15-bit RGB555, bit 15
// unused) so BCPD/OCPD reads return exactly what was written.
type cgbPalette struct {
	data    [64]uint8 // 8 palettes * 4 colors * 2 bytes
	index   uint8      // 0-63
	autoInc bool
}

// writeSelect handles a BCPS/OCPS write: bits 0-5 set the byte index,
// bit 7 arms auto-increment on every BCPD/OCPD write.
func (p *cgbPalette) writeSelect(value uint8) {
	p.index = value & 0x3F
	p.autoInc = value&0x80 != 0
}

// readSelect reconstructs the BCPS/OCPS value from current state.
func (p *cgbPalette) readSelect() uint8 {
	value := p.index
	if p.autoInc {
		value |= 0x80
	}
	return value | 0x40 // bit 6 always reads high on hardware
}

// readData returns the byte BCPD/OCPD currently points at.
func (p *cgbPalette) readData() uint8 {
	return p.data[p.index]
}

// writeData stores value at the current index and auto-increments it
// (wrapping mod 64) when autoInc is set.
func (p *cgbPalette) writeData(value uint8) {
	p.data[p.index] = value
	if p.autoInc {
		p.index = (p.index + 1) % 64
	}
}

// color returns the RGB888 color for palette (0-7) and color index (0-3),
// converting the stored 15-bit RGB555 value (5 bits per channel).
func (p *cgbPalette) color(palette, colorIndex uint8) RGB {
	base := int(palette)*8 + int(colorIndex)*2
	low := p.data[base]
	high := p.data[base+1]
	raw := uint16(low) | uint16(high)<<8

	r5 := uint8(raw & 0x1F)
	g5 := uint8((raw >> 5) & 0x1F)
	b5 := uint8((raw >> 10) & 0x1F)

	return RGB{R: expand5to8(r5), G: expand5to8(g5), B: expand5to8(b5)}
}

// expand5to8 scales a 5-bit color channel (0-31) to 8-bit (0-255).
func expand5to8(v uint8) uint8 {
	return uint8((uint16(v)*255 + 15) / 31)
}

// ReadVBK returns the VRAM bank select register. Bits 1-7 always read 1
// (only bit 0 is meaningful), matching real hardware.
func (ppu *PPU) ReadVBK() uint8 {
	return ppu.vbk | 0xFE
}

// WriteVBK selects the VRAM bank (0xFF4F). Only bit 0 matters; outside CGB
// mode the write still lands but ReadVRAM/WriteVRAM ignore it.
func (ppu *PPU) WriteVBK(value uint8) {
	ppu.vbk = value & 0x01
}

// ReadBCPS/WriteBCPS and ReadOCPS/WriteOCPS handle the palette select
// registers; ReadBCPD/WriteBCPD and ReadOCPD/WriteOCPD handle the data port.
func (ppu *PPU) ReadBCPS() uint8              { return ppu.bgPalette.readSelect() }
func (ppu *PPU) WriteBCPS(value uint8)        { ppu.bgPalette.writeSelect(value) }
func (ppu *PPU) ReadBCPD() uint8              { return ppu.bgPalette.readData() }
func (ppu *PPU) WriteBCPD(value uint8)        { ppu.bgPalette.writeData(value) }

func (ppu *PPU) ReadOCPS() uint8       { return ppu.objPalette.readSelect() }
func (ppu *PPU) WriteOCPS(value uint8) { ppu.objPalette.writeSelect(value) }
func (ppu *PPU) ReadOCPD() uint8       { return ppu.objPalette.readData() }
func (ppu *PPU) WriteOCPD(value uint8) { ppu.objPalette.writeData(value) }

// GetBGPaletteColor returns the RGB888 background color for CGB palette
// (0-7) and color index (0-3).
func (ppu *PPU) GetBGPaletteColor(palette, colorIndex uint8) RGB {
	return ppu.bgPalette.color(palette, colorIndex)
}

// GetObjPaletteColor returns the RGB888 object color for CGB palette (0-7)
// and color index (0-3).
func (ppu *PPU) GetObjPaletteColor(palette, colorIndex uint8) RGB {
	return ppu.objPalette.color(palette, colorIndex)
}

// TileAttributes decodes a CGB background/window tile-map attribute byte
// (read from VRAM bank 1 at the same address as the tile index in bank 0).
type TileAttributes struct {
	Priority  bool // bit 7: draw over sprites regardless of OAM priority
	FlipY     bool // bit 6
	FlipX     bool // bit 5
	VRAMBank  uint8 // bit 3: which bank the tile's pixel data comes from
	Palette   uint8 // bits 0-2: background palette index (0-7)
}

// DecodeTileAttributes splits a raw CGB attribute byte into its fields.
func DecodeTileAttributes(raw uint8) TileAttributes {
	return TileAttributes{
		Priority: raw&0x80 != 0,
		FlipY:    raw&0x40 != 0,
		FlipX:    raw&0x20 != 0,
		VRAMBank: (raw >> 3) & 0x01,
		Palette:  raw & 0x07,
	}
}

// flipTileY returns a copy of t with its rows reversed (CGB attribute bit 6).
func flipTileY(t *Tile) *Tile {
	flipped := NewTile()
	for y := 0; y < TileHeight; y++ {
		flipped.Pixels[y] = t.Pixels[TileHeight-1-y]
	}
	return flipped
}

// flipTileX returns a copy of t with its columns reversed (CGB attribute bit 5).
func flipTileX(t *Tile) *Tile {
	flipped := NewTile()
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			flipped.Pixels[y][x] = t.Pixels[y][TileWidth-1-x]
		}
	}
	return flipped
}
