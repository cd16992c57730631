// Package ppu implements the Game Boy Picture Processing Unit (PPU)
// for graphics rendering, including background, window, and sprite systems.
//
// The Game Boy PPU renders a 160x144 pixel display with 4-color grayscale
// graphics using a tile-based system with sprites and scrolling backgrounds.
package ppu

import "gameboy-emulator/internal/interrupt"

// Game Boy display constants
const (
	// Display dimensions
	ScreenWidth  = 160 // Visible pixels per scanline
	ScreenHeight = 144 // Visible scanlines per frame

	// VRAM size in bytes (0x8000-0x9FFF)
	VRAMSize = 0x2000

	// Timing constants (cycles per operation)
	TotalScanlines    = 154 // Total scanlines including V-Blank (144 visible + 10 V-Blank)
	CyclesPerScanline = 456 // CPU cycles per scanline (456 T-cycles)
	CyclesPerFrame    = TotalScanlines * CyclesPerScanline // 70224 cycles per frame
	
	// PPU mode durations (in T-cycles)
	OAMScanCycles  = 80  // Mode 2: OAM scan duration (20 M-cycles × 4)
	DrawingCycles  = 172 // Mode 3: Drawing duration (43 M-cycles × 4, minimum)
	HBlankCycles   = 204 // Mode 0: H-Blank duration (51 M-cycles × 4, minimum)
	VBlankDuration = 4560 // Mode 1: V-Blank duration (10 scanlines × 456 T-cycles)
	
	// Color values (4-shade grayscale)
	ColorWhite     = 0 // Lightest shade
	ColorLightGray = 1 // Light gray
	ColorDarkGray  = 2 // Dark gray  
	ColorBlack     = 3 // Darkest shade
)

// PPUMode represents the current state of the PPU rendering pipeline
type PPUMode uint8

const (
	ModeHBlank  PPUMode = 0 // H-Blank: CPU can access VRAM/OAM
	ModeVBlank  PPUMode = 1 // V-Blank: Frame complete, CPU can access all video memory
	ModeOAMScan PPUMode = 2 // OAM Scan: PPU reading sprite data, CPU cannot access OAM
	ModeDrawing PPUMode = 3 // Drawing: PPU rendering pixels, CPU cannot access VRAM/OAM
)

// String returns human-readable PPU mode name
func (mode PPUMode) String() string {
	switch mode {
	case ModeHBlank:
		return "H-Blank"
	case ModeVBlank:
		return "V-Blank"  
	case ModeOAMScan:
		return "OAM Scan"
	case ModeDrawing:
		return "Drawing"
	default:
		return "Unknown"
	}
}

// PPU represents the Game Boy Picture Processing Unit
// Handles all graphics rendering including background, window, and sprites
type PPU struct {
	// Display framebuffer - stores final pixel colors for each screen position
	// [row][column] format, values 0-3 representing 4-color grayscale
	Framebuffer [ScreenHeight][ScreenWidth]uint8

	// FramebufferRGB mirrors Framebuffer with real CGB colors (8 BG/object
	// palettes of 4 RGB555-derived colors each) when cgbMode is on. DMG mode
	// never writes to it; callers should only read it when IsCGBMode is true.
	FramebufferRGB [ScreenHeight][ScreenWidth]RGB
	
	// LCD Control Registers (memory-mapped I/O at 0xFF40-0xFF4B)
	LCDC uint8 // 0xFF40 - LCD Control register
	STAT uint8 // 0xFF41 - LCD Status register
	SCY  uint8 // 0xFF42 - Background scroll Y
	SCX  uint8 // 0xFF43 - Background scroll X
	LY   uint8 // 0xFF44 - Current scanline (0-153)
	LYC  uint8 // 0xFF45 - LY Compare register
	WY   uint8 // 0xFF4A - Window Y position
	WX   uint8 // 0xFF4B - Window X position
	
	// Palette Registers (color mapping)
	BGP  uint8 // 0xFF47 - Background palette data
	OBP0 uint8 // 0xFF48 - Object palette 0 data
	OBP1 uint8 // 0xFF49 - Object palette 1 data
	
	// Internal PPU state
	Mode         PPUMode // Current PPU mode (0-3)
	Cycles       uint16  // Cycle counter for current scanline
	FrameReady   bool    // True when a complete frame has been rendered
	LCDEnabled   bool    // LCD on/off state from LCDC bit 7

	// lineReady/readyLine track the scanline most recently finished by
	// renderScanline, for callers that want one line at a time (the
	// DRAWING->HBLANK transition) instead of waiting for FrameReady.
	lineReady bool
	readyLine uint8

	// Video memory owned directly by the PPU. The MMU routes 0x8000-0x9FFF
	// and 0xFE00-0xFE9F here instead of keeping a second copy.
	vram [VRAMSize]uint8
	oam  [OAMSize]uint8

	// CGB hardware. vramBank1 and the two 64-byte palette RAMs only matter
	// when cgbMode is set; vbk (0xFF4F) picks which of vram/vramBank1
	// ReadVRAM/WriteVRAM address.
	cgbMode    bool
	vbk        uint8
	vramBank1  [VRAMSize]uint8
	bgPalette  cgbPalette
	objPalette cgbPalette

	// VRAM access interface used by the background/window/sprite renderers.
	// Defaults to the PPU's own storage; SetVRAMInterface can redirect it
	// (tests use this to inject a mock).
	vramInterface VRAMInterface

	backgroundRenderer *BackgroundRenderer
	spriteRenderer     *SpriteRenderer
	windowRenderer     *WindowRenderer

	// ic raises VBlank/STAT interrupts as PPU state transitions occur.
	// nil is valid (e.g. in unit tests) and simply means no interrupt fires.
	ic *interrupt.InterruptController
}

// VRAMInterface defines the interface for accessing video memory
// This allows the PPU to read tile data and tile maps from VRAM
type VRAMInterface interface {
	ReadVRAM(address uint16) uint8   // Read byte from VRAM (0x8000-0x9FFF)
	WriteVRAM(address uint16, value uint8) // Write byte to VRAM
	ReadOAM(address uint16) uint8    // Read byte from OAM (0xFE00-0xFE9F)
	WriteOAM(address uint16, value uint8)  // Write byte to OAM
}

// NewPPU creates a new PPU instance with default Game Boy state
func NewPPU() *PPU {
	ppu := &PPU{
		// Initialize display to white (color 0)
		Framebuffer: [ScreenHeight][ScreenWidth]uint8{},
		
		// Initialize LCD registers to Game Boy power-on state
		LCDC: 0x91, // LCD enabled, background enabled, default tile maps
		STAT: 0x00, // Mode 0 (H-Blank), no interrupts enabled
		SCY:  0x00, // No initial scroll
		SCX:  0x00,
		LY:   0x00, // Start at scanline 0
		LYC:  0x00,
		WY:   0x00, // Window at top-left
		WX:   0x00,
		
		// Initialize palettes to identity mapping (0→0, 1→1, 2→2, 3→3)
		BGP:  0xE4, // 11100100 - standard Game Boy palette
		OBP0: 0xE4,
		OBP1: 0xE4,
		
		// Initialize PPU state
		Mode:       ModeOAMScan, // Start in OAM scan mode
		Cycles:     0,
		FrameReady: false,
		LCDEnabled: true, // LCD starts enabled (LCDC bit 7)
	}
	
	// Set STAT register mode bits to match initial mode
	ppu.updateSTATMode()

	// Default to the PPU's own video memory; SetVRAMInterface can redirect
	// this (tests use a mock to isolate the renderers from real VRAM).
	ppu.vramInterface = ppu
	ppu.backgroundRenderer = NewBackgroundRenderer(ppu, ppu)
	ppu.spriteRenderer = NewSpriteRenderer(ppu, ppu)
	ppu.windowRenderer = NewWindowRenderer(ppu, ppu)

	return ppu
}

// renderScanline draws one visible scanline (background, then window, then
// sprites) into the framebuffer. Called from Update when Drawing mode ends.
func (ppu *PPU) renderScanline(scanline uint8) {
	ppu.backgroundRenderer.RenderBackgroundScanline(scanline)
	if ppu.windowRenderer.IsWindowActive() {
		ppu.windowRenderer.RenderWindowScanline(scanline)
	}
	if ppu.IsSpriteEnabled() {
		ppu.spriteRenderer.ScanOAM()
		ppu.spriteRenderer.RenderSpriteScanline(scanline)
	}

	ppu.lineReady = true
	ppu.readyLine = scanline
}

// TakeCompletedLine returns the scanline most recently finished by
// renderScanline (the DRAWING->HBLANK transition) and its rendered pixel
// row, clearing the ready flag. ok is false if no line has completed since
// the last call. Callers that need CGB color should read FramebufferRGB at
// the same row index instead when IsCGBMode is true.
func (ppu *PPU) TakeCompletedLine() (line uint8, pixels [ScreenWidth]uint8, ok bool) {
	if !ppu.lineReady {
		return 0, pixels, false
	}
	ppu.lineReady = false
	return ppu.readyLine, ppu.Framebuffer[ppu.readyLine], true
}

// raiseVBlank signals the V-Blank interrupt on the attached controller, if any.
func (ppu *PPU) raiseVBlank() {
	if ppu.ic != nil {
		ppu.ic.VBlank(true)
	}
}

// raiseLCD signals the LCD STAT interrupt on the attached controller, if any.
func (ppu *PPU) raiseLCD() {
	if ppu.ic != nil {
		ppu.ic.LCD(true)
	}
}

// SetInterruptController attaches the shared interrupt controller; V-Blank
// and STAT conditions raise their IF bits on it as Update advances state.
func (ppu *PPU) SetInterruptController(ic *interrupt.InterruptController) {
	ppu.ic = ic
}

// SetVRAMInterface connects the PPU to a VRAM access interface (typically MMU)
func (ppu *PPU) SetVRAMInterface(vramInterface VRAMInterface) {
	ppu.vramInterface = vramInterface
}

// SetCGBMode enables or disables CGB-only hardware: the second VRAM bank
// (VBK), the BCPS/OCPS color palette RAM, and CGB tile/sprite attribute
// bytes. DMG cartridges running on CGB hardware without the header flag
// never call this, so they keep seeing DMG-only palette behavior.
func (ppu *PPU) SetCGBMode(enabled bool) {
	ppu.cgbMode = enabled
}

// IsCGBMode reports whether CGB hardware features are active.
func (ppu *PPU) IsCGBMode() bool {
	return ppu.cgbMode
}

// Reset resets the PPU to initial Game Boy state
func (ppu *PPU) Reset() {
	// Clear framebuffer to white
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			ppu.Framebuffer[y][x] = ColorWhite
		}
	}
	
	// Reset registers to power-on state
	ppu.LCDC = 0x91
	ppu.STAT = 0x00
	ppu.SCY = 0x00
	ppu.SCX = 0x00
	ppu.LY = 0x00
	ppu.LYC = 0x00
	ppu.WY = 0x00
	ppu.WX = 0x00
	ppu.BGP = 0xE4
	ppu.OBP0 = 0xE4
	ppu.OBP1 = 0xE4
	
	// Reset internal state
	ppu.Mode = ModeOAMScan
	ppu.Cycles = 0
	ppu.FrameReady = false
	ppu.LCDEnabled = true
	ppu.lineReady = false
}

// IsFrameReady returns true if a complete frame has been rendered
// The caller should reset this flag after processing the frame
func (ppu *PPU) IsFrameReady() bool {
	return ppu.FrameReady
}

// ClearFrameReady resets the frame ready flag after the frame has been processed
func (ppu *PPU) ClearFrameReady() {
	ppu.FrameReady = false
}

// GetCurrentMode returns the current PPU mode for STAT register access
func (ppu *PPU) GetCurrentMode() PPUMode {
	return ppu.Mode
}

// GetCurrentScanline returns the current scanline (LY register value)
func (ppu *PPU) GetCurrentScanline() uint8 {
	return ppu.LY
}

// IsLCDEnabled returns true if the LCD is currently enabled (LCDC bit 7)
func (ppu *PPU) IsLCDEnabled() bool {
	return ppu.LCDEnabled
}

// Update advances the PPU state by the specified number of CPU cycles
// This should be called once per CPU instruction execution
// Returns true if any interrupts should be triggered
func (ppu *PPU) Update(cycles uint8) bool {
	// If LCD is disabled, don't update PPU timing
	if !ppu.LCDEnabled {
		return false
	}
	
	ppu.Cycles += uint16(cycles)
	interruptRequested := false
	
	// Handle PPU mode transitions based on current scanline and cycle count
	if ppu.LY < ScreenHeight {
		// Visible scanlines (0-143): OAM Scan → Drawing → H-Blank
		switch ppu.Mode {
		case ModeOAMScan:
			if ppu.Cycles >= OAMScanCycles {
				ppu.setMode(ModeDrawing)
				// Check for STAT interrupt on mode change
				if ppu.ShouldTriggerSTATInterrupt() {
					interruptRequested = true
					ppu.raiseLCD()
				}
			}

		case ModeDrawing:
			if ppu.Cycles >= OAMScanCycles+DrawingCycles {
				ppu.setMode(ModeHBlank)
				ppu.renderScanline(ppu.LY)
				// Check for STAT interrupt on mode change
				if ppu.ShouldTriggerSTATInterrupt() {
					interruptRequested = true
					ppu.raiseLCD()
				}
			}

		case ModeHBlank:
			if ppu.Cycles >= CyclesPerScanline {
				ppu.nextScanline()
				// Check for LYC=LY interrupt
				if ppu.updateLYCFlag() {
					interruptRequested = true
					ppu.raiseLCD()
				}

				if ppu.LY == ScreenHeight {
					// Entering V-Blank
					ppu.setMode(ModeVBlank)
					ppu.FrameReady = true
					interruptRequested = true // V-Blank interrupt (always triggered)
					ppu.raiseVBlank()
					// Also check for STAT V-Blank interrupt
					if ppu.ShouldTriggerSTATInterrupt() {
						interruptRequested = true
						ppu.raiseLCD()
					}
				} else {
					// Next visible scanline
					ppu.setMode(ModeOAMScan)
					// Check for STAT interrupt on mode change
					if ppu.ShouldTriggerSTATInterrupt() {
						interruptRequested = true
						ppu.raiseLCD()
					}
				}
			}
		}
	} else {
		// V-Blank scanlines (144-153): V-Blank mode only
		if ppu.Cycles >= CyclesPerScanline {
			ppu.nextScanline()
			// Check for LYC=LY interrupt during V-Blank
			if ppu.updateLYCFlag() {
				interruptRequested = true
				ppu.raiseLCD()
			}

			if ppu.LY == TotalScanlines {
				// Frame complete, restart at scanline 0
				ppu.LY = 0
				ppu.setMode(ModeOAMScan)
				// Check for STAT interrupt on mode change
				if ppu.ShouldTriggerSTATInterrupt() {
					interruptRequested = true
					ppu.raiseLCD()
				}
			}
		}
	}
	
	return interruptRequested
}

// setMode changes the current PPU mode and updates STAT register
func (ppu *PPU) setMode(newMode PPUMode) {
	ppu.Mode = newMode
	ppu.updateSTATMode()
}

// nextScanline advances to the next scanline and resets cycle counter
func (ppu *PPU) nextScanline() {
	ppu.Cycles = 0
	ppu.LY++
	
	// Check LYC=LY interrupt condition
	ppu.updateLYCFlag()
}

// GetPixel returns the color value (0-3) at the specified screen coordinates
// Returns ColorWhite if coordinates are out of bounds
func (ppu *PPU) GetPixel(x, y int) uint8 {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return ColorWhite
	}
	return ppu.Framebuffer[y][x]
}

// SetPixel sets the color value (0-3) at the specified screen coordinates
// Does nothing if coordinates are out of bounds
func (ppu *PPU) SetPixel(x, y int, color uint8) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	if color > ColorBlack {
		color = ColorBlack // Clamp to valid color range
	}
	ppu.Framebuffer[y][x] = color
}

// SetRGBPixel sets the CGB true-color pixel at the specified screen
// coordinates. Renderers call this alongside SetPixel only when IsCGBMode.
func (ppu *PPU) SetRGBPixel(x, y int, color RGB) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	ppu.FramebufferRGB[y][x] = color
}