package emulator

import (
	"fmt"
	"log/slog"
	"time"

	"gameboy-emulator/internal/apu"
	"gameboy-emulator/internal/audio"
	"gameboy-emulator/internal/cartridge"
	"gameboy-emulator/internal/cpu"
	"gameboy-emulator/internal/display"
	"gameboy-emulator/internal/input"
	"gameboy-emulator/internal/joypad"
	"gameboy-emulator/internal/memory"
	"gameboy-emulator/internal/ppu"
)

// EmulatorState represents the current state of the emulator
type EmulatorState int

const (
	StateStopped EmulatorState = iota
	StateRunning
	StateHalted
	StatePaused
	StateError
)

// String returns string representation of emulator state
func (s EmulatorState) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StateHalted:
		return "Halted"
	case StatePaused:
		return "Paused"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Pixel is one rendered pixel of a ScanlineResult row. In DMG mode only
// Index is meaningful (a 2-bit grayscale palette index, 0-3); in CGB mode
// R/G/B carry the RGB555-derived color and Index is left zero.
type Pixel struct {
	Index uint8
	R, G, B uint8
}

// ScanlineResult is the line_to_draw output of Poll: the scanline the PPU
// just finished rendering (the DRAWING->HBLANK transition) and its row of
// pixels, left-to-right.
type ScanlineResult struct {
	Line   uint8
	Pixels [ppu.ScreenWidth]Pixel
}

// Emulator represents the complete Game Boy emulator
type Emulator struct {
	// Core components
	CPU       *cpu.CPU
	MMU       *memory.MMU
	PPU       *ppu.PPU
	APU       *apu.APU
	Display   *display.Display
	Audio     *audio.AudioOutput
	Cartridge cartridge.MBC
	Clock     *Clock

	// Input system
	InputManager *input.InputManager
	InputProvider input.InputStateProvider
	Joypad       *joypad.Joypad

	// Emulator state
	State           EmulatorState
	InstructionCount uint64
	Mode            cartridge.Mode
	lastErr         error

	// Control flags
	DebugMode   bool
	StepMode    bool
	Breakpoints map[uint16]bool

	// Execution modes
	RealTimeMode    bool
	MaxSpeedMode    bool
	SpeedMultiplier float64
}

// Config supplies everything emulator.New needs to build a runnable core:
// the cartridge image, an optional boot ROM overlay, an optional mode
// override, and the host hooks the core cannot provide for itself (wall
// clock for MBC3's RTC, external RAM persistence). ROM loading policy,
// windowing, audio output and keyboard input are host concerns and stay
// out of Config entirely; see Poll.
type Config struct {
	// ROM is the raw cartridge image. Required.
	ROM []byte

	// BootROM is an optional boot ROM image (256 bytes DMG, 2304 bytes
	// CGB). When nil, the core starts in the post-boot register state the
	// real boot ROM would have left behind, skipping the boot animation.
	BootROM []byte

	// Mode overrides the cartridge header's own CGB-compatibility byte
	// (0x143) when non-nil. Most callers should leave this nil and let
	// the header decide.
	Mode *cartridge.Mode

	// Clock supplies whole seconds since an arbitrary epoch to MBC3's
	// real-time clock. Required only for MBC3 cartridges with a battery
	// RTC; a nil Clock makes RTC registers stay frozen at zero.
	Clock func() uint64

	// SaveRAM is called with the cartridge's external RAM whenever the
	// host should persist it (currently: every write). A nil SaveRAM
	// means saves are not persisted anywhere.
	SaveRAM func([]byte)
}

// New builds an emulator core from a cartridge image and host hooks. It
// owns no window, no audio device and no keyboard: Display, Audio,
// InputManager and InputProvider are all left nil and may be attached by
// the caller afterward for the convenience Step/Run loop below; Poll
// never touches them.
func New(cfg Config) (*Emulator, error) {
	cart, err := cartridge.LoadROMFromBytes(cfg.ROM, "config")
	if err != nil {
		return nil, fmt.Errorf("failed to load ROM: %v", err)
	}
	if cfg.Mode != nil {
		cart.Mode = *cfg.Mode
	}

	clock := cfg.Clock
	if clock == nil {
		slog.Warn("emulator.Config has no Clock hook; MBC3 RTC registers will stay frozen")
		clock = func() uint64 { return 0 }
	}

	// Create CPU first: it owns the interrupt controller every other
	// component (MBC3 RTC excepted) shares.
	cpuInstance := cpu.NewCPU()

	mbc, err := cartridge.CreateMBC(cart, clock, cfg.SaveRAM)
	if err != nil {
		return nil, fmt.Errorf("failed to create MBC: %v", err)
	}

	ppuInstance := ppu.NewPPU()
	apuInstance := apu.NewAPU()

	// Create MMU with the MBC and interrupt controller; MMU builds its own
	// Timer/Joypad/Serial/DMA internally and shares the CPU's IE/IF pair.
	mmu := memory.NewMMU(mbc, cpuInstance.InterruptController)
	mmu.SetPPU(ppuInstance)
	mmu.SetAPU(apuInstance)
	mmu.SetMode(cart.Mode.IsCGB())
	if len(cfg.BootROM) > 0 {
		mmu.SetBootROM(cfg.BootROM)
	}

	e := &Emulator{
		CPU:             cpuInstance,
		MMU:             mmu,
		PPU:             ppuInstance,
		APU:             apuInstance,
		Cartridge:       mbc,
		Mode:            cart.Mode,
		Clock:           NewClock(),
		Joypad:          mmu.GetJoypad(),
		State:           StateStopped,
		Breakpoints:     make(map[uint16]bool),
		RealTimeMode:    true,
		SpeedMultiplier: 1.0,
	}

	if len(cfg.BootROM) > 0 {
		// Boot ROM present: let it run from 0x0000 and drive its own
		// register setup, exactly like real hardware.
		e.CPU.PC = 0x0000
		e.InstructionCount = 0
		e.Clock.Reset()
	} else {
		e.initializeGameBoyState()
	}

	return e, nil
}

// Err returns the fatal decode/dispatch error that moved the emulator into
// StateError, or nil if none occurred. Generalizes the teacher's StateError
// state label into an inspectable cause, since Poll reports failures this
// way instead of returning a Go error itself (spec.md's host-facing
// boundary keeps decode errors inside State/Err, not Poll's return shape).
func (e *Emulator) Err() error {
	return e.lastErr
}

// DoubleSpeed reports whether the CPU is currently running in CGB double
// speed mode (KEY1 bit 7). Poll halves the cycles it hands to PPU/APU/
// timer/serial/DMA when this is set; see memory.MMU.peripheralCycles.
func (e *Emulator) DoubleSpeed() bool {
	if e.MMU == nil {
		return false
	}
	return e.MMU.IsDoubleSpeed()
}

// initializeGameBoyState sets registers to Game Boy boot completion state
func (e *Emulator) initializeGameBoyState() {
	// Game Boy DMG initial state after boot ROM
	e.CPU.A = 0x01     // CPU type identifier
	e.CPU.F = 0xB0     // Flags: Z=1, N=0, H=1, C=1
	e.CPU.SetBC(0x0013) // BC register pair
	e.CPU.SetDE(0x00D8) // DE register pair
	e.CPU.SetHL(0x014D) // HL register pair
	e.CPU.SP = 0xFFFE   // Stack pointer
	e.CPU.PC = 0x0100   // Program counter (start of ROM)

	// Clear CPU state flags
	e.CPU.Halted = false
	e.CPU.Stopped = false
	e.CPU.InterruptsEnabled = true

	// Reset counters
	e.InstructionCount = 0
	e.Clock.Reset()
}

// State Management Methods

// Run starts the emulator main loop
func (e *Emulator) Run() error {
	if e.State != StateStopped {
		return fmt.Errorf("emulator already running")
	}

	e.State = StateRunning

	defer func() {
		e.State = StateStopped
	}()

	// Main execution loop
	for e.State == StateRunning {
		// Check for breakpoints in debug mode
		if e.DebugMode && e.Breakpoints[e.CPU.PC] {
			e.State = StatePaused
			break
		}

		// Execute single instruction
		err := e.Step()
		if err != nil {
			e.State = StateError
			return fmt.Errorf("execution error: %v", err)
		}

		// Handle CPU state changes
		if e.CPU.Halted {
			e.State = StateHalted
			// In real implementation, wait for interrupt
			break
		}

		if e.CPU.Stopped {
			e.State = StateStopped
			break
		}

		// Real-time timing control using Clock system
		if waitTime := e.Clock.ShouldWaitForTiming(); waitTime > 0 {
			time.Sleep(waitTime)
		}

		// Frame-based execution check (optional for frame-perfect timing)
		if e.IsFrameComplete() {
			// Handle frame completion (future: trigger PPU, interrupts)
			e.NextFrame()
			
			// Optional frame-based waiting for smoother execution
			if frameWait := e.Clock.ShouldWaitForFrame(); frameWait > 0 {
				time.Sleep(frameWait)
			}
		}
	}

	return nil
}

// Poll is the emulator core's single entry point: the host hands it a
// mixer stream to be sampled independently (spec's "random-access
// generator, not a queue"), a one-shot joypad snapshot and an optional
// incoming serial byte, and it advances the core by exactly one CPU
// instruction. It returns the scanline completed during that instruction
// (if any), the number of T-cycles consumed, and any serial bytes shifted
// out since the last call. Poll never touches a window, an audio device or
// a keyboard; ROM loading, frequency throttling and presentation are all
// host responsibilities left to the caller.
func (e *Emulator) Poll(mixer *apu.MixerStream, joypadInput joypad.JoypadInput, serialIn *uint8) (*ScanlineResult, uint8, []uint8) {
	if e.Joypad != nil {
		e.Joypad.ApplyInput(joypadInput)
	}

	serialPort := e.MMU.GetSerial()
	if serialIn != nil && serialPort.IsWaitingForExternalByte() {
		serialPort.ReceiveExternalByte(*serialIn)
	}

	var cycles uint8
	if e.CPU.Halted || e.CPU.Stopped {
		// Nothing to fetch while halted/stopped; peripherals still tick so
		// a pending interrupt can wake the core up on a later Poll.
		cycles = 4
	} else {
		instrCycles, err := e.fetchDecodeExecute()
		if err != nil {
			e.State = StateError
			e.lastErr = err
			return nil, 0, nil
		}
		e.lastErr = nil
		cycles = uint8(instrCycles)
		e.InstructionCount++
	}

	// Service the highest-priority pending interrupt, if IME is set and one
	// is pending; its 20 cycles fold into this Poll's reported cpuTime
	// alongside the instruction (or idle tick) that preceded it.
	cycles += e.CPU.CheckAndServiceInterrupt(e.MMU)

	// Advance every peripheral the MMU owns (DMA, PPU/HDMA, APU, timer,
	// serial) by this step's cycles in one call; MMU halves this for
	// double-speed CGB mode internally.
	e.MMU.Step(cycles)

	e.Clock.AddCycles(int(cycles))

	_ = mixer // sampled independently by the host; Poll doesn't pull from it

	var line *ScanlineResult
	if e.PPU != nil {
		if ln, pixels, ok := e.PPU.TakeCompletedLine(); ok {
			line = &ScanlineResult{Line: ln}
			if e.PPU.IsCGBMode() {
				row := e.PPU.FramebufferRGB[ln]
				for x := 0; x < ppu.ScreenWidth; x++ {
					line.Pixels[x] = Pixel{R: row[x].R, G: row[x].G, B: row[x].B}
				}
			} else {
				for x := 0; x < ppu.ScreenWidth; x++ {
					line.Pixels[x] = Pixel{Index: pixels[x]}
				}
			}
		}
	}

	return line, cycles, serialPort.DrainSentBytes()
}

// Step is a convenience wrapper around Poll for callers that drive a real
// window, audio device and keyboard instead of embedding the core
// themselves: it builds a JoypadInput snapshot from whatever the input
// system last saw, calls Poll, then forwards its own Audio/Display/
// InputManager exactly as the old free-running loop did.
func (e *Emulator) Step() error {
	joypadInput := joypad.JoypadInput{}
	if e.Joypad != nil {
		joypadInput = joypad.JoypadInput{
			Up: e.Joypad.Up, Down: e.Joypad.Down, Left: e.Joypad.Left, Right: e.Joypad.Right,
			A: e.Joypad.A, B: e.Joypad.B, Select: e.Joypad.Select, Start: e.Joypad.Start,
		}
	}

	var mixer *apu.MixerStream
	if e.APU != nil {
		mixer = e.APU.Stream()
	}

	_, _, _ = e.Poll(mixer, joypadInput, nil)
	if err := e.Err(); err != nil {
		return err
	}

	if e.APU != nil {
		// Get audio samples from APU and send to audio output
		if audioSamples := e.APU.GetSamples(); audioSamples != nil && e.Audio != nil {
			// Convert float32 samples to int16 for SDL2
			int16Samples := make([]int16, len(audioSamples)*2) // Stereo conversion
			for i, sample := range audioSamples {
				// Clamp sample to [-1.0, 1.0] and convert to int16
				if sample > 1.0 {
					sample = 1.0
				} else if sample < -1.0 {
					sample = -1.0
				}
				int16Sample := int16(sample * 32767)
				int16Samples[i*2] = int16Sample   // Left channel
				int16Samples[i*2+1] = int16Sample // Right channel (mono to stereo)
			}

			// Send samples to audio output (non-blocking)
			if err := e.Audio.PushSamples(int16Samples); err != nil && err != audio.ErrBufferOverflow {
				// Log audio errors but don't stop emulation (except for critical errors)
				// Only stop for non-overflow errors
				return fmt.Errorf("audio output error: %v", err)
			}
		}
	}

	// Check for frame completion and render to display.
	// Frame completes when PPU enters V-Blank (scanline 144).
	if e.PPU != nil && e.Display != nil &&
		e.PPU.GetCurrentScanline() == 144 && e.PPU.GetCurrentMode() == ppu.ModeVBlank {
		// PPU completed a full frame, render it to display. CGB ROMs carry
		// real color in FramebufferRGB; fall back to the grayscale
		// Framebuffer when running DMG or when the backend can't present RGB.
		if e.PPU.IsCGBMode() && e.Display.SupportsRGB() {
			rgbFrame := convertPPUFramebuffer(&e.PPU.FramebufferRGB)
			if err := e.Display.PresentRGB(rgbFrame); err != nil {
				return fmt.Errorf("display present error: %v", err)
			}
		} else if err := e.Display.Present(&e.PPU.Framebuffer); err != nil {
			return fmt.Errorf("display present error: %v", err)
		}
	}

	// Poll the host keyboard each instruction so button presses land before
	// the next joypad register read.
	if e.InputManager != nil && e.InputProvider != nil {
		e.InputManager.UpdateFromStateProvider(e.InputProvider)
	}

	return nil
}

// convertPPUFramebuffer reinterprets the PPU's CGB color framebuffer as a
// display.RGBColor one; the two structs share the same R/G/B uint8 layout.
func convertPPUFramebuffer(src *[ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB) *[display.GameBoyHeight][display.GameBoyWidth]display.RGBColor {
	var out [display.GameBoyHeight][display.GameBoyWidth]display.RGBColor
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			out[y][x] = display.RGBColor{R: src[y][x].R, G: src[y][x].G, B: src[y][x].B}
		}
	}
	return &out
}

// Stop gracefully stops the emulator
func (e *Emulator) Stop() {
	e.State = StateStopped
}

// Pause pauses emulator execution
func (e *Emulator) Pause() {
	if e.State == StateRunning {
		e.State = StatePaused
	}
}

// Resume resumes from paused state
func (e *Emulator) Resume() {
	if e.State == StatePaused {
		e.State = StateRunning
	}
}

// Reset resets emulator to initial state
func (e *Emulator) Reset() {
	e.State = StateStopped
	e.InstructionCount = 0
	e.lastErr = nil
	e.Clock.Reset()
	e.initializeGameBoyState()
	
	// Reset input system
	if e.InputManager != nil {
		e.InputManager.Reset()
	}
}

// Cleanup releases all emulator resources
func (e *Emulator) Cleanup() error {
	// Stop and cleanup audio
	if e.Audio != nil {
		if err := e.Audio.Stop(); err != nil {
			// Log error but continue cleanup
		}
		if err := e.Audio.Cleanup(); err != nil {
			return fmt.Errorf("failed to cleanup audio: %v", err)
		}
	}
	
	// Cleanup display
	if e.Display != nil {
		if err := e.Display.Cleanup(); err != nil {
			return fmt.Errorf("failed to cleanup display: %v", err)
		}
	}
	
	e.State = StateStopped
	return nil
}

// GetState returns current emulator state
func (e *Emulator) GetState() EmulatorState {
	return e.State
}

// SetDebugMode enables or disables debug mode
func (e *Emulator) SetDebugMode(enabled bool) {
	e.DebugMode = enabled
}

// SetStepMode enables or disables step mode
func (e *Emulator) SetStepMode(enabled bool) {
	e.StepMode = enabled
}

// AddBreakpoint adds a breakpoint at the specified address
func (e *Emulator) AddBreakpoint(address uint16) {
	e.Breakpoints[address] = true
}

// RemoveBreakpoint removes a breakpoint at the specified address
func (e *Emulator) RemoveBreakpoint(address uint16) {
	delete(e.Breakpoints, address)
}

// GetStats returns current emulator statistics
func (e *Emulator) GetStats() (uint64, uint64) {
	totalCycles, _, _, _ := e.Clock.GetStats()
	return e.InstructionCount, totalCycles
}

// GetDetailedStats returns comprehensive emulator statistics
func (e *Emulator) GetDetailedStats() (instructions uint64, cycles uint64, frames uint64, fps float64, cps float64) {
	totalCycles, frameCount, currentFPS, currentCPS := e.Clock.GetStats()
	return e.InstructionCount, totalCycles, frameCount, currentFPS, currentCPS
}

// Speed Control Methods

// SetRealTimeMode enables or disables real-time execution at Game Boy speed
func (e *Emulator) SetRealTimeMode(enabled bool) {
	e.RealTimeMode = enabled
	e.MaxSpeedMode = !enabled
	e.Clock.SetRealTimeMode(enabled)
}

// SetMaxSpeedMode enables or disables maximum speed execution (no timing delays)
func (e *Emulator) SetMaxSpeedMode(enabled bool) {
	e.MaxSpeedMode = enabled
	e.RealTimeMode = !enabled
	e.Clock.SetMaxSpeedMode(enabled)
}

// SetSpeedMultiplier sets execution speed (1.0 = normal, 2.0 = double, 0.5 = half)
func (e *Emulator) SetSpeedMultiplier(multiplier float64) {
	e.SpeedMultiplier = multiplier
	e.Clock.SetSpeedMultiplier(multiplier)
}

// IsFrameComplete returns true if a complete frame (70224 cycles) has been executed
func (e *Emulator) IsFrameComplete() bool {
	return e.Clock.IsFrameComplete()
}

// NextFrame advances to the next frame and resets frame cycle counter
func (e *Emulator) NextFrame() {
	e.Clock.NextFrame()
}

// Fetch-Decode-Execute Implementation

// fetchDecodeExecute performs one complete instruction cycle
func (e *Emulator) fetchDecodeExecute() (int, error) {
	// Fetch opcode from current PC
	opcode := e.fetchInstruction()

	// Handle CB-prefixed instructions
	if opcode == 0xCB {
		return e.executeCBInstruction()
	}

	// Execute regular instruction
	return e.executeInstruction(opcode)
}

// fetchInstruction reads opcode at current PC and advances PC
func (e *Emulator) fetchInstruction() uint8 {
	pc := e.CPU.PC
	
	// Check if CPU can access this memory during DMA
	dmaController := e.MMU.GetDMAController()
	if !dmaController.CanCPUAccessMemory(pc) {
		// During DMA, CPU reads 0xFF from blocked memory
		opcode := uint8(0xFF)
		e.CPU.PC = pc + 1
		return opcode
	}
	
	opcode := e.MMU.ReadByte(pc)
	e.CPU.PC = pc + 1
	return opcode
}

// executeInstruction executes a regular (non-CB) instruction
func (e *Emulator) executeInstruction(opcode uint8) (int, error) {
	pc := e.CPU.PC

	// Read parameters based on instruction type
	params := e.readInstructionParameters(opcode)

	// Execute via CPU dispatch system
	cycles, err := e.CPU.ExecuteInstruction(e.MMU, opcode, params...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute instruction 0x%02X at PC 0x%04X: %v",
			opcode, pc-1, err)
	}

	return int(cycles), nil
}

// executeCBInstruction executes a CB-prefixed instruction
func (e *Emulator) executeCBInstruction() (int, error) {
	// Fetch CB opcode (PC already advanced past 0xCB)
	cbOpcode := e.fetchInstruction()

	// Execute via CPU CB dispatch system
	cycles, err := e.CPU.ExecuteCBInstruction(e.MMU, cbOpcode)
	if err != nil {
		return 0, fmt.Errorf("failed to execute CB instruction 0x%02X: %v",
			cbOpcode, err)
	}

	// CB instructions have 4 extra cycles for the CB prefix
	return int(cycles) + 4, nil
}

// readInstructionParameters reads instruction parameters based on opcode
func (e *Emulator) readInstructionParameters(opcode uint8) []uint8 {
	// This maps opcodes to their parameter requirements
	// Based on existing CPU instruction implementation

	switch opcode {
	// Immediate 8-bit instructions
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E: // LD r,n
		fallthrough
	case 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE: // Arithmetic/logical with immediate
		fallthrough
	case 0x18, 0x20, 0x28, 0x30, 0x38: // Relative jumps
		fallthrough
	case 0xE0, 0xE2, 0xF0, 0xF2: // I/O operations
		fallthrough
	case 0xE8, 0xF8: // ADD SP,n and LD HL,SP+n (signed 8-bit)
		return []uint8{e.fetchInstruction()}

	// Immediate 16-bit instructions (little-endian)
	case 0x01, 0x11, 0x21, 0x31: // LD rr,nn
		fallthrough
	case 0x08: // LD (nn),SP
		fallthrough
	case 0xC2, 0xC3, 0xCA, 0xD2, 0xDA: // Absolute jumps
		fallthrough
	case 0xC4, 0xCC, 0xCD, 0xD4, 0xDC: // Calls
		fallthrough
	case 0xEA, 0xFA: // LD (nn),A and LD A,(nn)
		low := e.fetchInstruction()
		high := e.fetchInstruction()
		return []uint8{low, high}

	// No parameters
	default:
		return nil
	}
}

// Input Management Methods

// ProcessInputEvent processes a single input event through the input manager
func (e *Emulator) ProcessInputEvent(event input.InputEvent) {
	if e.InputManager != nil {
		e.InputManager.ProcessInputEvent(event)
	}
}

// ProcessInputEvents processes multiple input events
func (e *Emulator) ProcessInputEvents(events []input.InputEvent) {
	if e.InputManager != nil {
		e.InputManager.ProcessInputEvents(events)
	}
}

// UpdateInputFromProvider updates input state from a polling-based provider
func (e *Emulator) UpdateInputFromProvider(provider input.InputStateProvider) {
	if e.InputManager != nil {
		e.InputManager.UpdateFromStateProvider(provider)
	}
}

// SetKeyMapping sets a custom keyboard mapping
func (e *Emulator) SetKeyMapping(mapping input.KeyMapping) {
	if e.InputManager != nil {
		e.InputManager.SetKeyMapping(mapping)
	}
}

// GetKeyMapping returns the current keyboard mapping
func (e *Emulator) GetKeyMapping() input.KeyMapping {
	if e.InputManager != nil {
		return e.InputManager.GetKeyMapping()
	}
	return input.DefaultKeyMapping()
}

// SetInputEnabled enables or disables input processing
func (e *Emulator) SetInputEnabled(enabled bool) {
	if e.InputManager != nil {
		e.InputManager.SetEnabled(enabled)
	}
}

// GetButtonStates returns the current state of all Game Boy buttons
func (e *Emulator) GetButtonStates() map[string]bool {
	if e.InputManager != nil {
		return e.InputManager.GetButtonStates()
	}
	return make(map[string]bool)
}

