// Package display - Ebiten-backed display implementation for a real window
// with hardware-accelerated scaling, replacing the console's ASCII rendering.

package display

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"gameboy-emulator/internal/input"
)

// EbitenDisplay implements DisplayInterface by driving an Ebiten window on
// its own goroutine. Ebiten owns its game loop (RunGame blocks), so Present
// hands off the latest framebuffer through a mutex rather than drawing
// directly; the window's own Draw callback pulls from it on the next tick.
type EbitenDisplay struct {
	config DisplayConfig
	title  string
	tex    *ebiten.Image

	mu          sync.Mutex
	pending     [GameBoyHeight][GameBoyWidth]uint8
	hasFrame    bool
	pendingRGB  [GameBoyHeight][GameBoyWidth]RGBColor
	hasRGBFrame bool
	closed      bool
	runErr      error
}

// NewEbitenDisplay creates a new Ebiten-backed display implementation.
func NewEbitenDisplay() *EbitenDisplay {
	return &EbitenDisplay{title: "Game Boy Emulator"}
}

// Initialize sets up the window and starts the Ebiten game loop in the background.
func (e *EbitenDisplay) Initialize(config DisplayConfig) error {
	if err := ValidateConfig(config); err != nil {
		return fmt.Errorf("ebiten display: %w", err)
	}
	e.config = config
	e.tex = ebiten.NewImage(GameBoyWidth, GameBoyHeight)

	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowSize(GameBoyWidth*config.ScaleFactor, GameBoyHeight*config.ScaleFactor)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(config.VSync)

	go func() {
		err := ebiten.RunGame(e)
		e.mu.Lock()
		e.closed = true
		e.runErr = err
		e.mu.Unlock()
	}()

	return nil
}

// Update implements ebiten.Game. Window-close detection runs here since
// Ebiten only reports it from inside the game loop it owns.
func (e *EbitenDisplay) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game, converting the most recently presented Game
// Boy framebuffer into the window's pixel texture.
func (e *EbitenDisplay) Draw(screen *ebiten.Image) {
	e.mu.Lock()
	if e.hasRGBFrame {
		pix := make([]byte, GameBoyWidth*GameBoyHeight*4)
		for y := 0; y < GameBoyHeight; y++ {
			for x := 0; x < GameBoyWidth; x++ {
				rgb := e.pendingRGB[y][x]
				i := (y*GameBoyWidth + x) * 4
				pix[i] = rgb.R
				pix[i+1] = rgb.G
				pix[i+2] = rgb.B
				pix[i+3] = 0xFF
			}
		}
		e.tex.WritePixels(pix)
	} else if e.hasFrame {
		pix := make([]byte, GameBoyWidth*GameBoyHeight*4)
		for y := 0; y < GameBoyHeight; y++ {
			for x := 0; x < GameBoyWidth; x++ {
				rgb := e.config.Palette.ConvertColor(e.pending[y][x])
				i := (y*GameBoyWidth + x) * 4
				pix[i] = rgb.R
				pix[i+1] = rgb.G
				pix[i+2] = rgb.B
				pix[i+3] = 0xFF
			}
		}
		e.tex.WritePixels(pix)
	}
	e.mu.Unlock()

	screen.DrawImage(e.tex, nil)

	if e.config.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

// Layout implements ebiten.Game, keeping the logical screen at native Game Boy resolution.
func (e *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return GameBoyWidth, GameBoyHeight
}

// Present hands the latest framebuffer to the window's draw loop.
func (e *EbitenDisplay) Present(framebuffer *[GameBoyHeight][GameBoyWidth]uint8) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return e.runErr
	}
	e.pending = *framebuffer
	e.hasFrame = true
	return nil
}

// PresentRGB hands a true-color frame to the window's draw loop, taking
// priority over any monochrome frame already presented this session.
func (e *EbitenDisplay) PresentRGB(framebuffer *[GameBoyHeight][GameBoyWidth]RGBColor) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return e.runErr
	}
	e.pendingRGB = *framebuffer
	e.hasRGBFrame = true
	return nil
}

// SetTitle updates the window title.
func (e *EbitenDisplay) SetTitle(title string) error {
	e.title = title
	ebiten.SetWindowTitle(title)
	return nil
}

// ShouldClose reports whether the Ebiten window has finished running.
func (e *EbitenDisplay) ShouldClose() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// PollEvents is a no-op: Ebiten pumps its own event loop inside RunGame, polled via Update above.
func (e *EbitenDisplay) PollEvents() {}

// Cleanup releases display resources. Ebiten tears its window down when RunGame returns.
func (e *EbitenDisplay) Cleanup() error {
	return nil
}

// KeyProvider adapts Ebiten's keyboard state to input.InputStateProvider so
// InputManager.UpdateFromStateProvider can poll it every frame.
type KeyProvider struct{}

// NewKeyProvider creates an Ebiten-backed input state provider.
func NewKeyProvider() *KeyProvider {
	return &KeyProvider{}
}

var ebitenKeyTable = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyB:          input.KeyB,
	ebiten.KeyC:          input.KeyC,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyE:          input.KeyE,
	ebiten.KeyF:          input.KeyF,
	ebiten.KeyG:          input.KeyG,
	ebiten.KeyH:          input.KeyH,
	ebiten.KeyI:          input.KeyI,
	ebiten.KeyJ:          input.KeyJ,
	ebiten.KeyK:          input.KeyK,
	ebiten.KeyL:          input.KeyL,
	ebiten.KeyM:          input.KeyM,
	ebiten.KeyN:          input.KeyN,
	ebiten.KeyO:          input.KeyO,
	ebiten.KeyP:          input.KeyP,
	ebiten.KeyQ:          input.KeyQ,
	ebiten.KeyR:          input.KeyR,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyT:          input.KeyT,
	ebiten.KeyU:          input.KeyU,
	ebiten.KeyV:          input.KeyV,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyX:          input.KeyX,
	ebiten.KeyY:          input.KeyY,
	ebiten.KeyZ:          input.KeyZ,
	ebiten.Key0:          input.Key0,
	ebiten.Key1:          input.Key1,
	ebiten.Key2:          input.Key2,
	ebiten.Key3:          input.Key3,
	ebiten.Key4:          input.Key4,
	ebiten.Key5:          input.Key5,
	ebiten.Key6:          input.Key6,
	ebiten.Key7:          input.Key7,
	ebiten.Key8:          input.Key8,
	ebiten.Key9:          input.Key9,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyBackspace:  input.KeyBackspace,
	ebiten.KeyTab:        input.KeyTab,
	ebiten.KeyShiftLeft:  input.KeyShift,
	ebiten.KeyShiftRight: input.KeyShift,
	ebiten.KeyControlLeft:  input.KeyCtrl,
	ebiten.KeyControlRight: input.KeyCtrl,
	ebiten.KeyAltLeft:    input.KeyAlt,
	ebiten.KeyAltRight:   input.KeyAlt,
	ebiten.KeyEscape:     input.KeyEscape,
}

// IsKeyPressed implements input.InputStateProvider.
func (KeyProvider) IsKeyPressed(key input.Key) bool {
	for ek, ik := range ebitenKeyTable {
		if ik == key {
			if ebiten.IsKeyPressed(ek) {
				return true
			}
		}
	}
	return false
}

// GetPressedKeys implements input.InputStateProvider.
func (KeyProvider) GetPressedKeys() []input.Key {
	var pressed []input.Key
	for ek, ik := range ebitenKeyTable {
		if ebiten.IsKeyPressed(ek) {
			pressed = append(pressed, ik)
		}
	}
	return pressed
}
