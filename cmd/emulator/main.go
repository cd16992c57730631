package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli"

	"gameboy-emulator/internal/audio"
	"gameboy-emulator/internal/cartridge"
	"gameboy-emulator/internal/display"
	"gameboy-emulator/internal/emulator"
	"gameboy-emulator/internal/input"
)

// Version information
const (
	Version     = "0.1.0"
	ProjectName = "Game Boy Emulator"
)

func main() {
	app := cli.NewApp()
	app.Name = "gameboy-emulator"
	app.Usage = "gameboy-emulator [options] <rom_file>"
	app.Description = "A Game Boy (DMG/CGB) emulator"
	app.Version = Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to Game Boy ROM file",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug mode",
		},
		cli.BoolFlag{
			Name:  "step",
			Usage: "Enable step-by-step execution",
		},
		cli.IntFlag{
			Name:  "max-steps",
			Usage: "Maximum steps in step mode (0 for unlimited)",
			Value: 100,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "Show ROM file information",
			ArgsUsage: "<rom_file>",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return errors.New("ROM file path required for info command")
				}
				showROMInfo(c.Args().Get(0))
				return nil
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate a ROM file",
			ArgsUsage: "<rom_file>",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return errors.New("ROM file path required for validate command")
				}
				validateROM(c.Args().Get(0))
				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan a directory for ROM files",
			ArgsUsage: "<directory>",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return errors.New("directory path required for scan command")
				}
				scanDirectory(c.Args().Get(0))
				return nil
			},
		},
	}
	app.Action = func(c *cli.Context) error {
		romPath := c.String("rom")
		if romPath == "" {
			if c.NArg() > 0 {
				romPath = c.Args().Get(0)
			} else {
				cli.ShowAppHelp(c)
				return errors.New("no ROM path provided")
			}
		}

		return runEmulator(romPath, c.Bool("debug"), c.Bool("step"), c.Int("max-steps"))
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("emulator exited with error", "error", err)
		os.Exit(1)
	}
}

// runEmulator loads a ROM and starts the emulation
func runEmulator(romFile string, debugMode, stepMode bool, maxSteps int) error {
	fmt.Printf("%s v%s\n", ProjectName, Version)
	fmt.Printf("Loading ROM: %s\n", romFile)

	// ROM loading, wall-clock, and save persistence are host concerns; the
	// core only ever sees bytes and callback hooks (emulator.Config).
	romData, err := os.ReadFile(romFile)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %v", err)
	}
	savePath := romFile + ".sav"

	emu, err := emulator.New(emulator.Config{
		ROM:   romData,
		Clock: func() uint64 { return uint64(time.Now().Unix()) },
		SaveRAM: func(ramData []byte) {
			if err := os.WriteFile(savePath, ramData, 0644); err != nil {
				slog.Warn("failed to persist save RAM", "path", savePath, "error", err)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create emulator: %v", err)
	}

	if err := attachHostIO(emu); err != nil {
		return fmt.Errorf("failed to attach display/audio: %v", err)
	}

	// Show ROM information
	fmt.Printf("Emulator initialized successfully!\n")
	fmt.Printf("ROM Bank: %d, RAM Bank: %d\n", emu.Cartridge.GetCurrentROMBank(), emu.Cartridge.GetCurrentRAMBank())
	fmt.Printf("Initial CPU State: PC=0x%04X, SP=0x%04X, A=0x%02X\n",
		emu.CPU.PC, emu.CPU.SP, emu.CPU.A)
	fmt.Println()

	// Configure emulator
	emu.SetDebugMode(debugMode)
	emu.SetStepMode(stepMode)

	if stepMode {
		return runStepMode(emu, maxSteps)
	} else if debugMode {
		return runDebugMode(emu)
	} else {
		return runNormalMode(emu)
	}
}

// attachHostIO builds the windowing/audio/input stack and wires it onto an
// already-constructed emulator core. The core itself (emulator.New) never
// touches any of this; Step forwards to it purely as a convenience for this
// CLI's own run loop, and Poll ignores it entirely.
func attachHostIO(emu *emulator.Emulator) error {
	displayInstance := display.NewDisplay(display.NewEbitenDisplay())
	inputProvider := display.NewKeyProvider()

	audioImpl := audio.NewSDL2AudioOutput()
	audioInstance := audio.NewAudioOutput(audioImpl)

	emu.Display = displayInstance
	emu.Audio = audioInstance
	emu.InputProvider = inputProvider
	emu.InputManager = input.NewInputManager(emu.Joypad)

	displayConfig := display.DisplayConfig{
		ScaleFactor: 1,
		ScalingMode: display.ScaleNearest,
		Palette: display.ColorPalette{
			White:     display.RGBColor{R: 155, G: 188, B: 15}, // Game Boy green (lightest)
			LightGray: display.RGBColor{R: 139, G: 172, B: 15}, // Light green
			DarkGray:  display.RGBColor{R: 48, G: 98, B: 48},   // Dark green
			Black:     display.RGBColor{R: 15, G: 56, B: 15},   // Game Boy green (darkest)
		},
		VSync:   true,
		ShowFPS: false,
	}
	if err := displayInstance.Initialize(displayConfig); err != nil {
		return fmt.Errorf("failed to initialize display: %v", err)
	}

	audioConfig := audio.DefaultConfig()
	if err := audioInstance.Initialize(audioConfig); err != nil {
		return fmt.Errorf("failed to initialize audio: %v", err)
	}
	if err := audioInstance.Start(); err != nil {
		return fmt.Errorf("failed to start audio: %v", err)
	}

	return nil
}

// runStepMode executes emulator in step-by-step mode
func runStepMode(emu *emulator.Emulator, maxSteps int) error {
	fmt.Println("=== Step Mode ===")
	fmt.Println("Press Enter to execute each instruction, 'q' to quit, 'r' to run normally")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	stepCount := 0

	for {
		// Check step limit
		if maxSteps > 0 && stepCount >= maxSteps {
			fmt.Printf("Reached maximum steps (%d). Stopping.\n", maxSteps)
			break
		}

		// Print current state
		pc := emu.CPU.PC
		opcode := emu.MMU.ReadByte(pc)
		
		fmt.Printf("Step %d - PC: 0x%04X, Opcode: 0x%02X", stepCount+1, pc, opcode)
		
		// Show instruction info if available
		if opcode == 0xCB {
			cbOpcode := emu.MMU.ReadByte(pc + 1)
			fmt.Printf(" 0x%02X (CB %s)", cbOpcode, getCBInstructionName(cbOpcode))
		} else {
			fmt.Printf(" (%s)", getInstructionName(opcode))
		}
		
		fmt.Printf(" | A=0x%02X, BC=0x%04X, DE=0x%04X, HL=0x%04X, SP=0x%04X\n", 
			emu.CPU.A, emu.CPU.GetBC(), emu.CPU.GetDE(), emu.CPU.GetHL(), emu.CPU.SP)

		// Wait for user input
		fmt.Print(">>> ")
		if !scanner.Scan() {
			break
		}
		
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		
		switch input {
		case "q", "quit":
			fmt.Println("Quitting step mode.")
			return nil
		case "r", "run":
			fmt.Println("Switching to normal execution mode...")
			return runNormalMode(emu)
		case "", "s", "step":
			// Execute one step
			err := emu.Step()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return err
			}
			stepCount++
			
			// Check emulator state
			switch emu.GetState() {
			case emulator.StateHalted:
				fmt.Println("CPU is halted. Waiting for interrupt...")
			case emulator.StateStopped:
				fmt.Println("CPU is stopped. Emulation complete.")
				return nil
			case emulator.StateError:
				fmt.Println("Emulator encountered an error.")
				return fmt.Errorf("emulator error")
			}
		default:
			fmt.Println("Commands: Enter/s=step, q=quit, r=run")
		}
		fmt.Println()
	}

	return nil
}

// runDebugMode executes emulator with debug output
func runDebugMode(emu *emulator.Emulator) error {
	fmt.Println("=== Debug Mode ===")
	fmt.Println("Running with debug output for first 100 instructions...")
	fmt.Println()

	for i := 0; i < 100; i++ {
		pc := emu.CPU.PC
		opcode := emu.MMU.ReadByte(pc)
		
		fmt.Printf("Step %d: PC=0x%04X, Op=0x%02X (%s)\n", 
			i+1, pc, opcode, getInstructionName(opcode))

		err := emu.Step()
		if err != nil {
			return fmt.Errorf("execution error at step %d: %v", i+1, err)
		}

		// Check emulator state
		if emu.GetState() != emulator.StateRunning {
			fmt.Printf("Emulator state changed to: %s\n", emu.GetState())
			break
		}
	}

	instructions, cycles := emu.GetStats()
	fmt.Printf("\nExecuted %d instructions, %d cycles\n", instructions, cycles)
	return nil
}

// runNormalMode executes emulator normally
func runNormalMode(emu *emulator.Emulator) error {
	fmt.Println("=== Normal Execution Mode ===")
	fmt.Println("Running emulator... (This is a basic implementation)")
	fmt.Println()

	// For now, just run a limited number of instructions
	// In a full emulator, this would run indefinitely with proper timing
	maxInstructions := 10000
	
	for i := 0; i < maxInstructions; i++ {
		if emu.Display != nil && emu.Display.ShouldClose() {
			fmt.Println("Display window closed. Stopping emulation.")
			break
		}

		err := emu.Step()
		if err != nil {
			return fmt.Errorf("execution error after %d instructions: %v", i, err)
		}

		// Check emulator state
		state := emu.GetState()
		if state != emulator.StateRunning {
			fmt.Printf("Emulator stopped after %d instructions. State: %s\n", i+1, state)
			break
		}

		// Show progress every 1000 instructions
		if (i+1)%1000 == 0 {
			instructions, cycles := emu.GetStats()
			fmt.Printf("Progress: %d instructions, %d cycles\n", instructions, cycles)
		}
	}

	instructions, cycles := emu.GetStats()
	fmt.Printf("\nFinal stats: %d instructions, %d cycles\n", instructions, cycles)
	fmt.Printf("Final state: PC=0x%04X, A=0x%02X, SP=0x%04X\n", 
		emu.CPU.PC, emu.CPU.A, emu.CPU.SP)
	
	return nil
}

// Helper functions for instruction names (basic implementation)
func getInstructionName(opcode uint8) string {
	switch opcode {
	case 0x00:
		return "NOP"
	case 0x01:
		return "LD BC,nn"
	case 0x06:
		return "LD B,n"
	case 0x0E:
		return "LD C,n"
	case 0x16:
		return "LD D,n"
	case 0x1E:
		return "LD E,n"
	case 0x26:
		return "LD H,n"
	case 0x2E:
		return "LD L,n"
	case 0x3E:
		return "LD A,n"
	case 0x3C:
		return "INC A"
	case 0x76:
		return "HALT"
	case 0x10:
		return "STOP"
	default:
		return fmt.Sprintf("Op_0x%02X", opcode)
	}
}

func getCBInstructionName(cbOpcode uint8) string {
	switch cbOpcode {
	case 0x07:
		return "RLC A"
	case 0x17:
		return "RL A"
	case 0x37:
		return "SWAP A"
	default:
		return fmt.Sprintf("CB_0x%02X", cbOpcode)
	}
}


// showROMInfo displays detailed information about a ROM file
func showROMInfo(romFile string) {
	fmt.Printf("Analyzing ROM file: %s\n", romFile)
	fmt.Println()

	// Get ROM information
	info, err := cartridge.GetROMInfo(romFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Display information
	fmt.Println("=== ROM Information ===")
	fmt.Printf("File: %s\n", info.Filename)
	fmt.Printf("Title: %s\n", info.Title)
	fmt.Printf("Type: %s (0x%02X)\n", info.TypeName, uint8(info.CartridgeType))
	fmt.Printf("ROM Size: %d KB (%d bytes)\n", info.ROMSize/1024, info.ROMSize)
	fmt.Printf("RAM Size: %d KB (%d bytes)\n", info.RAMSize/1024, info.RAMSize)
	fmt.Printf("File Size: %d bytes\n", info.FileSize)
	fmt.Printf("Header Valid: %t\n", info.HeaderValid)

	// Calculate ROM banks
	romBanks := info.ROMSize / (16 * 1024)
	ramBanks := 0
	if info.RAMSize > 0 {
		ramBanks = info.RAMSize / (8 * 1024)
	}

	fmt.Printf("ROM Banks: %d (16KB each)\n", romBanks)
	fmt.Printf("RAM Banks: %d (8KB each)\n", ramBanks)

	// Show supported features
	fmt.Println()
	fmt.Println("=== Features ===")
	switch info.CartridgeType {
	case cartridge.ROM_ONLY:
		fmt.Println("- Simple ROM-only cartridge")
		fmt.Println("- No memory banking")
		fmt.Println("- No save data support")
	case cartridge.MBC1, cartridge.MBC1_RAM, cartridge.MBC1_RAM_BATTERY:
		fmt.Println("- MBC1 Memory Bank Controller")
		fmt.Println("- ROM banking support (up to 2MB)")
		if info.RAMSize > 0 {
			fmt.Println("- External RAM support")
			if info.CartridgeType == cartridge.MBC1_RAM_BATTERY {
				fmt.Println("- Battery-backed save data")
			}
		}
	default:
		fmt.Printf("- Cartridge type 0x%02X\n", uint8(info.CartridgeType))
		fmt.Println("- May not be fully supported")
	}
}

// validateROM validates a ROM file and shows the results
func validateROM(romFile string) {
	fmt.Printf("Validating ROM file: %s\n", romFile)
	fmt.Println()

	valid, err := cartridge.ValidateROMFile(romFile)
	
	if err != nil {
		fmt.Printf("❌ Validation failed: %v\n", err)
		return
	}

	if valid {
		fmt.Println("✅ ROM file is valid!")
		
		// Show additional info if valid
		info, err := cartridge.GetROMInfo(romFile)
		if err == nil {
			fmt.Printf("Title: %s\n", info.Title)
			fmt.Printf("Type: %s\n", info.TypeName)
			fmt.Printf("Size: %d KB\n", info.ROMSize/1024)
		}
	} else {
		fmt.Println("❌ ROM file is invalid")
	}
}

// scanDirectory scans a directory for ROM files
func scanDirectory(dirPath string) {
	fmt.Printf("Scanning directory: %s\n", dirPath)
	fmt.Println()

	// Scan for ROM files
	romFiles, err := cartridge.ScanROMDirectory(dirPath, true) // Recursive scan
	if err != nil {
		fmt.Printf("Error scanning directory: %v\n", err)
		return
	}

	if len(romFiles) == 0 {
		fmt.Println("No ROM files found.")
		return
	}

	fmt.Printf("Found %d ROM file(s):\n", len(romFiles))
	fmt.Println()

	// Display ROM files
	for i, rom := range romFiles {
		fmt.Printf("%d. %s\n", i+1, rom.String())
	}

	// Summary statistics
	fmt.Println()
	fmt.Println("=== Summary ===")
	
	typeCount := make(map[cartridge.CartridgeType]int)
	totalSize := int64(0)
	
	for _, rom := range romFiles {
		typeCount[rom.CartridgeType]++
		totalSize += rom.FileSize
	}
	
	fmt.Printf("Total ROMs: %d\n", len(romFiles))
	fmt.Printf("Total Size: %.2f MB\n", float64(totalSize)/(1024*1024))
	fmt.Println("Types:")
	
	for cartType, count := range typeCount {
		typeName := (&cartridge.Cartridge{CartridgeType: cartType}).GetCartridgeTypeName()
		fmt.Printf("  %s: %d\n", typeName, count)
	}
}