package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/snestic/internal/snes"
)

// P - pause
// R - one step and stop
// S - save state
// L - load state

type UI struct {
	console   *snes.Console
	scale     int
	statePath string
}

func New(console *snes.Console, scale int, statePath string) *UI {
	return &UI{
		console:   console,
		scale:     scale,
		statePath: statePath,
	}
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.console.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.console.OneStepAndStop()
	}

	if ui.statePath != "" {
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			if err := ui.console.SaveStateFile(ui.statePath); err != nil {
				log.Printf("couldn't save the state: %s\n", err)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			if err := ui.console.LoadStateFile(ui.statePath); err != nil {
				log.Printf("couldn't load the state: %s\n", err)
			}
		}
	}

	ui.console.Advance()
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	info := ui.console.DebugInfo()

	// nothing is rendered, so the game area shows the master brightness
	// and the beam position
	gameWidth := float32(gameScreenWidth * ui.scale)
	gameHeight := float32(gameScreenHeight * ui.scale)
	level := uint8(0)
	if !info.ForcedBlank {
		level = info.Brightness * 0x11
	}
	vector.DrawFilledRect(screen, 0, 0, gameWidth, gameHeight, color.RGBA{level, level, level, 255}, false)
	if info.Scanline < gameScreenHeight {
		y := float32(int(info.Scanline) * ui.scale)
		vector.StrokeLine(screen, 0, y, gameWidth, y, float32(ui.scale), color.RGBA{200, 40, 40, 255}, false)
	}

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " ROM: %s (%s)\n", ui.console.Cart().Title(), ui.console.Cart().Mapper())
	if info.Paused {
		infoStr.WriteString(" PAUSED\n")
	}
	fmt.Fprintf(&infoStr, " STATUS: %s", info.CPU.StatusString())
	if info.CPU.Emulation {
		infoStr.WriteString(" EMU")
	}
	infoStr.WriteString("\n")
	fmt.Fprintf(&infoStr, " PC: $%02X:%04X\n", info.CPU.PB, info.CPU.PC)
	fmt.Fprintf(&infoStr, " A: $%04X X: $%04X Y: $%04X\n", info.CPU.A, info.CPU.X, info.CPU.Y)
	fmt.Fprintf(&infoStr, " S: $%04X D: $%04X DB: $%02X\n", info.CPU.S, info.CPU.D, info.CPU.DB)
	fmt.Fprintf(&infoStr, " LINE: %3d DOT: %3d FRAME: %d\n", info.Scanline, info.Dot, info.Frame)
	fmt.Fprintf(&infoStr, " CYCLES: %d\n\n", info.Cycles)

	for i, line := range ui.console.Disassemble(disasmLines) {
		if i == 0 {
			infoStr.WriteString("*" + line + "\n")
			continue
		}
		infoStr.WriteString(" " + line + "\n")
	}

	vector.DrawFilledRect(screen, gameWidth, 0, debugScreenWidth, gameHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(gameWidth), 0)
}

const (
	gameScreenWidth  = 256
	gameScreenHeight = 224

	debugScreenWidth = 300
	disasmLines      = 16
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return gameScreenWidth*ui.scale + debugScreenWidth, gameScreenHeight * ui.scale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(ui.Layout(0, 0))
	ebiten.SetWindowTitle("snestic")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
