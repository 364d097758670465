// Command agi opens a game directory and runs it in an SDL2 window.
package main

//go:generate go run ../embed -root . -o assets_gen.go -exclude "" data/**

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"time"

	"github.com/flga/agi/agi"
	"github.com/flga/agi/cmd/internal/errors"
	"github.com/flga/agi/cmd/internal/meter"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL2's event loop and renderer must run on the thread that created
	// the window, matching the teacher's vnes engine.
	runtime.LockOSThread()
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var zoom int
	var trace bool
	var about bool

	cmd := &cobra.Command{
		Use:   "agi <game-dir>",
		Short: "Run an AGI-format game directory in an SDL2 window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if about {
				return printAbout(cmd.OutOrStdout())
			}
			if len(args) != 1 {
				return fmt.Errorf("agi: a game directory is required (pass --about to skip it)")
			}
			return run(args[0], zoom, trace)
		},
	}

	cmd.Flags().IntVar(&zoom, "zoom", 3, "integer window scale factor")
	cmd.Flags().BoolVar(&trace, "trace", false, "print a per-opcode execution trace to stderr")
	cmd.Flags().BoolVar(&about, "about", false, "print the embedded about text and exit")

	return cmd
}

func printAbout(w io.Writer) error {
	f, err := assets.Open("data/about.txt")
	if err != nil {
		return fmt.Errorf("agi: about: %w", err)
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return fmt.Errorf("agi: about: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func run(gameDir string, zoom int, trace bool) error {
	var traceFn func(room int, opcode byte, args []byte)
	if trace {
		traceFn = func(room int, opcode byte, args []byte) {
			fmt.Fprintf(os.Stderr, "room=%-3d op=%#02x args=% x\n", room, opcode, args)
		}
	}

	interp, err := agi.NewInterpreter(gameDir, traceFn)
	if err != nil {
		return fmt.Errorf("agi: unable to open %s: %w", gameDir, err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("agi: unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	const baseW, baseH = 320, 200
	window, err := sdl.CreateWindow(
		"agi",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(baseW*zoom), int32(baseH*zoom),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("agi: unable to create window: %s", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("agi: unable to create renderer: %s", err)
	}

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING,
		int32(baseW*zoom), int32(baseH*zoom),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return fmt.Errorf("agi: unable to create texture: %s", err)
	}
	defer func() {
		if cleanupErr := errors.NewList(texture.Destroy(), renderer.Destroy(), window.Destroy()); cleanupErr != nil {
			fmt.Fprintln(os.Stderr, cleanupErr)
		}
	}()

	fpsMeter := meter.New(30)
	showPriority := false

	for {
		frameStart := time.Now()

		quit, toggled := pollEvents(interp)
		if quit {
			return nil
		}
		if toggled {
			showPriority = !showPriority
		}

		if _, err := interp.StartCycle(); err != nil {
			return fmt.Errorf("agi: cycle: %w", err)
		}

		if err := present(interp, texture, zoom, showPriority); err != nil {
			return err
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		fpsMeter.Record(time.Since(frameStart))
		window.SetTitle(fmt.Sprintf("agi - room %d - %d fps", interp.Room(), fpsMeter.Tps()))

		delay := time.Duration(interp.CycleDelay()) * time.Millisecond
		if elapsed := time.Since(frameStart); elapsed < delay {
			time.Sleep(delay - elapsed)
		}
	}
}

// pollEvents drains pending SDL events, forwarding movement keys to the
// interpreter's key queue. toggled reports whether F9 (priority-plane
// debug view) was pressed this poll.
func pollEvents(interp *agi.Interpreter) (quit, toggled bool) {
	for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
		switch e := evt.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				quit = true
				continue
			case sdl.K_F9:
				toggled = true
				continue
			}
			if code, ok := agiScancode(e.Keysym.Sym); ok {
				interp.OnKeyPress(code)
			}
		}
	}
	return quit, toggled
}

// agiScancode maps a held movement key to the DOS-style numpad scancode
// convention agi.Interpreter.OnKeyPress expects (see agi/interpreter.go's
// directionScancodes).
func agiScancode(sym sdl.Keycode) (byte, bool) {
	switch sym {
	case sdl.K_KP_7:
		return 71, true
	case sdl.K_UP, sdl.K_KP_8:
		return 72, true
	case sdl.K_KP_9:
		return 73, true
	case sdl.K_LEFT, sdl.K_KP_4:
		return 75, true
	case sdl.K_KP_5:
		return 76, true
	case sdl.K_RIGHT, sdl.K_KP_6:
		return 77, true
	case sdl.K_KP_1:
		return 79, true
	case sdl.K_DOWN, sdl.K_KP_2:
		return 80, true
	case sdl.K_KP_3:
		return 81, true
	}
	return 0, false
}

func present(interp *agi.Interpreter, texture *sdl.Texture, zoom int, showPriority bool) error {
	img := paletteImage(interp.Framebuffer())
	if showPriority {
		img = priorityImage(interp.Framebuffer())
	}
	scaled := scaleUp(img, zoom)

	if err := texture.Update(nil, scaled.Pix, scaled.Stride); err != nil {
		return fmt.Errorf("agi: unable to update texture: %s", err)
	}
	return nil
}
