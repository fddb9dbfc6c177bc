package main

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/phanxgames/wag"
)

const Version = "v0.1.0"

var (
	sheetBreed      string
	sheetOut        string
	sheetSize       int
	sheetFrames     int
	sheetStates     string
	sheetBreedsFile string

	ttyBreed string
	ttyFPS   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wag",
		Short: "Wag - a procedural companion dog",
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return
			}
			cmd.Help()
		},
	}
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	sheetCmd.Flags().StringVar(&sheetBreed, "breed", string(wag.BreedShiba), "Breed to render")
	sheetCmd.Flags().StringVar(&sheetOut, "out", "wag_sheet.png", "Output PNG path")
	sheetCmd.Flags().IntVar(&sheetSize, "size", 256, "Cell size in pixels")
	sheetCmd.Flags().IntVar(&sheetFrames, "frames", 8, "Frames per state")
	sheetCmd.Flags().StringVar(&sheetStates, "states", "", "Comma-separated state names (default all)")
	sheetCmd.Flags().StringVar(&sheetBreedsFile, "breeds-file", "", "TOML file with extra breed definitions")

	ttyCmd.Flags().StringVar(&ttyBreed, "breed", string(wag.BreedShiba), "Breed to preview")
	ttyCmd.Flags().IntVar(&ttyFPS, "fps", 30, "Animation rate")

	rootCmd.AddCommand(breedsCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(ttyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var breedsCmd = &cobra.Command{
	Use:   "breeds",
	Short: "List the registered breeds",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-20s %7s %7s  %s\n", "BREED", "HEIGHT", "SPEED", "TRAITS")
		for _, b := range wag.Breeds() {
			skel := wag.MustSkeleton(b)
			fmt.Printf("%-20s %7.2f %7.2f  %s\n",
				b, skel.HeightScale, skel.SpeedScale, strings.Join(traits(skel), " "))
		}
	},
}

func traits(s wag.Skeleton) []string {
	var ts []string
	if s.FloppyEars {
		ts = append(ts, "floppy-ears")
	}
	if s.CurlTail {
		ts = append(ts, "curl-tail")
	}
	if s.FlatFace {
		ts = append(ts, "flat-face")
	}
	if s.Spotted {
		ts = append(ts, "spotted")
	}
	if s.Fuzzy {
		ts = append(ts, "fuzzy")
	}
	return ts
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render a sprite sheet of animation states to a PNG",
	Long: `Sheet renders one row per animation state and one column per frame,
spread evenly over a single seamless loop of each state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sheetBreedsFile != "" {
			if _, err := wag.LoadSkeletonFile(sheetBreedsFile); err != nil {
				return err
			}
		}
		skel, err := wag.SkeletonFor(wag.Breed(sheetBreed))
		if err != nil {
			return err
		}
		states, err := parseStates(sheetStates)
		if err != nil {
			return err
		}
		if sheetFrames < 1 {
			return fmt.Errorf("frames must be at least 1, got %d", sheetFrames)
		}
		if sheetSize < 16 {
			return fmt.Errorf("size must be at least 16, got %d", sheetSize)
		}

		size := float64(sheetSize)
		dc := gg.NewContext(sheetSize*sheetFrames, sheetSize*len(states))
		c := wag.NewGGCanvas(dc)

		for row, s := range states {
			ctrl := wag.NewController(skel)
			ctrl.SetState(s)

			// One full cycle before capturing so the transition
			// blend settles and the loop starts at phase zero.
			cycle := wag.CycleDuration(s)
			advance(ctrl, cycle)

			for col := 0; col < sheetFrames; col++ {
				dc.Push()
				dc.Translate(float64(col)*size, float64(row)*size)
				wag.Paint(c, skel, ctrl.Pose(), ctrl.Expression(), size, size)
				dc.Pop()
				advance(ctrl, cycle/float64(sheetFrames))
			}
			ctrl.Dispose()
		}

		if err := dc.SavePNG(sheetOut); err != nil {
			return fmt.Errorf("failed to write %s: %w", sheetOut, err)
		}
		fmt.Printf("Wrote %s: %d states x %d frames of %s\n",
			sheetOut, len(states), sheetFrames, sheetBreed)
		return nil
	},
}

// advance ticks the controller in small steps so the blend and gait math see
// ordinary frame deltas instead of one huge one.
func advance(ctrl *wag.Controller, seconds float64) {
	const step = 1.0 / 60
	for seconds > 1e-9 {
		d := step
		if seconds < d {
			d = seconds
		}
		ctrl.Tick(d)
		seconds -= d
	}
}

func parseStates(csv string) ([]wag.State, error) {
	if csv == "" {
		return []wag.State{
			wag.StateIdle, wag.StateWalking, wag.StateSitting, wag.StateTailWag,
			wag.StateHeadTilt, wag.StatePetting, wag.StateZoomies, wag.StateSleeping,
		}, nil
	}
	var states []wag.State
	for _, name := range strings.Split(csv, ",") {
		s, err := wag.ParseState(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}

var ttyCmd = &cobra.Command{
	Use:   "tty",
	Short: "Preview a dog right in the terminal",
	Long: `Tty animates a dog using half-block characters, two pixels per cell.

Keys: q or esc quits, s cycles the state, b cycles the breed, t taps the
dog, p toggles petting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skel, err := wag.SkeletonFor(wag.Breed(ttyBreed))
		if err != nil {
			return err
		}
		if ttyFPS < 1 || ttyFPS > 120 {
			return fmt.Errorf("fps must be between 1 and 120, got %d", ttyFPS)
		}
		return runTTY(wag.Breed(ttyBreed), skel, ttyFPS)
	},
}

type ttyPreview struct {
	screen tcell.Screen

	breeds   []wag.Breed
	breedIdx int
	skel     wag.Skeleton

	ctrl  *wag.Controller
	inter *wag.Interactions

	states   []wag.State
	stateIdx int
	petting  bool

	gc         *gg.Context
	cols, rows int
}

func runTTY(breed wag.Breed, skel wag.Skeleton, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	p := &ttyPreview{
		screen: screen,
		breeds: wag.Breeds(),
		skel:   skel,
		ctrl:   wag.NewController(skel),
		states: []wag.State{
			wag.StateIdle, wag.StateWalking, wag.StateSitting, wag.StateTailWag,
			wag.StateHeadTilt, wag.StateZoomies, wag.StateSleeping,
		},
	}
	p.inter = wag.NewInteractions(p.ctrl)
	for i, b := range p.breeds {
		if b == breed {
			p.breedIdx = i
		}
	}
	defer func() { p.ctrl.Dispose() }()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	dt := 1.0 / float64(fps)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !p.handleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			p.ctrl.Tick(dt)
			p.draw()
		}
	}
}

func (p *ttyPreview) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 's':
		p.stopPetting()
		p.stateIdx = (p.stateIdx + 1) % len(p.states)
		p.ctrl.SetState(p.states[p.stateIdx])
	case 'b':
		p.breedIdx = (p.breedIdx + 1) % len(p.breeds)
		p.skel = wag.MustSkeleton(p.breeds[p.breedIdx])
		p.ctrl.Dispose()
		p.ctrl = wag.NewController(p.skel)
		p.inter = wag.NewInteractions(p.ctrl)
		p.petting = false
	case 't':
		p.inter.OnTap()
	case 'p':
		if p.petting {
			p.inter.OnLongPressEnd()
			p.petting = false
		} else {
			p.inter.OnLongPressStart()
			p.petting = true
		}
	}
	return true
}

func (p *ttyPreview) stopPetting() {
	if p.petting {
		p.inter.OnLongPressEnd()
		p.petting = false
	}
}

func (p *ttyPreview) draw() {
	cols, rows := p.screen.Size()
	if cols < 2 || rows < 2 {
		return
	}
	view := rows - 1 // bottom row is the status line
	if p.gc == nil || cols != p.cols || view*2 != p.rows {
		p.cols = cols
		p.rows = view * 2
		p.gc = gg.NewContext(cols, view*2)
	}

	p.gc.ClearWithColor(gg.RGBA{R: 0.09, G: 0.09, B: 0.11, A: 1})
	wag.Paint(wag.NewGGCanvas(p.gc), p.skel, p.ctrl.Pose(), p.ctrl.Expression(),
		float64(p.cols), float64(p.rows))
	img := p.gc.Image()

	// Each text cell carries two pixels: '▀' takes its foreground from the
	// upper pixel and its background from the lower one.
	for y := 0; y < view; y++ {
		for x := 0; x < cols; x++ {
			st := tcell.StyleDefault.
				Foreground(pixelColor(img, x, y*2)).
				Background(pixelColor(img, x, y*2+1))
			p.screen.SetContent(x, y, '▀', nil, st)
		}
	}

	status := fmt.Sprintf(" %s | %s | q quit  s state  b breed  t tap  p pet",
		p.breeds[p.breedIdx], p.ctrl.State())
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		p.screen.SetContent(x, view, r, nil, style)
	}
	p.screen.Show()
}

func pixelColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
