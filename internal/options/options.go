// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input    string // ROM file or archive to run
	Platform string // platform profile, auto-detected from the file extension if empty
}

// Flags contains behavior options.
type Flags struct {
	Frontend string // frontend to present the machine with: window, terminal, headless
	Speed    int    // instructions executed per second
	Frames   int    // stop after this many 60 Hz frames, 0 runs until quit
	Scale    int    // window pixel scale
	Debug    bool
	Quiet    bool
	Mute     bool
}

// QuirkOverrides contains per quirk settings that replace the value of the
// platform profile. Empty strings keep the profile value.
type QuirkOverrides struct {
	LoadOffset         string
	Shift              string
	StoreLoadIncrement string
	Draw               string
	AddIOverflow       string
	Jump               string
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Overrides QuirkOverrides
}

// Default frontend and timing values.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"

	DefaultSpeed = 700
	DefaultScale = 10
)

// NewProgram returns program options with default values.
func NewProgram() Program {
	return Program{
		Flags: Flags{
			Frontend: FrontendWindow,
			Speed:    DefaultSpeed,
			Scale:    DefaultScale,
		},
	}
}
