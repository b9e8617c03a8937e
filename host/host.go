// Package host declares the capability interfaces the game core consumes
// from its hosting environment: text output, user prompts, sound cues,
// and host control. The cli and tui packages provide implementations.
package host

// Output is the sink for all user-visible game text. The core never
// buffers or formats beyond simple concatenation.
type Output interface {
	Print(msg string)
	Println(msg string)
	Clear()
}

// Prompter asks the user a question mid-command. Calls block until the
// user answers; the core is strictly one-command-at-a-time, so blocking
// here is safe.
type Prompter interface {
	Confirm(title, question string) bool
	Ask(title, question string) string
}

// Audio triggers named sound effects and loops. Fire-and-forget:
// failures are never reported back to the core.
type Audio interface {
	PlayEffect(name string)
	StartLoop(name string)
	StopLoop(name string)
}

// Control lets the core signal its host.
type Control interface {
	Exit()
}

// NopAudio discards all cues. Hosts without a sound device use this.
type NopAudio struct{}

func (NopAudio) PlayEffect(string) {}
func (NopAudio) StartLoop(string)  {}
func (NopAudio) StopLoop(string)   {}
