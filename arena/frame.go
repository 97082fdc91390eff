package arena

// Frame is everything a state sees during one update.
type Frame struct {
	Number   int64
	World    *World
	Input    Input
	Commands *Commands
}
