package game

import "fmt"

// State is the phase of the game for a viewed board.
type State int

const (
	InProgress State = iota
	Won
	Draw
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// Status is what the presentation layer needs to announce a board.
type Status struct {
	State  State
	Winner Mark // set when State == Won
	Line   Line // winning cells when State == Won
	Next   Mark // mark to play when State == InProgress
}

// StatusOf derives the status of b, with next as the mark due to play.
func StatusOf(b Board, next Mark) Status {
	if line, ok := Detect(b); ok {
		return Status{State: Won, Winner: b[line[0]], Line: line}
	}
	if b.Full() {
		return Status{State: Draw}
	}
	return Status{State: InProgress, Next: next}
}

// Over returns true for the terminal states.
func (s Status) Over() bool {
	return s.State != InProgress
}

func (s Status) String() string {
	switch s.State {
	case Won:
		return fmt.Sprintf("Winner: %s", s.Winner)
	case Draw:
		return "Draw"
	}
	return fmt.Sprintf("Next player: %s", s.Next)
}
