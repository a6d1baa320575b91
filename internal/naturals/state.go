package naturals

// State is a step of a single program run.
type State int

const (
	// StateAwaitInput prompts for and reads the integer.
	StateAwaitInput State = iota
	// StateClassify reports the parity of the integer.
	StateClassify
	// StatePrintSequence prints 1..n, or a notice when n is not positive.
	StatePrintSequence
	// StateDone is the terminal state of a successful run.
	StateDone
	// StateFailedInput is the terminal state reached when the input is not an integer.
	StateFailedInput
)

// Exit statuses of the program.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitInput:
		return "AwaitInput"
	case StateClassify:
		return "Classify"
	case StatePrintSequence:
		return "PrintSequence"
	case StateDone:
		return "Done"
	case StateFailedInput:
		return "FailedInput"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transition leaves s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailedInput
}

// ExitCode maps the outcome of Program.Run to a process exit status.
func ExitCode(err error) int {
	if err != nil {
		return ExitFailure
	}

	return ExitSuccess
}
