package wizard

import "maps"

// DefaultProjectName is used when no project name is given or the prompt is left empty.
const DefaultProjectName = "up-web-vue"

// Answer names recorded in State.Answers.
const (
	AnswerProjectName     = "projectName"
	AnswerShouldOverwrite = "shouldOverwrite"
)

// State is the accumulator threaded through every stage of a single run.
type State struct {
	// ProjectArg is the positional project name, empty when none was given.
	ProjectArg string
	// TargetDir is the directory the project will be written to.
	TargetDir string
	// DefaultName replaces an empty project name.
	DefaultName string
	// Force pre-authorizes overwriting the target directory.
	Force bool
	// Flags carries the parsed command-line flags through to the Decision.
	Flags map[string]bool
	// Answers holds the value of every stage that was presented.
	Answers map[string]any
}

// NewState creates the state for one run. An empty defaultName falls back to DefaultProjectName.
func NewState(projectArg string, force bool, defaultName string, flags map[string]bool) *State {
	if defaultName == "" {
		defaultName = DefaultProjectName
	}
	targetDir := projectArg
	if targetDir == "" {
		targetDir = defaultName
	}
	return &State{
		ProjectArg:  projectArg,
		TargetDir:   targetDir,
		DefaultName: defaultName,
		Force:       force,
		Flags:       maps.Clone(flags),
		Answers:     make(map[string]any),
	}
}

// Decision is what the scaffolding step needs to materialize the project.
type Decision struct {
	ProjectName     string
	ShouldOverwrite bool
	// OverwriteSkipped is set when --force authorized the overwrite and no confirmation was asked.
	OverwriteSkipped bool
	Flags            map[string]bool
}

func (s *State) decision() Decision {
	d := Decision{
		ProjectName: s.TargetDir,
		Flags:       maps.Clone(s.Flags),
	}
	if answer, ok := s.Answers[AnswerShouldOverwrite].(bool); ok {
		d.ShouldOverwrite = answer
	} else if s.Force {
		d.ShouldOverwrite = true
		d.OverwriteSkipped = true
	}
	return d
}

// Status is the terminal state of a run.
type Status int

const (
	Completed Status = iota
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CancelReason tells why a run was cancelled.
type CancelReason int

const (
	ReasonNone CancelReason = iota
	// ReasonDeclined means the user refused to overwrite the target directory.
	ReasonDeclined
	// ReasonInterrupted means the user aborted the interactive session.
	ReasonInterrupted
)

func (r CancelReason) String() string {
	switch r {
	case ReasonDeclined:
		return "declined"
	case ReasonInterrupted:
		return "interrupted"
	default:
		return "none"
	}
}

// Outcome is the result of Sequencer.Run. Decision is only meaningful when Status is Completed.
type Outcome struct {
	Status   Status
	Reason   CancelReason
	Decision Decision
}

func completed(d Decision) Outcome {
	return Outcome{Status: Completed, Decision: d}
}

func cancelled(reason CancelReason) Outcome {
	return Outcome{Status: Cancelled, Reason: reason}
}
