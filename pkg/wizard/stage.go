package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/up-web-vue/create-up-web-vue/pkg/stringutil"
)

// ErrInterrupted must be wrapped by a Prompter when the user aborts the session.
var ErrInterrupted = errors.New("interactive session interrupted")

// TextRequest describes a free-text question.
type TextRequest struct {
	Title string
	// Initial prefills the editable answer; submitting it unchanged returns it.
	Initial string
	// OnChange, if set, receives the input when the prompter validates it.
	// Terminal prompters do that on submit, not per keystroke.
	OnChange func(value string)
}

// ConfirmRequest describes a yes/no question.
type ConfirmRequest struct {
	Title   string
	Default bool
}

// Prompter asks the user questions.
type Prompter interface {
	Text(ctx context.Context, req TextRequest) (string, error)
	Confirm(ctx context.Context, req ConfirmRequest) (bool, error)
}

// Kind selects how a stage is presented.
type Kind int

const (
	// KindText asks for free text.
	KindText Kind = iota
	// KindConfirm asks a yes/no question.
	KindConfirm
	// KindGate is never shown; it inspects earlier answers and may cancel the run.
	KindGate
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindConfirm:
		return "confirm"
	case KindGate:
		return "gate"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stage is one step of the sequence.
type Stage struct {
	Name string
	Kind Kind
	// Active reports whether the stage runs. A nil Active always runs.
	// Skipped stages record no answer.
	Active func(s *State) bool
	// Message computes the question right before it is shown. It must not modify s.
	Message func(s *State) string
	// Initial computes the prefilled text answer.
	Initial func(s *State) string
	// OnState observes text values reported through OnChange and the submitted value.
	OnState func(s *State, value string)
	// Check is evaluated by gates; any reason other than ReasonNone cancels the run.
	Check func(s *State) CancelReason
}

func (st Stage) active(s *State) bool {
	return st.Active == nil || st.Active(s)
}

func (st Stage) message(s *State) string {
	if st.Message == nil {
		return st.Name
	}
	return st.Message(s)
}

func (st Stage) initial(s *State) string {
	if st.Initial == nil {
		return ""
	}
	return st.Initial(s)
}

func (st Stage) observe(s *State, value string) {
	if st.OnState != nil {
		st.OnState(s, value)
	}
}

// DefaultStages returns the project name, overwrite confirmation and overwrite check stages.
func DefaultStages() []Stage {
	return []Stage{
		ProjectNameStage(),
		OverwriteStage(),
		OverwriteCheckerStage(),
	}
}

// ProjectNameStage asks for the project name unless one was passed on the command line.
func ProjectNameStage() Stage {
	return Stage{
		Name: AnswerProjectName,
		Kind: KindText,
		Active: func(s *State) bool {
			return s.ProjectArg == ""
		},
		Message: func(*State) string {
			return "Please input project name"
		},
		Initial: func(s *State) string {
			return s.DefaultName
		},
		OnState: func(s *State, value string) {
			s.TargetDir = stringutil.TrimOrDefault(value, s.DefaultName)
		},
	}
}

// OverwriteStage asks whether existing files may be removed unless --force was given.
func OverwriteStage() Stage {
	return Stage{
		Name: AnswerShouldOverwrite,
		Kind: KindConfirm,
		Active: func(s *State) bool {
			return !s.Force
		},
		Message: func(s *State) string {
			return OverwriteMessage(s.TargetDir)
		},
	}
}

// OverwriteCheckerStage cancels the run when the overwrite confirmation was declined.
func OverwriteCheckerStage() Stage {
	return Stage{
		Name: "overwriteChecker",
		Kind: KindGate,
		Check: func(s *State) CancelReason {
			if answer, ok := s.Answers[AnswerShouldOverwrite].(bool); ok && !answer {
				return ReasonDeclined
			}
			return ReasonNone
		},
	}
}

// OverwriteMessage is the confirmation question for targetDir.
func OverwriteMessage(targetDir string) string {
	dir := `Target directory "` + targetDir + `"`
	if targetDir == "." {
		dir = "Current directory"
	}
	return dir + " is not empty. Remove existing files and continue?"
}
