package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/up-web-vue/create-up-web-vue/pkg/logger"
)

var sequencerLog = logger.New("wizard:sequencer")

// Sequencer presents stages one after another through a Prompter.
type Sequencer struct {
	prompter Prompter
	stages   []Stage
}

// NewSequencer creates a sequencer. Without stages it uses DefaultStages.
func NewSequencer(p Prompter, stages ...Stage) *Sequencer {
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	return &Sequencer{prompter: p, stages: stages}
}

// Run walks every stage in order. Declines and interruptions are reported through
// the returned Outcome; a non-nil error means the prompter itself failed.
func (q *Sequencer) Run(ctx context.Context, state *State) (Outcome, error) {
	sequencerLog.Printf("Starting sequence: stages=%d, projectArg=%q, force=%v", len(q.stages), state.ProjectArg, state.Force)

	for _, stage := range q.stages {
		if ctx.Err() != nil {
			sequencerLog.Printf("Context done before stage %s: %v", stage.Name, ctx.Err())
			return cancelled(ReasonInterrupted), nil
		}

		if !stage.active(state) {
			sequencerLog.Printf("Skipping stage %s", stage.Name)
			continue
		}

		switch stage.Kind {
		case KindGate:
			if stage.Check == nil {
				continue
			}
			if reason := stage.Check(state); reason != ReasonNone {
				sequencerLog.Printf("Stage %s cancelled the sequence: %s", stage.Name, reason)
				return cancelled(reason), nil
			}

		case KindText:
			value, err := q.prompter.Text(ctx, TextRequest{
				Title:   stage.message(state),
				Initial: stage.initial(state),
				OnChange: func(v string) {
					stage.observe(state, v)
				},
			})
			if err != nil {
				return q.fail(stage, err)
			}
			state.Answers[stage.Name] = value
			stage.observe(state, value)
			sequencerLog.Printf("Stage %s answered: %q (target directory %q)", stage.Name, value, state.TargetDir)

		case KindConfirm:
			answer, err := q.prompter.Confirm(ctx, ConfirmRequest{Title: stage.message(state)})
			if err != nil {
				return q.fail(stage, err)
			}
			state.Answers[stage.Name] = answer
			sequencerLog.Printf("Stage %s answered: %v", stage.Name, answer)

		default:
			return Outcome{}, fmt.Errorf("stage %s has unsupported kind %s", stage.Name, stage.Kind)
		}
	}

	decision := state.decision()
	sequencerLog.Printf("Sequence completed: %+v", decision)
	return completed(decision), nil
}

func (q *Sequencer) fail(stage Stage, err error) (Outcome, error) {
	if errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled) {
		sequencerLog.Printf("Stage %s interrupted: %v", stage.Name, err)
		return cancelled(ReasonInterrupted), nil
	}
	return Outcome{}, fmt.Errorf("failed to run %s prompt: %w", stage.Name, err)
}
