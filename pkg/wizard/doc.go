// Package wizard runs the ordered question sequence of the create command.
//
// A Sequencer walks a list of stages. Each stage decides from the current State
// whether it applies, computes its message just before it is shown, and records
// its answer back into the State. Stages run strictly in order and the State is
// only ever touched by the goroutine calling Run.
//
// Cancellation is a result, not an error: Run returns an Outcome whose Status is
// Cancelled when the user declines to overwrite or aborts the session. Errors are
// reserved for failures of the interactive channel itself.
package wizard
