package recognizer

import (
	"strings"

	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/grammar"
)

// EventKind classifies observer events.
type EventKind int8

// Events at goal boundaries
const (
	GoalAdded    EventKind = iota // goal entered into the memo, about to be explored
	GoalCached                    // goal answered from the memo
	GoalResolved                  // goal explored
)

func (k EventKind) String() string {
	switch k {
	case GoalAdded:
		return "add"
	case GoalCached:
		return "cached"
	}
	return "resolved"
}

// Event is handed to observers. Result is meaningless for GoalAdded.
type Event struct {
	Kind   EventKind
	Symbol grammar.Symbol
	Span   unger.Span
	Text   string
	Result bool
	Depth  int
}

// Observer is a hook for watching a run of the recognizer. Observers are
// called synchronously and should return quickly.
type Observer func(Event)

// TraceObserver returns an observer which traces every event to the recognizer's
// tracer on debug level, indented by recursion depth.
func TraceObserver() Observer {
	return func(ev Event) {
		indent := strings.Repeat(". ", ev.Depth/2)
		switch ev.Kind {
		case GoalAdded:
			tracer().Debugf("%s%s ⇒* %q ?", indent, ev.Symbol, ev.Text)
		default:
			tracer().Debugf("%s%s ⇒* %q %s: %v", indent, ev.Symbol, ev.Text, ev.Kind, ev.Result)
		}
	}
}
