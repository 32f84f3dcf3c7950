package paperglobe

// Stage is a checkpoint of a Generate call.
type Stage int

// Stages reported to an Observer.
const (
	StageStart Stage = iota
	StageSuccess
	StageFailure
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageSuccess:
		return "success"
	case StageFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event describes a checkpoint. Output is set on success, Err on failure.
type Event struct {
	Stage  Stage
	Source string
	Output string
	Err    error
}

// Observer receives progress notifications. Notify is called on the
// goroutine running Generate and must not block for long.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Notify calls f(e).
func (f ObserverFunc) Notify(e Event) {
	f(e)
}
