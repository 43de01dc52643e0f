package docker_mdns

type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionIgnored Action = "ignored"
)

// ClassifyAction maps a raw container event action to an Action. Unknown or
// missing actions are always ActionIgnored so that new event kinds introduced
// by the engine never break the event loop.
func ClassifyAction(raw string) Action {
	switch raw {
	case "start":
		return ActionStart
	case "die":
		return ActionStop
	default:
		return ActionIgnored
	}
}
