package shutdown

// Channel is the minimal shape of a registered network channel: graceful
// FIN, an await for half-close completion, and a forced close.
type Channel interface {
	CloseGraceful(reason string)
	AwaitClosed() <-chan error
	ForceClose()
}

// TargetCallbacks is the general shutdown-target shape from spec.md
// §4.5, for targets that are not themselves a Channel (services, custom
// callbacks).
type TargetCallbacks struct {
	TriggerGraceful func(reason string)
	AwaitClosed     func() <-chan error
	ForceClose      func()
}

type registeredTarget struct {
	label string
	cb    TargetCallbacks
}

// channelAdapter adapts a Channel into TargetCallbacks.
func channelAdapter(ch Channel) TargetCallbacks {
	return TargetCallbacks{
		TriggerGraceful: func(reason string) { ch.CloseGraceful(reason) },
		AwaitClosed:     ch.AwaitClosed,
		ForceClose:      ch.ForceClose,
	}
}
