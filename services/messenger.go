package services

// ChannelStatus is a point-in-time snapshot of the messaging channel.
// The channel can drop at any moment outside any caller's control, so
// callers must re-check rather than cache it.
type ChannelStatus struct {
	Connected   bool   `json:"connected"`
	Ready       bool   `json:"ready"`
	PairingCode string `json:"-"`
}

func (s ChannelStatus) HasPairingCode() bool {
	return s.PairingCode != ""
}

// Messenger is the outbound phone-number-addressed messaging channel.
// Send returns the provider message id when one is available. Lifecycle
// transitions are delivered through OnStatusChange subscriptions.
type Messenger interface {
	Status() ChannelStatus
	Send(to, body string) (string, error)
	OnStatusChange(fn func(ChannelStatus))
}
