// services/twilio_whatsapp.go
package services

import (
	"errors"
	"log"
	"os"
	"sync"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrChannelNotReady = errors.New("whatsapp channel is not ready")

// TwilioWhatsApp sends WhatsApp messages through the Twilio API. Until
// Start has verified the configuration the channel reports not-ready
// and every send is refused. In sandbox mode recipients must first pair
// by sending the join code to the sandbox number; that code is surfaced
// through ChannelStatus.PairingCode.
type TwilioWhatsApp struct {
	mu          sync.RWMutex
	client      *twilio.RestClient
	from        string
	pairingCode string
	connected   bool
	ready       bool
	subs        []func(ChannelStatus)
}

func NewTwilioWhatsApp() *TwilioWhatsApp {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioWhatsApp{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from:        os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		pairingCode: os.Getenv("TWILIO_WHATSAPP_SANDBOX_CODE"),
	}
}

// Start validates the configuration and marks the channel ready.
// Missing credentials are a normal condition: the channel stays
// disconnected and callers see not-ready rather than an error.
func (w *TwilioWhatsApp) Start() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" || os.Getenv("TWILIO_AUTH_TOKEN") == "" || w.from == "" {
		log.Println("[WHATSAPP] Twilio credentials not configured, channel offline")
		w.setState(false, false)
		return
	}

	log.Println("[WHATSAPP] channel ready")
	w.setState(true, true)
}

func (w *TwilioWhatsApp) Status() ChannelStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return ChannelStatus{
		Connected:   w.connected,
		Ready:       w.ready,
		PairingCode: w.pairingCode,
	}
}

// OnStatusChange registers a subscriber for lifecycle transitions. The
// subscriber is also invoked once with the current state.
func (w *TwilioWhatsApp) OnStatusChange(fn func(ChannelStatus)) {
	w.mu.Lock()
	w.subs = append(w.subs, fn)
	w.mu.Unlock()
	fn(w.Status())
}

func (w *TwilioWhatsApp) Send(to, body string) (string, error) {
	if st := w.Status(); !st.Connected || !st.Ready {
		return "", ErrChannelNotReady
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + w.from)
	params.SetBody(body)

	resp, err := w.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("[WHATSAPP] send to %s failed: %v", to, err)
		return "", err
	}
	if resp.Sid != nil {
		return *resp.Sid, nil
	}
	return "", nil
}

func (w *TwilioWhatsApp) setState(connected, ready bool) {
	w.mu.Lock()
	w.connected = connected
	w.ready = ready
	subs := make([]func(ChannelStatus), len(w.subs))
	copy(subs, w.subs)
	w.mu.Unlock()

	st := w.Status()
	for _, fn := range subs {
		fn(st)
	}
}

// MarkDisconnected flags the channel offline, for operational use when
// the provider reports auth failures.
func (w *TwilioWhatsApp) MarkDisconnected() {
	log.Println("[WHATSAPP] channel disconnected")
	w.setState(false, false)
}
