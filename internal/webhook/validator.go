package webhook

// Validator decides whether an inbound event qualifies for extraction and,
// if so, yields the conversation text to analyze.
type Validator struct {
	targetJID string
}

// NewValidator creates a validator bound to a single target group JID.
func NewValidator(targetJID string) *Validator {
	return &Validator{targetJID: targetJID}
}

// Validate applies the qualification checks in order:
//
//  1. data.key.remoteJid must equal the configured target group
//  2. data.key.participantLid must be present (group message marker)
//  3. data.message.conversation must be present
//
// Any missing structure fails the corresponding check. The second return
// value reports whether the event qualified; the first is the conversation
// text when it did.
func (v *Validator) Validate(evt *Event) (string, bool) {
	if evt == nil || evt.Data == nil {
		return "", false
	}
	key := evt.Data.Key
	if key == nil || key.RemoteJid != v.targetJID {
		return "", false
	}
	if !key.HasParticipant() {
		return "", false
	}
	msg := evt.Data.Message
	if msg == nil || msg.Conversation == nil {
		return "", false
	}
	return *msg.Conversation, true
}
