package webhook

import (
	"bytes"
	"encoding/json"
)

// Event is the inbound WhatsApp webhook payload. Every nested level is
// optional and loosely shaped: upstream senders routinely omit keys or
// drift on value types, so each branch decodes independently and a
// malformed branch reads as absent instead of failing the request.
type Event struct {
	Data *EventData
}

// UnmarshalJSON decodes the payload tolerantly. It returns an error only
// when the body is not a JSON object at all; a wrong-typed data branch
// leaves Data nil.
func (e *Event) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var data EventData
	if tolerantUnmarshal(raw.Data, &data) {
		e.Data = &data
	}
	return nil
}

// EventData carries the message envelope of an Event. The key and message
// branches decode independently so a malformed one cannot mask the other.
type EventData struct {
	Key     *EventKey
	Message *EventMessage
}

func (d *EventData) UnmarshalJSON(b []byte) error {
	var raw struct {
		Key     json.RawMessage `json:"key"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var key EventKey
	if tolerantUnmarshal(raw.Key, &key) {
		d.Key = &key
	}
	var msg EventMessage
	if tolerantUnmarshal(raw.Message, &msg) {
		d.Message = &msg
	}
	return nil
}

// EventKey identifies the message origin.
type EventKey struct {
	RemoteJid string `json:"remoteJid"`

	// ParticipantLid is kept raw: its presence (with any non-null value)
	// marks a group message, but its shape is vendor-defined and we never
	// interpret the contents.
	ParticipantLid json.RawMessage `json:"participantLid"`
}

// EventMessage carries the message content variants. Only plain
// conversation text is processed.
type EventMessage struct {
	Conversation *string `json:"conversation"`
}

// HasParticipant reports whether the group-participant marker is present
// with a non-null value.
func (k *EventKey) HasParticipant() bool {
	if k == nil || len(k.ParticipantLid) == 0 {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(k.ParticipantLid), []byte("null"))
}

// tolerantUnmarshal decodes raw into v, reporting success. An absent key
// or a value of the wrong shape both read as absence, which downstream
// checks treat as NotQualifying.
func tolerantUnmarshal(raw json.RawMessage, v any) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
