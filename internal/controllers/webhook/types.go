package webhook

// Payload types for WhatsApp Business Cloud API webhook events.
// Only the fields this service reads are modeled; everything else in the
// event envelope is ignored.

// EventPayload is the top-level webhook event envelope.
type EventPayload struct {
	// Object identifies the subscribed object type, "whatsapp_business_account".
	Object string `json:"object"`
	// Entry holds one element per business account the event concerns.
	Entry []Entry `json:"entry"`
}

// Entry is one business-account entry of the event.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change is one changed field within an entry.
type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

// Value carries the actual message and channel metadata.
type Value struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Messages         []Message `json:"messages"`
}

// Metadata identifies the receiving phone number.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// Message is a single inbound message. Non-text events (statuses, media,
// reactions) arrive with a different Type or a nil Text.
type Message struct {
	From      string `json:"from"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *Text  `json:"text,omitempty"`
}

// Text is the body of a text message.
type Text struct {
	Body string `json:"body"`
}

// InboundMessage is a validated text message extracted from an event.
type InboundMessage struct {
	SenderID string
	Text     string
}

// ExtractInbound pulls the first text message out of the event envelope.
// The second return value is false for anything that is not a processable
// text message: delivery receipts, status updates, media messages, or
// envelopes missing the expected nesting. Those events are acknowledged
// without action, they are not errors.
func ExtractInbound(payload *EventPayload) (InboundMessage, bool) {
	if len(payload.Entry) == 0 || len(payload.Entry[0].Changes) == 0 {
		return InboundMessage{}, false
	}
	messages := payload.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return InboundMessage{}, false
	}

	msg := messages[0]
	if msg.From == "" || msg.Type != "text" || msg.Text == nil || msg.Text.Body == "" {
		return InboundMessage{}, false
	}
	return InboundMessage{SenderID: msg.From, Text: msg.Text.Body}, true
}
