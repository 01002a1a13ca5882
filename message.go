package hubtel

import "fmt"

// Route names for the two Hubtel API path families.
const (
	routeMessages = "messages"
	routeBatches  = "batches"
)

// Sendable is a message that can be submitted through [Client.Send].
// Three implementations exist, one per request shape the gateway
// accepts: [Message], [GroupMessage] and [MessageBatch].
type Sendable interface {
	// Route reports the API path family the message belongs to:
	// "messages" for a single recipient, "batches" otherwise.
	Route() string

	// Bulk reports whether the message targets multiple recipients.
	Bulk() bool

	// Body builds the normalized request body: recipients in E.164,
	// times in canonical format, falsy fields pruned. It fails with
	// one of the Invalid*Error types before any network call.
	Body() (map[string]any, error)
}

// Message is an SMS to a single recipient.
type Message struct {
	// Sender is the sender name or address; 11 characters or less
	// without spaces, or 16 digits.
	Sender string

	// Recipient is the recipient phone number, in international format
	// ("+23350xxxxxxx") or the local format given by the network
	// provider ("050xxxxxxx").
	Recipient string

	// Content is the message content. Binary messages use HEX string
	// notation.
	Content string

	// Time optionally schedules the send. Any format accepted by
	// [ParseTime] is valid.
	Time string

	// RegisteredDelivery requests a delivery report.
	RegisteredDelivery bool

	// FlashMessage sends the message as a flash message.
	FlashMessage bool

	// Reference is a caller-chosen identifier echoed in delivery
	// report notifications.
	Reference string
}

func (m *Message) Route() string { return routeMessages }

func (m *Message) Bulk() bool { return false }

func (m *Message) Body() (map[string]any, error) {
	if m.Recipient == "" {
		return nil, &InvalidMessageError{Reason: "recipient is required"}
	}

	if m.Content == "" {
		return nil, &InvalidMessageError{Reason: "content is required"}
	}

	to, err := ParsePhoneNumber(m.Recipient)
	if err != nil {
		return nil, err
	}

	sendTime, err := ParseTime(m.Time, false)
	if err != nil {
		return nil, err
	}

	return Prune(map[string]any{
		"From":               m.Sender,
		"To":                 to,
		"Content":            m.Content,
		"RegisteredDelivery": m.RegisteredDelivery,
		"Time":               sendTime,
		"FlashMessage":       m.FlashMessage,
		"ClientReference":    m.Reference,
	}), nil
}

// GroupMessage is the same SMS sent to multiple recipients as a named
// campaign.
type GroupMessage struct {
	Sender string

	// Recipients are the recipient phone numbers, in international or
	// local format.
	Recipients []string

	Content string

	// CampaignName names the batch for vendor-side reporting.
	CampaignName string

	// Time optionally schedules the send. Seconds are dropped: the
	// batches route rejects them.
	Time string
}

func (m *GroupMessage) Route() string { return routeBatches }

func (m *GroupMessage) Bulk() bool { return true }

func (m *GroupMessage) Body() (map[string]any, error) {
	if len(m.Recipients) == 0 {
		return nil, &InvalidMessageError{Reason: "at least one recipient is required"}
	}

	if m.Content == "" {
		return nil, &InvalidMessageError{Reason: "content is required"}
	}

	recipients := make([]map[string]any, 0, len(m.Recipients))
	for _, number := range m.Recipients {
		e164, err := ParsePhoneNumber(number)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, map[string]any{"MobileNumber": e164})
	}

	sendTime, err := ParseTime(m.Time, true)
	if err != nil {
		return nil, err
	}

	groups := []map[string]any{
		{
			"Content":    m.Content,
			"Recipients": recipients,
		},
	}

	return Prune(map[string]any{
		"SenderId": m.Sender,
		"Name":     m.CampaignName,
		"Groups":   groups,
		"Time":     sendTime,
	}), nil
}

// BatchEntry is one personalized message within a [MessageBatch].
type BatchEntry struct {
	Recipient string
	Content   string
}

// MessageBatch is a named campaign of messages each with its own
// recipient and content.
type MessageBatch struct {
	Sender       string
	CampaignName string

	// Entries are the batched messages. Every entry must carry both a
	// recipient and content; a single malformed entry fails the whole
	// batch.
	Entries []BatchEntry

	// Time optionally schedules the send. Seconds are dropped.
	Time string
}

func (b *MessageBatch) Route() string { return routeBatches }

func (b *MessageBatch) Bulk() bool { return true }

func (b *MessageBatch) Body() (map[string]any, error) {
	if len(b.Entries) == 0 {
		return nil, &InvalidMessageError{Reason: "batch has no entries"}
	}

	groups := make([]map[string]any, 0, len(b.Entries))
	for i, entry := range b.Entries {
		if entry.Recipient == "" {
			return nil, &InvalidMessageError{Reason: fmt.Sprintf("batch entry %d has no recipient", i)}
		}

		if entry.Content == "" {
			return nil, &InvalidMessageError{Reason: fmt.Sprintf("batch entry %d has no content", i)}
		}

		e164, err := ParsePhoneNumber(entry.Recipient)
		if err != nil {
			return nil, err
		}

		groups = append(groups, map[string]any{
			"Content":    entry.Content,
			"Recipients": []map[string]any{{"MobileNumber": e164}},
		})
	}

	sendTime, err := ParseTime(b.Time, true)
	if err != nil {
		return nil, err
	}

	return Prune(map[string]any{
		"SenderId": b.Sender,
		"Name":     b.CampaignName,
		"Groups":   groups,
		"Time":     sendTime,
	}), nil
}
