package graphql

import "github.com/graphql-go/relay"

// GlobalIDs encodes record identities as Relay global IDs: base64 of
// "<type>:<id>". It is the cursor of the edge returned by MultipleChoiceAdd.
type GlobalIDs struct{}

// NewGlobalIDs returns the Relay global ID encoder.
func NewGlobalIDs() GlobalIDs {
	return GlobalIDs{}
}

// Encode implements ports.CursorEncoder.
func (GlobalIDs) Encode(typeName, id string) string {
	return relay.ToGlobalID(typeName, id)
}

// Decode implements ports.CursorEncoder. Tokens that do not re-encode to
// themselves are rejected, so ids containing ':' cannot be truncated silently.
func (GlobalIDs) Decode(cursor string) (string, string, bool) {
	resolved := relay.FromGlobalID(cursor)
	if resolved == nil || resolved.Type == "" || resolved.ID == "" {
		return "", "", false
	}

	if relay.ToGlobalID(resolved.Type, resolved.ID) != cursor {
		return "", "", false
	}

	return resolved.Type, resolved.ID, true
}
