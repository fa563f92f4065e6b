package models

// Message is an immutable directed text message. From and To are display
// names, not references to a User row.
type Message struct {
	ID   int64
	From string
	To   string
	Text string
}
