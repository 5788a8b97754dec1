package models

// Conversation is a message thread between portal users
type Conversation struct {
	ID            int64      `json:"id"`
	PropertyID    *int64     `json:"propertyId,omitempty"`
	Title         string     `json:"title,omitempty"`
	Participants  []int64    `json:"participantIds,omitempty"`
	LastMessage   string     `json:"lastMessage,omitempty"`
	UnreadCount   int        `json:"unreadCount"`
	LastMessageAt *Timestamp `json:"lastMessageAt,omitempty"`
}

// Message is a single message in a conversation
type Message struct {
	ID             int64      `json:"id"`
	ConversationID int64      `json:"conversationId"`
	SenderID       int64      `json:"senderId"`
	Content        string     `json:"content"`
	SentAt         *Timestamp `json:"sentAt,omitempty"`
	Read           bool       `json:"read"`
}

// SendMessageRequest posts a message
type SendMessageRequest struct {
	Content string `json:"content"`
}

// UnreadCount is the backend's unread-count payload
type UnreadCount struct {
	Count int `json:"count"`
}
