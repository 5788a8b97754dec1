package models

// Document is an uploaded file (lease contract, id document, receipt)
type Document struct {
	ID         int64      `json:"id"`
	OwnerID    int64      `json:"ownerId"`
	PropertyID *int64     `json:"propertyId,omitempty"`
	Name       string     `json:"name"`
	Type       string     `json:"type,omitempty"`
	SizeBytes  int64      `json:"size,omitempty"`
	UploadedAt *Timestamp `json:"uploadedAt,omitempty"`
}

// SignedURL is a short-lived download link
type SignedURL struct {
	URL       string     `json:"url"`
	ExpiresAt *Timestamp `json:"expiresAt,omitempty"`
}

// ShareDocumentRequest shares a document with other users
type ShareDocumentRequest struct {
	UserIDs []int64 `json:"userIds"`
}
