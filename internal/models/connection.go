package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ConnectionStatus is the lifecycle state of a connection record.
type ConnectionStatus string

const (
	// ConnectionStatusInterested indicates the sender proposed a connection.
	ConnectionStatusInterested ConnectionStatus = "interested"
	// ConnectionStatusIgnored indicates the sender dismissed the receiver.
	ConnectionStatusIgnored ConnectionStatus = "ignored"
	// ConnectionStatusAccepted indicates the receiver approved the proposal.
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	// ConnectionStatusRejected indicates the receiver declined the proposal.
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// ValidCreationStatus reports whether a sender may create a record with this status.
func ValidCreationStatus(s ConnectionStatus) bool {
	return s == ConnectionStatusInterested || s == ConnectionStatusIgnored
}

// ValidReviewStatus reports whether a receiver may resolve a request with this status.
func ValidReviewStatus(s ConnectionStatus) bool {
	return s == ConnectionStatusAccepted || s == ConnectionStatusRejected
}

// Connection is a directed relationship proposal between two users.
// PairKey is the normalized unordered pair; its unique index guarantees at
// most one record per pair regardless of direction, closing the
// check-then-insert race at the storage layer.
type Connection struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	SenderID   uint             `gorm:"not null;index" json:"senderId"`
	ReceiverID uint             `gorm:"not null;index" json:"receiverId"`
	Status     ConnectionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PairKey    string           `gorm:"size:64;uniqueIndex;not null" json:"-"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`

	Sender   User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM.
func (Connection) TableName() string {
	return "connections"
}

// PairKeyFor builds the normalized unordered pair key for two user IDs.
func PairKeyFor(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// BeforeCreate rejects self-connections and derives the pair key.
func (c *Connection) BeforeCreate(_ *gorm.DB) error {
	if c.SenderID == c.ReceiverID {
		return NewValidationError("You cannot connect with yourself")
	}
	c.PairKey = PairKeyFor(c.SenderID, c.ReceiverID)
	return nil
}

// CounterpartID returns the other user on the record relative to userID.
func (c *Connection) CounterpartID(userID uint) uint {
	if c.SenderID == userID {
		return c.ReceiverID
	}
	return c.SenderID
}

// ConnectionRequest is the API shape of an incoming pending request.
type ConnectionRequest struct {
	ID        uint             `json:"id"`
	Status    ConnectionStatus `json:"status"`
	Sender    PublicUser       `json:"sender"`
	CreatedAt time.Time        `json:"createdAt"`
}
