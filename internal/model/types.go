package model

import "time"

// User is a platform account.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Age       *int       `json:"age,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SocialLinks is the optional sub-record of an artist's profiles. Each link
// is independently optional.
type SocialLinks struct {
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
}

// Artist is a performer in the catalog.
type Artist struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Bio       string       `json:"bio"`
	Genre     string       `json:"genre"`
	PhotoURL  string       `json:"photo_url"`
	Social    *SocialLinks `json:"social,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
}

// MembershipStatus enumerates membership states. Unrecognized wire values
// parse to StatusUnknown rather than silently defaulting.
type MembershipStatus string

const (
	StatusActive   MembershipStatus = "active"
	StatusInactive MembershipStatus = "inactive"
	StatusExpired  MembershipStatus = "expired"
	StatusUnknown  MembershipStatus = "unknown"
)

// ParseMembershipStatus maps a wire value to a MembershipStatus.
func ParseMembershipStatus(s string) MembershipStatus {
	switch MembershipStatus(s) {
	case StatusActive, StatusInactive, StatusExpired:
		return MembershipStatus(s)
	default:
		return StatusUnknown
	}
}

// Membership is a paid subscription held by a user. UserID is a non-owning
// reference; deleting the user does not cascade here.
type Membership struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Amount    float64          `json:"amount"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
	Status    MembershipStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

// TransactionKind enumerates transaction directions.
type TransactionKind string

const (
	KindPurchase TransactionKind = "purchase"
	KindSale     TransactionKind = "sale"
	KindUnknown  TransactionKind = "unknown"
)

// ParseTransactionKind maps a wire value to a TransactionKind.
func ParseTransactionKind(s string) TransactionKind {
	switch TransactionKind(s) {
	case KindPurchase, KindSale:
		return TransactionKind(s)
	default:
		return KindUnknown
	}
}

// TransactionStatus enumerates transaction lifecycle states.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxCancelled TransactionStatus = "cancelled"
	TxUnknown   TransactionStatus = "unknown"
)

// ParseTransactionStatus maps a wire value to a TransactionStatus.
func ParseTransactionStatus(s string) TransactionStatus {
	switch TransactionStatus(s) {
	case TxPending, TxCompleted, TxCancelled:
		return TransactionStatus(s)
	default:
		return TxUnknown
	}
}

// Transaction is a purchase or sale issued by a user.
type Transaction struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Kind       TransactionKind   `json:"kind"`
	Status     TransactionStatus `json:"status"`
	Quantity   int               `json:"quantity"`
	Amount     float64           `json:"amount"`
	OccurredAt time.Time         `json:"occurred_at"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  *time.Time        `json:"updated_at,omitempty"`
}
