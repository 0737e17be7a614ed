package domain

// CheckoutIntent is the client's request to pay for a club or event. It is
// never persisted.
type CheckoutIntent struct {
	ClubID      string
	ClubName    string
	EventID     string
	SenderEmail string
	Cost        string
}

// SessionMetadata travels through the gateway verbatim and is read back
// during reconciliation.
type SessionMetadata struct {
	EventID  string
	ClubID   string
	ClubName string
}

type CheckoutSessionRequest struct {
	AmountCents   int64
	Currency      string
	ProductName   string
	CustomerEmail string
	Metadata      SessionMetadata
	SuccessURL    string
	CancelURL     string
}

const SessionPaymentStatusPaid = "paid"

// CheckoutSession is the gateway's view of a hosted checkout.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentIntentID string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
	CustomerEmail   string
	Metadata        SessionMetadata
}

func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == SessionPaymentStatusPaid
}

type ReconcileResult struct {
	Success       bool
	Message       string
	TrackingID    string
	TransactionID string
}

// Reconciliation is the set of records persisted atomically for one
// completed checkout. Exactly one of Registration and Membership is set.
type Reconciliation struct {
	Payment      *Payment
	Registration *EventRegistration
	Membership   *Membership
	Outbox       *OutboxMessage
}
