package domain

// ClientType classifies a directory client.
type ClientType string

const (
	ClientCustomer    ClientType = "customer"
	ClientVendor      ClientType = "vendor"
	ClientBeneficiary ClientType = "beneficiary"
)

// IsValid reports whether t is one of the closed set of client types.
func (t ClientType) IsValid() bool {
	return t == ClientCustomer || t == ClientVendor || t == ClientBeneficiary
}

// Client represents a counterparty in the directory. Clients are append-only:
// no update or delete operation exists, so transaction references to a client
// can never dangle.
type Client struct {
	ClientID    string     `json:"clientID"` // Primary Key (UUID)
	Name        string     `json:"name"`
	ContactInfo string     `json:"contactInfo"`
	Type        ClientType `json:"type"`
	Notes       string     `json:"notes"`
	AuditFields
}
