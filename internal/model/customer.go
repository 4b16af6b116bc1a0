package model

// CustomerType mirrors the customer service's classification of account owners.
type CustomerType string

const (
	CustomerTypePersonal CustomerType = "PERSONAL"
	CustomerTypeBusiness CustomerType = "BUSINESS"
)

// Customer is the snapshot returned by the customer service. It is never
// persisted here; each creation request resolves the owner fresh.
type Customer struct {
	ID           string       `json:"id"`
	CustomerType CustomerType `json:"customerType"`
}
