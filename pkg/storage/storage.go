package storage

// LedgerStore defines the data access the commission ledger needs.
type LedgerStore interface {
	PurchaseRecordStore
	WithdrawalRequestStore
}

// Storage defines the root interface for the entire data layer.
// Components should depend on the more granular interfaces instead of this one.
type Storage interface {
	LedgerStore
	PartnerStore
}
