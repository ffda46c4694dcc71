package certs

type RecordReader interface {
	Has(id string) (bool, error)
	// Get reports found == false, with a nil error, for absent ids.
	Get(id string) (cert Certificate, found bool, err error)
}

// RecordStore persists certificates keyed by Certificate.ID. Set replaces
// the whole record at once.
type RecordStore interface {
	RecordReader
	Set(cert Certificate) error
}
