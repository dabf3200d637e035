package domain

// StoredDocument references an uploaded file in the document store.
type StoredDocument struct {
	Ref         string
	Name        string
	ContentType string
	Size        int64
}
