package types

// Result is the outcome of scanning one file.
type Result struct {
	// Path is the local path of the scanned file. Empty when scanning
	// raw content.
	Path string `json:"path,omitempty"`

	// Sections lists the IDs of the sections matched, in the order they
	// were consumed from the front of the file. Persistent sections may
	// appear more than once.
	Sections []string `json:"sections"`

	// Complete reports whether every required section was matched before
	// the scan stopped.
	Complete bool `json:"complete"`
}

// Has reports whether the result contains at least one match for id.
func (r *Result) Has(id string) bool {
	for _, s := range r.Sections {
		if s == id {
			return true
		}
	}
	return false
}
