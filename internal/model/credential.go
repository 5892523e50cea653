package model

import (
	"sort"
)

// Credential is the merged record of every row sharing one Identity.
//
// Name, Username and Password come from the first row seen for the
// identity and are never updated. URIs and Notes are sets extended by every
// row. The TOTP value is taken from the first row that supplies one.
type Credential struct {
	// Name is the title of the first row seen for the identity.
	Name string

	Username string
	Password string

	uris  map[string]struct{}
	notes map[string]struct{}

	totp    string
	totpSet bool
}

// NewCredential creates the aggregate for the first row of an identity.
// Only the fixed fields are taken from row; call Merge to accumulate it.
func NewCredential(row Row) *Credential {
	return &Credential{
		Name:     row.Title,
		Username: row.Username,
		Password: row.Password,
		uris:     make(map[string]struct{}),
		notes:    make(map[string]struct{}),
	}
}

// Identity returns the merge key of the credential.
func (c *Credential) Identity() Identity {
	return Identity{Username: c.Username, Password: c.Password}
}

// Merge folds the multi-valued fields of row into the credential.
func (c *Credential) Merge(row Row) {
	c.AddURI(row.URL)
	c.AddNote(row.Notes)
	c.SetTOTP(row.OTPAuth)
}

// AddURI adds a URL to the set. Empty values are ignored.
func (c *Credential) AddURI(uri string) {
	if uri == "" {
		return
	}
	if c.uris == nil {
		c.uris = make(map[string]struct{})
	}
	c.uris[uri] = struct{}{}
}

// AddNote adds a note to the set. Empty values are ignored.
func (c *Credential) AddNote(note string) {
	if note == "" {
		return
	}
	if c.notes == nil {
		c.notes = make(map[string]struct{})
	}
	c.notes[note] = struct{}{}
}

// SetTOTP records value as the TOTP secret unless one is already set.
// It returns true when value was stored.
func (c *Credential) SetTOTP(value string) bool {
	if c.totpSet || value == "" {
		return false
	}
	c.totp = value
	c.totpSet = true
	return true
}

// TOTP returns the TOTP value and whether one was ever set.
func (c *Credential) TOTP() (string, bool) {
	return c.totp, c.totpSet
}

// URIs returns the distinct URIs in lexicographic order.
func (c *Credential) URIs() []string {
	return sortedKeys(c.uris)
}

// Notes returns the distinct notes in lexicographic order.
func (c *Credential) Notes() []string {
	return sortedKeys(c.notes)
}

// URICount returns the number of distinct URIs.
func (c *Credential) URICount() int {
	return len(c.uris)
}

// NoteCount returns the number of distinct notes.
func (c *Credential) NoteCount() int {
	return len(c.notes)
}

// Clone creates a deep copy of the credential.
func (c *Credential) Clone() *Credential {
	if c == nil {
		return nil
	}

	clone := &Credential{
		Name:     c.Name,
		Username: c.Username,
		Password: c.Password,
		uris:     make(map[string]struct{}, len(c.uris)),
		notes:    make(map[string]struct{}, len(c.notes)),
		totp:     c.totp,
		totpSet:  c.totpSet,
	}
	for k := range c.uris {
		clone.uris[k] = struct{}{}
	}
	for k := range c.notes {
		clone.notes[k] = struct{}{}
	}

	return clone
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
