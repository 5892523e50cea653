// Package model defines the row and credential types shared by the
// sources, the grouper and the Bitwarden assembly.
package model

// Row is one record read from a password export. Columns missing from the
// export are left empty; an absent value and an empty value are the same.
type Row struct {
	Title    string
	Username string
	Password string
	URL      string
	Notes    string
	OTPAuth  string
}

// Identity is the (username, password) pair rows are merged on.
type Identity struct {
	Username string
	Password string
}

// Identity returns the merge key of the row.
func (r Row) Identity() Identity {
	return Identity{Username: r.Username, Password: r.Password}
}

// HasCredential reports whether the row carries a username or a password.
// Rows without either are not credentials.
func (r Row) HasCredential() bool {
	return r.Username != "" || r.Password != ""
}

// IsEmpty reports whether every field of the row is empty.
func (r Row) IsEmpty() bool {
	return r == Row{}
}
