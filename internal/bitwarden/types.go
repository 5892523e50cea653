// Package bitwarden builds unencrypted Bitwarden JSON export documents.
package bitwarden

// Bitwarden item types.
const (
	TypeLogin = 1
)

// Reprompt values.
const (
	RepromptNone = 0
)

// Export is the top-level Bitwarden JSON export structure.
type Export struct {
	Encrypted bool     `json:"encrypted"`
	Folders   []Folder `json:"folders"`
	Items     []Item   `json:"items"`
}

// Folder is a folder in the export.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a single vault item. Pointer fields serialize as null when nil.
type Item struct {
	ID             string   `json:"id"`
	OrganizationID *string  `json:"organizationId"`
	FolderID       *string  `json:"folderId"`
	Type           int      `json:"type"`
	Reprompt       int      `json:"reprompt"`
	Name           string   `json:"name"`
	Notes          string   `json:"notes"`
	Favorite       bool     `json:"favorite"`
	Login          Login    `json:"login"`
	CollectionIDs  []string `json:"collectionIds"`
	Fields         []Field  `json:"fields"`
}

// Login holds the login data of an item.
type Login struct {
	URIs     []URI   `json:"uris"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	TOTP     *string `json:"totp"`
}

// URI is a URI entry of a login. A nil Match uses the vault default.
type URI struct {
	Match *int   `json:"match"`
	URI   string `json:"uri"`
}

// Field is a custom field of an item.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  int    `json:"type"` // 0=text, 1=hidden, 2=boolean, 3=linked
}
