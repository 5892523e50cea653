package bitwarden

import (
	"strings"

	"github.com/google/uuid"

	"github.com/nvinuesa/applewarden/internal/model"
	"github.com/nvinuesa/applewarden/internal/normalize"
)

// Options configures export assembly.
type Options struct {
	// FolderName puts every item into one folder with this name. Empty
	// means no folder.
	FolderName string
	// Rules normalize item names.
	Rules normalize.Rules
	// NewID generates item and folder identifiers. Defaults to random UUIDs.
	NewID func() string
	// OnEmptyName is called with the original name of every item whose
	// name was normalized to the empty string.
	OnEmptyName func(original string)
}

// DefaultOptions returns Options with random UUID identifiers.
func DefaultOptions() Options {
	return Options{
		NewID: uuid.NewString,
	}
}

// Build creates an export holding one login item per credential, in the
// order given.
func Build(creds []*model.Credential, opts Options) *Export {
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	export := &Export{
		Encrypted: false,
		Folders:   []Folder{},
		Items:     make([]Item, 0, len(creds)),
	}

	var folderID *string
	if opts.FolderName != "" {
		folder := Folder{ID: newID(), Name: opts.FolderName}
		export.Folders = append(export.Folders, folder)
		folderID = &folder.ID
	}

	for _, cred := range creds {
		item := buildItem(cred, opts, newID)
		if folderID != nil {
			id := *folderID
			item.FolderID = &id
		}
		export.Items = append(export.Items, item)
	}

	return export
}

// buildItem maps one credential onto a login item.
func buildItem(c *model.Credential, opts Options, newID func() string) Item {
	name := normalize.Normalize(c.Name, opts.Rules)
	if name == "" && c.Name != "" && opts.OnEmptyName != nil {
		opts.OnEmptyName(c.Name)
	}

	uris := make([]URI, 0, c.URICount())
	for _, u := range c.URIs() {
		uris = append(uris, URI{URI: u})
	}

	var totp *string
	if value, ok := c.TOTP(); ok {
		totp = &value
	}

	return Item{
		ID:       newID(),
		Type:     TypeLogin,
		Reprompt: RepromptNone,
		Name:     name,
		Notes:    strings.Join(c.Notes(), "\n"),
		Login: Login{
			URIs:     uris,
			Username: optional(c.Username),
			Password: optional(c.Password),
			TOTP:     totp,
		},
		CollectionIDs: []string{},
		Fields:        []Field{},
	}
}

// optional returns nil for the empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
