// Package grouper merges export rows into one credential per
// (username, password) identity.
package grouper

import (
	"github.com/nvinuesa/applewarden/internal/model"
)

// Conflict records a row whose title differed from the title already kept
// for its identity. The first title always wins.
type Conflict struct {
	Identity model.Identity
	Kept     string
	Ignored  string
}

// Stats summarizes a grouping run.
type Stats struct {
	// Rows is the number of rows offered to the grouper.
	Rows int
	// Skipped is the number of rows with neither username nor password.
	Skipped int
	// Credentials is the number of distinct identities.
	Credentials int
}

// Grouper accumulates rows into credentials, keeping identities in the
// order they were first seen. A Grouper is not safe for concurrent use.
type Grouper struct {
	order      []model.Identity
	byIdentity map[model.Identity]*model.Credential
	conflicts  []Conflict
	rows       int
	skipped    int
}

// New creates an empty grouper.
func New() *Grouper {
	return &Grouper{
		byIdentity: make(map[model.Identity]*model.Credential),
	}
}

// Group merges rows in order and returns the finished grouper.
func Group(rows []model.Row) *Grouper {
	g := New()
	for _, row := range rows {
		g.Add(row)
	}
	return g
}

// Add merges one row. It returns false when the row carries no credential
// and was skipped.
func (g *Grouper) Add(row model.Row) bool {
	g.rows++

	if !row.HasCredential() {
		g.skipped++
		return false
	}

	id := row.Identity()
	cred, ok := g.byIdentity[id]
	if !ok {
		cred = model.NewCredential(row)
		g.byIdentity[id] = cred
		g.order = append(g.order, id)
	} else if row.Title != cred.Name {
		g.conflicts = append(g.conflicts, Conflict{Identity: id, Kept: cred.Name, Ignored: row.Title})
	}

	cred.Merge(row)
	return true
}

// Len returns the number of distinct identities.
func (g *Grouper) Len() int {
	return len(g.order)
}

// Get returns a copy of the credential for id.
func (g *Grouper) Get(id model.Identity) (*model.Credential, bool) {
	cred, ok := g.byIdentity[id]
	if !ok {
		return nil, false
	}
	return cred.Clone(), true
}

// Identities returns the identities in first-seen order.
func (g *Grouper) Identities() []model.Identity {
	ids := make([]model.Identity, len(g.order))
	copy(ids, g.order)
	return ids
}

// Credentials returns copies of the merged credentials in first-seen order.
func (g *Grouper) Credentials() []*model.Credential {
	creds := make([]*model.Credential, 0, len(g.order))
	for _, id := range g.order {
		creds = append(creds, g.byIdentity[id].Clone())
	}
	return creds
}

// Conflicts returns the rows whose title was dropped in favour of the
// first title of their identity, in input order.
func (g *Grouper) Conflicts() []Conflict {
	out := make([]Conflict, len(g.conflicts))
	copy(out, g.conflicts)
	return out
}

// Stats returns counters for the rows added so far.
func (g *Grouper) Stats() Stats {
	return Stats{
		Rows:        g.rows,
		Skipped:     g.skipped,
		Credentials: len(g.order),
	}
}
