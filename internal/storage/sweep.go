package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/framecraft/admin/internal/docstore"
)

// MissingImage is one catalog document whose image reference is empty.
// Creating a frame or product is a two-step sequence (store document,
// upload binary, link URL); an interruption between the steps leaves
// exactly this state. It is recoverable, not fatal: the admin re-uploads
// or deletes the record.
type MissingImage struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Name       string `json:"name"`
}

// Collections the sweep inspects; both store their image reference
// under "image".
var sweptCollections = []string{"products", "frames"}

// SweepMissingImages scans the catalog collections and reports every
// document with an empty image reference. It never mutates anything.
func SweepMissingImages(ctx context.Context, store docstore.Store) ([]MissingImage, error) {
	var findings []MissingImage
	for _, name := range sweptCollections {
		docs, err := store.Collection(name).List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to sweep %s: %w", name, err)
		}
		for _, doc := range docs {
			var fields struct {
				Name  string `json:"name"`
				Image string `json:"image"`
			}
			if err := json.Unmarshal(doc.Data, &fields); err != nil {
				continue
			}
			if fields.Image == "" {
				findings = append(findings, MissingImage{
					Collection: name,
					ID:         doc.ID,
					Name:       fields.Name,
				})
			}
		}
	}
	return findings, nil
}
