// Package manifest rewrites the identity fields of a YunoHost application
// manifest. Only id, name, description and maintainer are replaced; every
// other byte of the document is kept as it was.
package manifest

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/artus40/djangoapp-ynh/pkg/errors"
)

// Identity holds the answers collected from the operator
type Identity struct {
	Name            string
	Description     string
	MaintainerName  string
	MaintainerEmail string
}

// ID derives the application id from its display name.
func (i Identity) ID() string {
	return DeriveID(i.Name)
}

// DeriveID lowercases name and replaces spaces with underscores.
func DeriveID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

type maintainer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Apply returns doc with the identity fields replaced. The description is
// stored as a single-entry object keyed by lang.
func Apply(doc []byte, id Identity, lang string) ([]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New(errors.ErrManifest, "manifest is not valid JSON")
	}
	if !gjson.ParseBytes(doc).IsObject() {
		return nil, errors.New(errors.ErrManifest, "manifest must be a JSON object")
	}
	if lang == "" {
		lang = "en"
	}

	edits := []struct {
		path  string
		value interface{}
	}{
		{"id", id.ID()},
		{"name", id.Name},
		{"description", map[string]string{lang: id.Description}},
		{"maintainer", maintainer{Name: id.MaintainerName, Email: id.MaintainerEmail}},
	}

	out := doc
	for _, e := range edits {
		var err error
		out, err = sjson.SetBytes(out, e.path, e.value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifest, "failed to set %s", e.path)
		}
	}
	return out, nil
}
