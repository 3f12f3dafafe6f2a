// Package photofs builds the resource index mapping identities to
// their photographs by scanning local photo folders.
package photofs

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/benbenti/PhotoID/internal/domain"
)

// DefaultExtensions is the photo suffix filter applied when the
// configuration does not name one. Matching is case-sensitive.
var DefaultExtensions = []string{".JPG", ".jpg", ".jpeg", ".png"}

// Options filters which files a scan picks up.
type Options struct {
	// Include keeps only paths containing at least one of these
	// substrings. Empty means keep everything.
	Include []string
	// Exclude drops any path containing one of these substrings.
	// Evaluated after Include; either filter can reject a file.
	Exclude []string
	// Extensions is the accepted filename suffix list. Empty falls
	// back to DefaultExtensions.
	Extensions []string
}

// Index maps each identity to the photographs that show it. Every
// indexed identity is backed by at least one photo.
type Index struct {
	ids    []domain.Identity
	photos map[domain.Identity][]domain.Photo

	// Skipped lists files that matched the filters but carry no
	// underscore-delimited identity in their base filename.
	Skipped []string
}

// Scan walks every root recursively and groups matching files by the
// identity parsed from their base filename (the part before the first
// underscore). Roots are walked in parallel; the merged result is
// deterministic because identities sort ascending and each identity's
// photo list keeps the walk order of the root it came from, with roots
// appended in argument order.
func Scan(roots []string, opts Options) (*Index, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("scan: no photo folders given")
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	partials := make([]*Index, len(roots))
	var g errgroup.Group
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			part, err := scanRoot(root, opts.Include, opts.Exclude, exts)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}
			partials[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Index{photos: make(map[domain.Identity][]domain.Photo)}
	for _, part := range partials {
		for id, photos := range part.photos {
			merged.photos[id] = append(merged.photos[id], photos...)
		}
		merged.Skipped = append(merged.Skipped, part.Skipped...)
	}
	for id := range merged.photos {
		merged.ids = append(merged.ids, id)
	}
	sort.Strings(merged.ids)
	if len(merged.ids) == 0 {
		return nil, domain.ErrNoIdentities
	}
	return merged, nil
}

func scanRoot(root string, include, exclude, exts []string) (*Index, error) {
	idx := &Index{photos: make(map[domain.Identity][]domain.Photo)}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !containsAny(path, include, true) || containsAny(path, exclude, false) {
			return nil
		}
		if !hasSuffixAny(path, exts) {
			return nil
		}
		id, ok := Classify(path)
		if !ok {
			idx.Skipped = append(idx.Skipped, path)
			return nil
		}
		idx.photos[id] = append(idx.photos[id], path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Classify parses the identity out of a photo path: the base filename
// up to the first underscore. ok is false when no underscore exists or
// the identity would be empty; such files are skipped with a warning
// rather than fabricating an identity.
func Classify(path string) (domain.Identity, bool) {
	base := filepath.Base(path)
	cut := strings.Index(base, "_")
	if cut <= 0 {
		return "", false
	}
	return base[:cut], true
}

// Identities returns the sorted identity list.
func (x *Index) Identities() []domain.Identity {
	return append([]domain.Identity{}, x.ids...)
}

// Photos returns the photographs indexed for the identity, in scan
// order. The error case only arises for identities the index never
// produced, since indexed identities always have a backing photo.
func (x *Index) Photos(id domain.Identity) ([]domain.Photo, error) {
	photos := x.photos[id]
	if len(photos) == 0 {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrNoPhotos)
	}
	return append([]domain.Photo{}, photos...), nil
}

// Len returns the number of indexed identities.
func (x *Index) Len() int { return len(x.ids) }

func containsAny(path string, terms []string, emptyMeans bool) bool {
	if len(terms) == 0 {
		return emptyMeans
	}
	for _, term := range terms {
		if term != "" && strings.Contains(path, term) {
			return true
		}
	}
	return false
}

func hasSuffixAny(path string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
