// Package imageurl turns CMS image references into content-delivery URLs
// with transform parameters. A reference that cannot be resolved yields nil;
// render sites must supply their own placeholder for that case.
package imageurl

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/lucasforesti/pilotoapi/models"
)

const cdnBase = "https://cdn.sanity.io/images"

// Resolver builds asset URLs for one project/dataset pair.
type Resolver struct {
	ProjectID string
	Dataset   string
}

// New returns a Resolver for the given project and dataset.
func New(projectID, dataset string) *Resolver {
	return &Resolver{ProjectID: projectID, Dataset: dataset}
}

// Resolve returns a Builder for the image, or nil when the reference is
// missing or carries no resolvable asset pointer. It accepts both the nested
// asset shape and the legacy direct-_ref shape, and never panics on
// malformed input.
func (r *Resolver) Resolve(img *models.Image) *Builder {
	if img == nil {
		return nil
	}
	if img.Asset != nil {
		if b := r.fromAsset(img.Asset); b != nil {
			return b
		}
	}
	if img.Ref != "" {
		return r.fromRef(img.Ref)
	}
	return nil
}

// ResolveAsset returns a Builder for a bare asset pointer, as carried by
// album photos and inline body images.
func (r *Resolver) ResolveAsset(asset *models.AssetRef) *Builder {
	if asset == nil {
		return nil
	}
	return r.fromAsset(asset)
}

func (r *Resolver) fromAsset(asset *models.AssetRef) *Builder {
	if asset.Ref != "" {
		return r.fromRef(asset.Ref)
	}
	if asset.ID != "" {
		return r.fromRef(asset.ID)
	}
	if asset.URL != "" {
		return &Builder{base: asset.URL}
	}
	return nil
}

// fromRef parses a reference of the form image-<assetID>-<WxH>-<format>.
// Anything else degrades to nil.
func (r *Resolver) fromRef(ref string) *Builder {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		zap.L().Debug("imageurl: unresolvable reference", zap.String("ref", ref))
		return nil
	}
	id, dims, format := parts[1], parts[2], parts[3]
	if id == "" || dims == "" || format == "" {
		return nil
	}
	return &Builder{
		base: fmt.Sprintf("%s/%s/%s/%s-%s.%s", cdnBase, r.ProjectID, r.Dataset, id, dims, format),
	}
}

// Builder accumulates transform parameters. Every method returns a copy, so
// two call sites deriving different sizes from the same reference cannot
// interfere with each other.
type Builder struct {
	base    string
	width   int
	height  int
	fit     string
	quality int
	auto    string
}

// Width sets the target width in pixels.
func (b Builder) Width(n int) *Builder {
	b.width = n
	return &b
}

// Height sets the target height in pixels.
func (b Builder) Height(n int) *Builder {
	b.height = n
	return &b
}

// Fit sets the resize mode (crop, max, fill, ...).
func (b Builder) Fit(mode string) *Builder {
	b.fit = mode
	return &b
}

// Quality sets the output quality, clamped to [0,100].
func (b Builder) Quality(q int) *Builder {
	if q < 0 {
		q = 0
	}
	if q > 100 {
		q = 100
	}
	b.quality = q
	return &b
}

// Auto enables automatic output negotiation, normally "format".
func (b Builder) Auto(mode string) *Builder {
	b.auto = mode
	return &b
}

// URL produces the final URL string. Parameters are emitted in a stable
// order so call sites produce deterministic markup.
func (b Builder) URL() string {
	q := url.Values{}
	if b.width > 0 {
		q.Set("w", fmt.Sprintf("%d", b.width))
	}
	if b.height > 0 {
		q.Set("h", fmt.Sprintf("%d", b.height))
	}
	if b.fit != "" {
		q.Set("fit", b.fit)
	}
	if b.quality > 0 {
		q.Set("q", fmt.Sprintf("%d", b.quality))
	}
	if b.auto != "" {
		q.Set("auto", b.auto)
	}
	if len(q) == 0 {
		return b.base
	}
	sep := "?"
	if strings.Contains(b.base, "?") {
		sep = "&"
	}
	return b.base + sep + q.Encode()
}
