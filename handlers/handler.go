// Package handlers implements the per-page view-model endpoints. Each page
// fetches its repository data, degrades failed sections to an empty state
// and returns a presentation-ready JSON shape including the document-head
// strings (title, description).
package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/imageurl"
	"github.com/lucasforesti/pilotoapi/middleware"
	"github.com/lucasforesti/pilotoapi/models"
	"github.com/lucasforesti/pilotoapi/viewmodel"
)

// DriverName appears in every page title and meta description.
const DriverName = "Lucas Foresti"

// placeholderImage is the fallback src for any unresolvable image reference.
// The resolver never gets to produce a broken img source.
const placeholderImage = "/images/placeholder.svg"

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	client     *content.Client
	live       *content.Client
	resolver   *imageurl.Resolver
	renderer   *viewmodel.BodyRenderer
	PreviewKey []byte
}

// New creates a Handler. live may be nil when preview mode is disabled; the
// published client is then used for every request.
func New(client, live *content.Client, resolver *imageurl.Resolver, previewKey []byte) *Handler {
	return &Handler{
		client:     client,
		live:       live,
		resolver:   resolver,
		renderer:   &viewmodel.BodyRenderer{Resolver: resolver},
		PreviewKey: previewKey,
	}
}

// contentFor picks the published or draft client depending on whether the
// preview middleware flagged the request.
func (h *Handler) contentFor(c echo.Context) *content.Client {
	if flagged, _ := c.Get(middleware.PreviewFlag).(bool); flagged && h.live != nil {
		return h.live
	}
	return h.client
}

// meta carries the document-head strings for a page. This service supplies
// only the values; the head manager on the client applies them.
type meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// image is the render-ready shape for any resolved picture.
type image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// resolveImage turns a reference into a sized image, falling back to the
// placeholder when the reference cannot be resolved.
func (h *Handler) resolveImage(img *models.Image, w, hgt int) image {
	b := h.resolver.Resolve(img)
	if b == nil {
		return image{URL: placeholderImage}
	}
	if w > 0 {
		b = b.Width(w)
	}
	if hgt > 0 {
		b = b.Height(hgt).Fit("crop")
	}
	alt := ""
	if img != nil {
		alt = img.Alt
	}
	return image{URL: b.Quality(80).Auto("format").URL(), Alt: alt}
}

// notFoundView is the dedicated shape for a slug that matches no document,
// distinct from a network failure. It always carries a way back.
type notFoundView struct {
	Meta     meta   `json:"meta"`
	NotFound bool   `json:"notFound"`
	BackLink string `json:"backLink"`
}
