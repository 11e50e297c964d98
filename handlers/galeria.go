package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
	"github.com/lucasforesti/pilotoapi/viewmodel"
)

// albumCard is the gallery-index and home-teaser projection of an album.
type albumCard struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Slug      string `json:"slug"`
	Data      string `json:"data,omitempty"`
	Imagem    image  `json:"imagem"`
	Descricao string `json:"descricao,omitempty"`
}

type galeriaData struct {
	Meta   meta        `json:"meta"`
	Albuns []albumCard `json:"albuns"`
}

// Galeria returns every album for the gallery index.
func (h *Handler) Galeria(c echo.Context) error {
	var albums []models.Album
	err := h.contentFor(c).Query(c.Request().Context(), content.QueryAlbums, nil, &albums)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "galeria indisponível")
	}

	data := galeriaData{
		Meta: meta{
			Title:       "Galeria de Fotos - " + DriverName,
			Description: "Álbuns de fotos de corridas, bastidores e eventos de " + DriverName + ".",
		},
		Albuns: make([]albumCard, 0, len(albums)),
	}
	for _, a := range albums {
		data.Albuns = append(data.Albuns, h.albumCard(a))
	}

	return c.JSON(http.StatusOK, data)
}

func (h *Handler) albumCard(a models.Album) albumCard {
	return albumCard{
		ID:        a.ID,
		Titulo:    a.Title,
		Slug:      a.Slug.Current,
		Data:      viewmodel.FormatDate(a.Date),
		Imagem:    h.resolveImage(a.CoverImage, 600, 400),
		Descricao: a.Description,
	}
}

// photoData carries grid and lightbox URLs derived independently from the
// same reference.
type photoData struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Lightbox string `json:"lightbox"`
	Alt      string `json:"alt,omitempty"`
	Legenda  string `json:"legenda,omitempty"`
}

type albumDetalheData struct {
	Meta      meta        `json:"meta"`
	ID        string      `json:"id"`
	Titulo    string      `json:"titulo"`
	Slug      string      `json:"slug"`
	Data      string      `json:"data,omitempty"`
	Descricao string      `json:"descricao,omitempty"`
	Fotos     []photoData `json:"fotos"`
	Vazio     bool        `json:"vazio"`
}

// GaleriaAlbum returns one album with its photos. An album with zero photos
// is a valid empty state, not an error; an unknown slug is not found.
func (h *Handler) GaleriaAlbum(c echo.Context) error {
	slug := c.Param("slug")

	var album models.Album
	err := h.contentFor(c).Query(c.Request().Context(), content.QueryAlbumBySlug,
		map[string]any{"slug": slug}, &album)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "álbum indisponível")
	}
	if album.ID == "" {
		return c.JSON(http.StatusNotFound, notFoundView{
			Meta:     meta{Title: "Álbum não encontrado - " + DriverName},
			NotFound: true,
			BackLink: "/galeria",
		})
	}

	data := albumDetalheData{
		Meta: meta{
			Title:       album.Title + " - Galeria - " + DriverName,
			Description: album.Description,
		},
		ID:        album.ID,
		Titulo:    album.Title,
		Slug:      album.Slug.Current,
		Data:      viewmodel.FormatDate(album.Date),
		Descricao: album.Description,
		Fotos:     make([]photoData, 0, len(album.Photos)),
	}
	for _, p := range album.Photos {
		b := h.resolver.ResolveAsset(p.Asset)
		if b == nil {
			// A photo without a resolvable asset has nothing to show.
			continue
		}
		data.Fotos = append(data.Fotos, photoData{
			Key:      p.Key,
			URL:      b.Width(600).Height(600).Fit("crop").Quality(80).Auto("format").URL(),
			Lightbox: b.Width(1600).Quality(90).Auto("format").URL(),
			Alt:      p.Alt,
			Legenda:  p.Caption,
		})
	}
	data.Vazio = len(data.Fotos) == 0

	return c.JSON(http.StatusOK, data)
}
