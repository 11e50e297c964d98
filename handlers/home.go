package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
	"github.com/lucasforesti/pilotoapi/resource"
	"github.com/lucasforesti/pilotoapi/viewmodel"
)

type nextRaceData struct {
	ID       string             `json:"id"`
	Nome     string             `json:"nome"`
	Data     string             `json:"data"`
	Hora     string             `json:"hora,omitempty"`
	DataISO  string             `json:"dataISO"`
	Circuito string             `json:"circuito,omitempty"`
	Cidade   string             `json:"cidade,omitempty"`
	Restante viewmodel.TimeLeft `json:"restante"`
}

type aboutTeaserData struct {
	Titulo string `json:"titulo"`
	Imagem image  `json:"imagem"`
}

type homeData struct {
	Meta            meta             `json:"meta"`
	UltimasNoticias []articleCard    `json:"ultimasNoticias"`
	ProximaCorrida  *nextRaceData    `json:"proximaCorrida"`
	TeaserAlbuns    []albumCard      `json:"teaserAlbuns"`
	Sobre           *aboutTeaserData `json:"sobre"`
}

// Home assembles the home page from four independent queries issued
// concurrently. A failed sub-query empties only its own section; the page
// renders once all have settled.
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	client := h.contentFor(c)
	now := time.Now().UTC()

	var (
		articles []models.Article
		next     models.Event
		albums   []models.Album
		about    models.AboutPage
	)
	var g resource.Group
	g.Section("ultimasNoticias", func() error {
		return client.Query(ctx, content.QueryLatestArticles, nil, &articles)
	})
	g.Section("proximaCorrida", func() error {
		return client.Query(ctx, content.QueryNextEvent,
			map[string]any{"hojeISO": now.Format(time.RFC3339)}, &next)
	})
	g.Section("teaserAlbuns", func() error {
		return client.Query(ctx, content.QueryAlbumTeasers, nil, &albums)
	})
	g.Section("sobre", func() error {
		return client.Query(ctx, content.QueryAboutTeaser, nil, &about)
	})
	g.Wait()

	data := homeData{
		Meta: meta{
			Title:       DriverName + " - Piloto Stock Car",
			Description: "Site oficial do piloto " + DriverName + ": notícias, calendário, resultados, galeria de fotos e patrocinadores.",
		},
		UltimasNoticias: make([]articleCard, 0, len(articles)),
		TeaserAlbuns:    make([]albumCard, 0, len(albums)),
	}
	for _, a := range articles {
		data.UltimasNoticias = append(data.UltimasNoticias, h.articleCard(a))
	}
	for _, album := range albums {
		data.TeaserAlbuns = append(data.TeaserAlbuns, h.albumCard(album))
	}
	if next.ID != "" {
		data.ProximaCorrida = h.nextRace(next, now)
	}
	if about.ID != "" {
		data.Sobre = &aboutTeaserData{
			Titulo: about.Title,
			Imagem: h.resolveImage(about.MainImage, 900, 0),
		}
	}

	return c.JSON(http.StatusOK, data)
}

func (h *Handler) nextRace(e models.Event, now time.Time) *nextRaceData {
	return &nextRaceData{
		ID:       e.ID,
		Nome:     e.Name,
		Data:     viewmodel.FormatDate(e.Date),
		Hora:     viewmodel.FormatTime(e.Date),
		DataISO:  e.Date.UTC().Format(time.RFC3339),
		Circuito: e.Venue,
		Cidade:   e.City,
		Restante: viewmodel.Remaining(e.Date.Time, now),
	}
}
