package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
)

type achievementData struct {
	Key       string `json:"key"`
	Ano       string `json:"ano,omitempty"`
	Descricao string `json:"descricao,omitempty"`
}

type sobreData struct {
	Meta       meta              `json:"meta"`
	ID         string            `json:"id"`
	Titulo     string            `json:"titulo"`
	Imagem     image             `json:"imagem"`
	Biografia  string            `json:"biografia"`
	Conquistas []achievementData `json:"conquistas"`
}

// Sobre returns the biography singleton with the rich-text body rendered to
// HTML and the achievements list in editor order.
func (h *Handler) Sobre(c echo.Context) error {
	var page models.AboutPage
	err := h.contentFor(c).Query(c.Request().Context(), content.QueryAboutPage, nil, &page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "página indisponível")
	}
	if page.ID == "" {
		return c.JSON(http.StatusNotFound, notFoundView{
			Meta:     meta{Title: "Sobre - " + DriverName},
			NotFound: true,
			BackLink: "/",
		})
	}

	title := page.Title
	if title == "" {
		title = "Sobre"
	}

	data := sobreData{
		Meta: meta{
			Title:       title + " - " + DriverName,
			Description: "Conheça a trajetória e as conquistas do piloto " + DriverName + ".",
		},
		ID:         page.ID,
		Titulo:     title,
		Imagem:     h.resolveImage(page.MainImage, 900, 0),
		Biografia:  h.renderer.Render(page.Biography),
		Conquistas: make([]achievementData, 0, len(page.Achievements)),
	}
	for _, a := range page.Achievements {
		data.Conquistas = append(data.Conquistas, achievementData{
			Key: a.Key, Ano: a.Year, Descricao: a.Description,
		})
	}

	return c.JSON(http.StatusOK, data)
}
