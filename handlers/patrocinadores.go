package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
	"github.com/lucasforesti/pilotoapi/viewmodel"
)

type sponsorData struct {
	ID                string `json:"id"`
	Nome              string `json:"nome"`
	Categoria         string `json:"categoria,omitempty"`
	Logo              image  `json:"logo"`
	ImagemDeFundo     *image `json:"imagemDeFundo,omitempty"`
	DescricaoCurta    string `json:"descricaoCurta,omitempty"`
	DescricaoCompleta string `json:"descricaoCompleta,omitempty"`
	Link              string `json:"link,omitempty"`
	CorGradiente      string `json:"corGradiente,omitempty"`
	ParceiroDesde     string `json:"parceiroDesde,omitempty"`
}

type patrocinadoresData struct {
	Meta           meta          `json:"meta"`
	Patrocinadores []sponsorData `json:"patrocinadores"`
}

// Patrocinadores returns the active sponsors in display order (ordem asc,
// then name); the ordering is applied by the query itself.
func (h *Handler) Patrocinadores(c echo.Context) error {
	var sponsors []models.Sponsor
	err := h.contentFor(c).Query(c.Request().Context(), content.QueryActiveSponsors, nil, &sponsors)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "patrocinadores indisponíveis")
	}

	data := patrocinadoresData{
		Meta: meta{
			Title:       "Patrocinadores - " + DriverName,
			Description: "Conheça as marcas que acompanham " + DriverName + " na temporada.",
		},
		Patrocinadores: make([]sponsorData, 0, len(sponsors)),
	}
	for _, s := range sponsors {
		sd := sponsorData{
			ID:                s.ID,
			Nome:              s.Name,
			Categoria:         s.Category,
			Logo:              h.resolveImage(s.Logo, 400, 0),
			DescricaoCurta:    s.ShortDescription,
			DescricaoCompleta: s.LongDescription,
			Link:              s.Link,
			CorGradiente:      s.Gradient,
			ParceiroDesde:     viewmodel.FormatYear(s.PartnerSince),
		}
		if bg := h.resolveImage(s.BackgroundImage, 1200, 675); s.BackgroundImage != nil {
			sd.ImagemDeFundo = &bg
		}
		data.Patrocinadores = append(data.Patrocinadores, sd)
	}

	return c.JSON(http.StatusOK, data)
}
