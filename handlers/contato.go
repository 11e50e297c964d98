package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
)

type contatoData struct {
	Meta                meta   `json:"meta"`
	EmailPrincipal      string `json:"emailPrincipal,omitempty"`
	TelefonePrincipal   string `json:"telefonePrincipal,omitempty"`
	NomeContatoImprensa string `json:"nomeContatoImprensa,omitempty"`
	EmailImprensa       string `json:"emailImprensa,omitempty"`
}

// Contato returns the contact-settings singleton. A missing document renders
// the page with empty fields rather than failing; there is nothing else on
// the page that could break.
func (h *Handler) Contato(c echo.Context) error {
	var settings models.ContactSettings
	err := h.contentFor(c).Query(c.Request().Context(), content.QueryContactSettings, nil, &settings)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "contato indisponível")
	}

	return c.JSON(http.StatusOK, contatoData{
		Meta: meta{
			Title:       "Contato - " + DriverName,
			Description: "Entre em contato com a equipe de " + DriverName + " para imprensa e parcerias.",
		},
		EmailPrincipal:      settings.Email,
		TelefonePrincipal:   settings.Phone,
		NomeContatoImprensa: settings.PressName,
		EmailImprensa:       settings.PressEmail,
	})
}
