package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
	"github.com/lucasforesti/pilotoapi/viewmodel"
)

type resultData struct {
	PosicaoLargada int    `json:"posicaoLargada,omitempty"`
	PosicaoFinal   string `json:"posicaoFinal,omitempty"`
	Pontos         int    `json:"pontos,omitempty"`
	Observacoes    string `json:"observacoes,omitempty"`
}

type eventData struct {
	ID              string      `json:"id"`
	Nome            string      `json:"nome"`
	Data            string      `json:"data"`
	Hora            string      `json:"hora,omitempty"`
	DataISO         string      `json:"dataISO"`
	Status          string      `json:"status"`
	StatusLabel     string      `json:"statusLabel"`
	Circuito        string      `json:"circuito,omitempty"`
	Cidade          string      `json:"cidade,omitempty"`
	Resultado       *resultData `json:"resultado,omitempty"`
	LinkParaMateria string      `json:"linkParaMateria,omitempty"`
}

type calendarioData struct {
	Meta           meta          `json:"meta"`
	Proximas       []eventData   `json:"proximasCorridas"`
	Passadas       []eventData   `json:"corridasPassadas"`
	ProximaCorrida *nextRaceData `json:"proximaCorrida"`
}

// Calendario returns the season calendar partitioned into upcoming and past
// events, plus the countdown target for the soonest race.
func (h *Handler) Calendario(c echo.Context) error {
	client := h.contentFor(c)
	now := time.Now().UTC()

	var events []models.Event
	if err := client.Query(c.Request().Context(), content.QueryEvents, nil, &events); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "calendário indisponível")
	}

	upcoming, past := viewmodel.PartitionEvents(events, now)

	data := calendarioData{
		Meta: meta{
			Title:       "Calendário e Resultados - " + DriverName,
			Description: "Acompanhe o calendário de corridas e os resultados do piloto " + DriverName + ".",
		},
		Proximas: make([]eventData, 0, len(upcoming)),
		Passadas: make([]eventData, 0, len(past)),
	}
	for _, e := range upcoming {
		data.Proximas = append(data.Proximas, newEventData(e))
	}
	for _, e := range past {
		data.Passadas = append(data.Passadas, newEventData(e))
	}
	if len(upcoming) > 0 {
		data.ProximaCorrida = h.nextRace(upcoming[0], now)
	}

	return c.JSON(http.StatusOK, data)
}

func newEventData(e models.Event) eventData {
	d := eventData{
		ID:              e.ID,
		Nome:            e.Name,
		Data:            viewmodel.FormatDate(e.Date),
		Hora:            viewmodel.FormatTime(e.Date),
		DataISO:         e.Date.UTC().Format(time.RFC3339),
		Status:          e.Status,
		StatusLabel:     viewmodel.StatusLabel(e.Status),
		Circuito:        e.Venue,
		Cidade:          e.City,
		LinkParaMateria: e.ArticleLink,
	}
	// A result only means something for a held event; anything attached to
	// other statuses is stale editor data and is not surfaced.
	if e.Status == models.StatusHeld && e.Result != nil {
		d.Resultado = &resultData{
			PosicaoLargada: e.Result.GridPosition,
			PosicaoFinal:   e.Result.FinishPosition,
			Pontos:         e.Result.Points,
			Observacoes:    e.Result.Notes,
		}
	}
	return d
}
