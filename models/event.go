package models

// Event statuses as stored in the repository.
const (
	StatusScheduled = "agendado"
	StatusHeld      = "realizado"
	StatusCancelled = "cancelado"
	StatusPostponed = "adiado"
)

// Event is a race or session on the season calendar.
type Event struct {
	ID          string  `json:"_id"`
	Name        string  `json:"nomeDoEvento"`
	Date        CMSTime `json:"dataDoEvento"`
	Venue       string  `json:"circuito,omitempty"`
	City        string  `json:"cidade,omitempty"`
	Status      string  `json:"status"`
	Result      *Result `json:"resultado,omitempty"`
	ArticleLink string  `json:"linkParaMateria,omitempty"`
}

// Result is only meaningful when the event status is "realizado"; the view
// layer must not assume it is present otherwise.
type Result struct {
	GridPosition   int    `json:"posicaoLargada,omitempty"`
	FinishPosition string `json:"posicaoFinal,omitempty"` // string: allows "DNF", "DSQ"
	Points         int    `json:"pontos,omitempty"`
	Notes          string `json:"observacoes,omitempty"`
}
