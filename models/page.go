package models

// AboutPage is the singleton biography document ("paginaSobre").
type AboutPage struct {
	ID           string        `json:"_id"`
	Title        string        `json:"titulo,omitempty"`
	MainImage    *Image        `json:"imagemPrincipal,omitempty"`
	Biography    []Block       `json:"biografia,omitempty"`
	Achievements []Achievement `json:"conquistas,omitempty"`
}

// Achievement is one career-highlight row on the about page.
type Achievement struct {
	Key         string `json:"_key"`
	Year        string `json:"ano,omitempty"`
	Description string `json:"descricao,omitempty"`
}

// ContactSettings is the singleton contact document ("configuracoesContato").
type ContactSettings struct {
	ID         string `json:"_id"`
	Email      string `json:"emailPrincipal"`
	Phone      string `json:"telefonePrincipal,omitempty"`
	PressName  string `json:"nomeContatoImprensa,omitempty"`
	PressEmail string `json:"emailImprensa,omitempty"`
}
