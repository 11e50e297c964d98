package models

// Sponsor is a partner brand ("patrocinador"). Only active sponsors are
// queried for display.
type Sponsor struct {
	ID               string  `json:"_id"`
	Name             string  `json:"nome"`
	Category         string  `json:"categoria,omitempty"`
	Logo             *Image  `json:"logo,omitempty"`
	BackgroundImage  *Image  `json:"imagemDeFundo,omitempty"`
	ShortDescription string  `json:"descricaoCurta,omitempty"`
	LongDescription  string  `json:"descricaoCompleta,omitempty"`
	Link             string  `json:"link,omitempty"`
	Order            int     `json:"ordem,omitempty"`
	Active           bool    `json:"ativo"`
	Gradient         string  `json:"corGradiente,omitempty"`
	PartnerSince     CMSTime `json:"inicioParceria,omitempty"`
	PartnerUntil     CMSTime `json:"fimParceria,omitempty"`
}
