package models

// Album is a photo album ("albumDeFotos").
type Album struct {
	ID          string  `json:"_id"`
	Title       string  `json:"titulo"`
	Slug        Slug    `json:"slug"`
	Date        CMSTime `json:"dataDoAlbum"`
	CoverImage  *Image  `json:"imagemDeCapa,omitempty"`
	Description string  `json:"descricao,omitempty"`
	Photos      []Photo `json:"fotos,omitempty"`
}

// Photo is one entry in an album. Key is the stable per-item identity; photos
// render in reorderable lists and must not be identified by array index.
type Photo struct {
	Key     string    `json:"_key"`
	Asset   *AssetRef `json:"asset,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Caption string    `json:"legenda,omitempty"`
}
