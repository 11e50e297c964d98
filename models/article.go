package models

// Article is a news document ("noticia"). Listing queries project only the
// card fields; the detail query additionally expands Body and Categories.
type Article struct {
	ID          string     `json:"_id"`
	Title       string     `json:"titulo"`
	Slug        Slug       `json:"slug"`
	PublishedAt CMSTime    `json:"dataDePublicacao"`
	CoverImage  *Image     `json:"imagemDeCapa,omitempty"`
	Summary     string     `json:"resumo,omitempty"`
	Body        []Block    `json:"conteudo,omitempty"`
	Categories  []Category `json:"categorias,omitempty"`
}

// Category groups articles, many-to-many.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"nome"`
	Slug        Slug   `json:"slug"`
	Description string `json:"descricao,omitempty"`
}

// Block is one portable-text content block. Text blocks carry Style and
// Children; inline image blocks carry Asset/Alt instead.
type Block struct {
	Key      string    `json:"_key"`
	Type     string    `json:"_type"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`

	// Set when Type == "image".
	Asset *AssetRef `json:"asset,omitempty"`
	Alt   string    `json:"alt,omitempty"`
}

// Span is an inline run of text within a block. Marks name either a
// decorator (strong, em, ...) or the key of a MarkDef.
type Span struct {
	Key   string   `json:"_key"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced from span marks, currently only links.
type MarkDef struct {
	Key   string `json:"_key"`
	Type  string `json:"_type"`
	Href  string `json:"href,omitempty"`
	Blank bool   `json:"blank,omitempty"`
}
