package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lucasforesti/pilotoapi/content"
	"github.com/lucasforesti/pilotoapi/models"
	"github.com/lucasforesti/pilotoapi/resource"
	"github.com/lucasforesti/pilotoapi/viewmodel"
)

// articleCard is the listing/teaser projection of a news article.
type articleCard struct {
	ID      string `json:"id"`
	Titulo  string `json:"titulo"`
	Slug    string `json:"slug"`
	Data    string `json:"data"`
	DataISO string `json:"dataISO"`
	Imagem  image  `json:"imagem"`
	Resumo  string `json:"resumo,omitempty"`
}

type categoryData struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	Slug string `json:"slug"`
}

type noticiasListData struct {
	Meta       meta                 `json:"meta"`
	Noticias   []articleCard        `json:"noticias"`
	Categorias []categoryData       `json:"categorias"`
	Categoria  *categoryData        `json:"categoria,omitempty"`
	Total      int                  `json:"total"`
	Paginacao  viewmodel.PageWindow `json:"paginacao"`
}

// Noticias returns one page of the news listing, optionally filtered by
// category slug. Query string: categoria, pagina.
func (h *Handler) Noticias(c echo.Context) error {
	ctx := c.Request().Context()
	client := h.contentFor(c)

	categorySlug := c.QueryParam("categoria")
	page, err := strconv.Atoi(c.QueryParam("pagina"))
	if err != nil || page < 1 {
		page = 1
	}

	listQuery, countQuery := content.ArticlesPage(categorySlug != "")
	params := map[string]any{
		"limit":  viewmodel.DefaultPageSize,
		"offset": viewmodel.Offset(page, viewmodel.DefaultPageSize),
	}
	countParams := map[string]any{}
	if categorySlug != "" {
		params["categoriaSlug"] = categorySlug
		countParams["categoriaSlug"] = categorySlug
	}

	var (
		articles   []models.Article
		total      int
		categories []models.Category
	)
	var g resource.Group
	g.Section("noticias", func() error {
		return client.Query(ctx, listQuery, params, &articles)
	})
	g.Section("total", func() error {
		return client.Query(ctx, countQuery, countParams, &total)
	})
	g.Section("categorias", func() error {
		return client.Query(ctx, content.QueryCategories, nil, &categories)
	})
	g.Wait()

	data := noticiasListData{
		Noticias:   make([]articleCard, 0, len(articles)),
		Categorias: make([]categoryData, 0, len(categories)),
		Total:      total,
		Paginacao:  viewmodel.NewPageWindow(page, viewmodel.TotalPages(total, viewmodel.DefaultPageSize)),
	}
	for _, a := range articles {
		data.Noticias = append(data.Noticias, h.articleCard(a))
	}
	for _, cat := range categories {
		cd := categoryData{ID: cat.ID, Nome: cat.Name, Slug: cat.Slug.Current}
		data.Categorias = append(data.Categorias, cd)
		if categorySlug != "" && cd.Slug == categorySlug {
			current := cd
			data.Categoria = &current
		}
	}

	data.Meta = noticiasMeta(data.Categoria, page)
	return c.JSON(http.StatusOK, data)
}

func noticiasMeta(category *categoryData, page int) meta {
	m := meta{
		Title:       "Notícias - " + DriverName,
		Description: "Fique por dentro das últimas notícias e novidades sobre " + DriverName + " na Stock Car.",
	}
	switch {
	case category != nil:
		m.Title = category.Nome + " - Notícias - " + DriverName
		m.Description = "Notícias da categoria " + category.Nome + " sobre " + DriverName + "."
	case page > 1:
		m.Title = "Página " + strconv.Itoa(page) + " de Notícias - " + DriverName
	}
	return m
}

func (h *Handler) articleCard(a models.Article) articleCard {
	return articleCard{
		ID:      a.ID,
		Titulo:  a.Title,
		Slug:    a.Slug.Current,
		Data:    viewmodel.FormatDate(a.PublishedAt),
		DataISO: a.PublishedAt.UTC().Format("2006-01-02"),
		Imagem:  h.resolveImage(a.CoverImage, 800, 450),
		Resumo:  a.Summary,
	}
}

type noticiaDetalheData struct {
	Meta       meta           `json:"meta"`
	ID         string         `json:"id"`
	Titulo     string         `json:"titulo"`
	Slug       string         `json:"slug"`
	Data       string         `json:"data"`
	Imagem     image          `json:"imagem"`
	Resumo     string         `json:"resumo,omitempty"`
	Conteudo   string         `json:"conteudo"`
	Categorias []categoryData `json:"categorias"`
}

// NoticiaDetalhe returns a single article by slug, body rendered to HTML.
// An unknown slug is the expected not-found condition, not an error.
func (h *Handler) NoticiaDetalhe(c echo.Context) error {
	slug := c.Param("slug")
	client := h.contentFor(c)

	var article models.Article
	err := client.Query(c.Request().Context(), content.QueryArticleBySlug,
		map[string]any{"slug": slug}, &article)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "notícia indisponível")
	}
	if article.ID == "" {
		return c.JSON(http.StatusNotFound, notFoundView{
			Meta:     meta{Title: "Notícia não encontrada - " + DriverName},
			NotFound: true,
			BackLink: "/noticias",
		})
	}

	description := article.Summary
	if description == "" {
		description = "Notícia sobre " + DriverName + "."
	}

	data := noticiaDetalheData{
		Meta:       meta{Title: article.Title + " - " + DriverName, Description: description},
		ID:         article.ID,
		Titulo:     article.Title,
		Slug:       article.Slug.Current,
		Data:       viewmodel.FormatDate(article.PublishedAt),
		Imagem:     h.resolveImage(article.CoverImage, 1200, 675),
		Resumo:     article.Summary,
		Conteudo:   h.renderer.Render(article.Body),
		Categorias: make([]categoryData, 0, len(article.Categories)),
	}
	for _, cat := range article.Categories {
		data.Categorias = append(data.Categorias, categoryData{
			ID: cat.ID, Nome: cat.Name, Slug: cat.Slug.Current,
		})
	}

	return c.JSON(http.StatusOK, data)
}
