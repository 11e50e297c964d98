package content

import "fmt"

// GROQ queries, one per page section. Projections mirror what each view
// model actually renders; asset references are expanded inline so the image
// resolver never needs a second round trip.

const (
	// QueryLatestArticles feeds the home-page news strip.
	QueryLatestArticles = `*[_type == "noticia"]{
  _id, titulo, slug, dataDePublicacao, imagemDeCapa{alt, asset->}, resumo
} | order(dataDePublicacao desc) [0...3]`

	// QueryNextEvent selects the soonest race still ahead of $hojeISO.
	QueryNextEvent = `*[_type == "evento" && (status == "agendado" || status == "adiado") && dataDoEvento >= $hojeISO] | order(dataDoEvento asc) [0]{
  _id, nomeDoEvento, dataDoEvento, circuito, cidade, status
}`

	// QueryAlbumTeasers selects albums usable as home-page cards, which
	// requires both a cover image and a slug.
	QueryAlbumTeasers = `*[_type == "albumDeFotos" && defined(imagemDeCapa.asset) && defined(slug.current)]{
  _id, titulo, slug, imagemDeCapa{alt, asset->}
} | order(dataDoAlbum desc, _createdAt desc) [0...6]`

	// QueryAboutTeaser projects just enough of the singleton for the home hero.
	QueryAboutTeaser = `*[_type == "paginaSobre"][0]{
  _id, titulo, imagemPrincipal{alt, asset->}
}`

	// QueryCategories lists all article categories for the listing filter.
	QueryCategories = `*[_type == "categoria"]{_id, nome, slug} | order(nome asc)`

	// QueryArticleBySlug is the news detail query, body expanded.
	QueryArticleBySlug = `*[_type == "noticia" && slug.current == $slug][0]{
  _id, titulo, slug, dataDePublicacao, imagemDeCapa{alt, asset->}, resumo,
  conteudo[]{
    ...,
    _type == "image" => { alt, asset-> },
    markDefs[]{ ..., _type == "link" => { "href": @.href, "blank": @.blank } }
  },
  categorias[]->{_id, nome, slug}
}`

	// QueryEvents returns the full season calendar, newest first. The view
	// layer partitions into upcoming and past.
	QueryEvents = `*[_type == "evento"]{
  _id, nomeDoEvento, dataDoEvento, circuito, cidade, status, resultado, linkParaMateria
} | order(dataDoEvento desc)`

	// QueryAlbums lists every album for the gallery index.
	QueryAlbums = `*[_type == "albumDeFotos"]{
  _id, titulo, slug, dataDoAlbum, imagemDeCapa{alt, asset->}, descricao
} | order(dataDoAlbum desc, _createdAt desc)`

	// QueryAlbumBySlug is the album detail query with its ordered photos.
	QueryAlbumBySlug = `*[_type == "albumDeFotos" && slug.current == $slug][0]{
  _id, titulo, slug, dataDoAlbum, descricao,
  "fotos": fotos[]{ _key, legenda, alt, asset->{_id, url} }
}`

	// QueryActiveSponsors lists displayable sponsors in display order.
	QueryActiveSponsors = `*[_type == "patrocinador" && ativo == true]{
  _id, nome, categoria, logo{alt, asset->}, imagemDeFundo{alt, asset->},
  descricaoCurta, descricaoCompleta, link, ordem, ativo, corGradiente,
  inicioParceria, fimParceria
} | order(ordem asc, nome asc)`

	// QueryAboutPage is the full biography singleton.
	QueryAboutPage = `*[_type == "paginaSobre"][0]{
  _id, titulo, imagemPrincipal{alt, asset->},
  biografia[]{
    ...,
    _type == "image" => { alt, asset-> },
    markDefs[]{ ..., _type == "link" => { "href": @.href, "blank": @.blank } }
  },
  conquistas[]{_key, ano, descricao}
}`

	// QueryContactSettings is the contact singleton.
	QueryContactSettings = `*[_type == "configuracoesContato"][0]{
  _id, emailPrincipal, telefonePrincipal, nomeContatoImprensa, emailImprensa
}`
)

// ArticlesPage builds the filtered, sliced listing query and its matching
// count query. The category condition is a fixed fragment referencing the
// $categoriaSlug parameter; the slug value itself is always bound by name,
// never spliced into the query text.
func ArticlesPage(filtered bool) (listQuery, countQuery string) {
	cond := `_type == "noticia"`
	if filtered {
		cond += ` && $categoriaSlug in categorias[]->slug.current`
	}
	listQuery = fmt.Sprintf(`*[%s]{
  _id, titulo, slug, dataDePublicacao, imagemDeCapa{alt, asset->}, resumo
} | order(dataDePublicacao desc) [$offset...$offset + $limit]`, cond)
	countQuery = fmt.Sprintf(`count(*[%s])`, cond)
	return listQuery, countQuery
}
