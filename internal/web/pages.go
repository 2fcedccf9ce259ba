package web

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.906 generate

import (
	"strconv"
	"strings"

	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/parser"
)

const siteName = "GameHub"

const homeDescription = "Discover games, genres and trailers."

// metaDescriptionLength matches what search engines display
const metaDescriptionLength = 160

// yearOptions is how many years back the list filter offers
const yearOptions = 30

// pageMeta is the document head of a page
type pageMeta struct {
	Title       string
	Description string
	Image       string
}

func gameMeta(g *models.GameDetail) pageMeta {
	return pageMeta{
		Title:       g.Name + " - " + siteName,
		Description: parser.Summarize(g.DescriptionRaw, metaDescriptionLength),
		Image:       g.ImageURL,
	}
}

func genreMeta(g *models.Genre) pageMeta {
	return pageMeta{
		Title:       "Best " + g.Name + " Games",
		Description: "Top rated " + g.Name + " games including " + formatCount(g.GamesCount) + " titles.",
		Image:       g.ImageURL,
	}
}

func gameURL(id int) string {
	return "/games/" + strconv.Itoa(id)
}

func genreURL(slug string) string {
	return "/genres/" + slug
}

// sortLabel capitalizes a sort key for the filter form
func sortLabel(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// yearChoices lists the filterable years, newest first
func yearChoices(currentYear int) []string {
	years := make([]string, 0, yearOptions)
	for y := currentYear; y > currentYear-yearOptions; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// splitParagraphs breaks plain text on newlines, dropping blank lines
func splitParagraphs(text string) []string {
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph = strings.TrimSpace(paragraph); paragraph != "" {
			out = append(out, paragraph)
		}
	}
	return out
}
