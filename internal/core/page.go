package core

import "fmt"

type Variant int

const (
	VariantLinked Variant = iota
	VariantPlain
)

func (v Variant) String() string {
	switch v {
	case VariantLinked:
		return "linked"
	case VariantPlain:
		return "plain"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

type PageMeta struct {
	Title       string
	Description string
	OGTitle     string
}

type PageConfig struct {
	Meta     PageMeta
	Lang     string
	Heading  string
	Subtitle string
	Variant  Variant
}

func DefaultPageConfig() PageConfig {
	return PageConfig{
		Meta: PageMeta{
			Title:       "О проекте",
			Description: "Фудграм - Технологии",
			OGTitle:     "О проекте",
		},
		Lang:     "ru",
		Heading:  "Технологии",
		Subtitle: "Технологии, которые применены в этом проекте:",
		Variant:  VariantLinked,
	}
}
