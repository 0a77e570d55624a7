package core

import (
	"bytes"
	"fmt"
	"html/template"
)

type pageItem struct {
	Label string
	Href  string
}

type pageData struct {
	Meta     PageMeta
	Lang     string
	Heading  string
	Subtitle string
	Items    []pageItem
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Meta.Title}}</title>
    <meta name="description" content="{{.Meta.Description}}" />
    <meta property="og:title" content="{{.Meta.OGTitle}}" />
  </head>
  <body>
    <main class="main">
      <div class="container">
        <h1 class="title">{{.Heading}}</h1>
        <div class="content">
          <div>
            <h2 class="subtitle">{{.Subtitle}}</h2>
            <div class="text">
              <ul class="textItem">
{{- range .Items}}
                <li class="textItem">{{if .Href}}<a href="{{.Href}}" class="textLink">{{.Label}}</a>{{else}}{{.Label}}{{end}}</li>
{{- end}}
              </ul>
            </div>
          </div>
        </div>
      </div>
    </main>
  </body>
</html>
`))

func RenderPage(config PageConfig, catalog Catalog) (string, error) {
	if catalog.Len() == 0 {
		return "", ErrEmptyCatalog
	}

	data := pageData{
		Meta:     config.Meta,
		Lang:     config.Lang,
		Heading:  config.Heading,
		Subtitle: config.Subtitle,
		Items:    make([]pageItem, 0, catalog.Len()),
	}
	if data.Lang == "" {
		data.Lang = "ru"
	}

	for _, tech := range catalog.techs {
		item := pageItem{Label: tech.Label()}
		if config.Variant == VariantLinked && tech.HasLink() {
			item.Href = tech.Link
		}
		data.Items = append(data.Items, item)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}
