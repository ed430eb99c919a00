package itinerary

import (
	"bytes"
	"html/template"
)

// templatePath is a package variable so tests can point at a fixture.
var templatePath = "templates/itinerary.html"

var templateFuncs = template.FuncMap{
	// seq drives star-rating loops in the template
	"seq": func(n int) []int {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		return s
	},
}

// RenderHTML templates the document model into the HTML payload the
// rendering process consumes.
func RenderHTML(doc *Document) (string, error) {
	tmpl, err := template.New("itinerary.html").Funcs(templateFuncs).ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
