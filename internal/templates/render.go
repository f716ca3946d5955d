package templates

import "strings"

// Render substitutes each declared placeholder marker in the template body.
//
// A placeholder with no value (or an empty one) keeps its bracketed marker so
// it stays visible in the output. Names are matched as literal text and the
// body is scanned once, so substituted values are never matched again.
// Keys in values that the template does not declare are ignored.
func Render(tmpl *Template, values map[string]string) string {
	if tmpl == nil {
		return ""
	}
	if len(tmpl.Placeholders) == 0 {
		return tmpl.Body
	}

	pairs := make([]string, 0, len(tmpl.Placeholders)*2)
	for _, name := range tmpl.Placeholders {
		marker := Marker(name)
		value := values[name]
		if value == "" {
			value = marker
		}
		pairs = append(pairs, marker, value)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl.Body)
}

// Unfilled returns the declared placeholders that have no value in values,
// in declaration order.
func Unfilled(tmpl *Template, values map[string]string) []string {
	if tmpl == nil {
		return nil
	}
	var missing []string
	for _, name := range tmpl.Placeholders {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
