package hcltmpl

import (
	"go/token"
	"path"
	"strings"
	"unicode"
)

// TypeName derives the exported Go type name for a template path:
// "views/home/index.tmpl" becomes "ViewsHomeIndex".
func TypeName(relativePath string) string {
	p := strings.TrimSuffix(relativePath, path.Ext(relativePath))

	var b strings.Builder
	upper := true
	for _, r := range p {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}

	name := b.String()
	if name == "" {
		return ""
	}
	if first := []rune(name)[0]; !unicode.IsLetter(first) {
		name = "T" + name
	}
	return name
}

func isIdentifier(s string) bool {
	return token.IsIdentifier(s) && !token.IsKeyword(s)
}
