package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.Und)

// isSeparator reports whether r is one of the word-boundary characters
// named explicitly: ':', '-', '/', '.', '_', and any whitespace.
func isSeparator(r rune) bool {
	switch r {
	case ':', '-', '/', '.', '_':
		return true
	default:
		return r == ' ' || r == '\t' || r == '\n'
	}
}

// words splits s into its constituent words at every separator
// character and wherever a lowercase letter or digit is followed by an
// uppercase letter ("UserProfile" -> "User", "Profile"), dropping empty
// words produced by runs of separators.
func words(s string) []string {
	fields := strings.FieldsFunc(s, isSeparator)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		start := 0
		for i := 1; i < len(f); i++ {
			prev := f[i-1]
			if f[i] >= 'A' && f[i] <= 'Z' && ((prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9')) {
				out = append(out, f[start:i])
				start = i
			}
		}
		if start < len(f) {
			out = append(out, f[start:])
		}
	}
	return out
}

// ToPascalCase joins s's words with each word title-cased and no
// separator, e.g. "user_profile" -> "UserProfile", "api-client" ->
// "ApiClient".
func ToPascalCase(s string) string {
	ws := words(s)
	var b strings.Builder
	for _, w := range ws {
		b.WriteString(titler.String(w))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with the first word lowercased, e.g.
// "user_profile" -> "userProfile".
func ToCamelCase(s string) string {
	ws := words(s)
	var b strings.Builder
	for i, w := range ws {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
		} else {
			b.WriteString(titler.String(w))
		}
	}
	return b.String()
}

// ToSnakeCase joins s's words, lowercased, separated by underscores,
// e.g. "UserProfile" -> "user_profile".
func ToSnakeCase(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

// ToKebabCase is ToSnakeCase with hyphens instead of underscores.
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

// TypeName renders s as a type identifier: UpperCamelCase.
func TypeName(s string) string { return ToPascalCase(s) }

// FieldName renders s as a field or parameter identifier: snake_case.
func FieldName(s string) string { return ToSnakeCase(s) }

// EnumVariantName renders s as an enum variant identifier:
// UpperCamelCase.
func EnumVariantName(s string) string { return ToPascalCase(s) }
