package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase capitalizes the first letter of every whitespace-separated word
// and lower-cases the rest of it. Words are joined with a single space.
//
//	TitleCase("kode supplier") // "Kode Supplier"
//	TitleCase("idMSupplier")   // "Idmsupplier"
func TitleCase(s string) string {
	if s == "" {
		return s
	}
	upper, lower := cases.Upper(language.Und), cases.Lower(language.Und)
	words := strings.Fields(s)
	for i, w := range words {
		_, n := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:n]) + lower.String(w[n:])
	}
	return strings.Join(words, " ")
}

// BindParamName returns the name of the query placeholder bound to the field.
func BindParamName(name string) string {
	return strings.ToUpper(name)
}

// pascal upper-cases the first letter and keeps the rest untouched.
func pascal(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// humanize turns a camel-case member name into words ("noTelepon" -> "No Telepon").
func humanize(s string) string {
	return TitleCase(strings.ReplaceAll(inflect.Underscore(s), "_", " "))
}

// methodSuffix is the title-cased name with the word separators removed,
// used in method names such as Set<Suffix>AndLoadDB.
func methodSuffix(s string) string {
	return strings.ReplaceAll(TitleCase(s), " ", "")
}

// The naming rules applied to one schema field.
func memberName(s string) string    { return s }
func getterName(s string) string    { return "get" + pascal(s) }
func setterName(s string) string    { return "set" + pascal(s) }
func validatorName(s string) string { return "validate" + pascal(s) }
func lookupParam(s string) string   { return strings.ToLower(s) }

// quote returns s as a C++ string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// expand substitutes the message placeholders.
func expand(msg string, vars map[string]string) string {
	if !strings.Contains(msg, "{") {
		return msg
	}
	oldnew := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		oldnew = append(oldnew, "{"+k+"}", v)
	}
	return strings.NewReplacer(oldnew...).Replace(msg)
}
