package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

	// đ/Đ không tách dấu được qua NFD
	strokeLetters = strings.NewReplacer("đ", "d", "Đ", "D", "ł", "l", "Ł", "L", "ø", "o", "Ø", "O")
)

// GenerateSlug: "Đèn năng lượng cho Trường Sơn!" → "den-nang-luong-cho-truong-son"
func GenerateSlug(input string) string {
	lower := strings.ToLower(RemoveDiacritics(input))
	return strings.Trim(nonSlugChars.ReplaceAllString(lower, "-"), "-")
}

// RemoveDiacritics bỏ dấu: "Nguyễn Ánh" → "Nguyen Anh", "Crème brûlée" → "Creme brulee"
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strokeLetters.Replace(input))
	if err != nil {
		return input
	}
	return out
}
