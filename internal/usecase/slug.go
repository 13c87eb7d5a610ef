package usecase

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

const slugSuffixLen = 5

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify приводит имя магазина к URL-безопасному виду:
// строчные буквы, цифры и дефисы, без дефисов по краям.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return slug
}

// NewSlug строит slug магазина: slugify(имя) + случайный суффикс.
// Суффикс делает коллизию практически невозможной; единичный конфликт
// уникальности обрабатывается повторной генерацией на уровне usecase.
func NewSlug(name string) string {
	base := Slugify(name)
	if base == "" {
		base = "store"
	}

	return base + "-" + randToken(slugSuffixLen)
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randToken возвращает случайную base36-строку длины n.
func randToken(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(tokenAlphabet[rand.IntN(len(tokenAlphabet))])
	}

	return b.String()
}
