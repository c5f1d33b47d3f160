// Package sku genera códigos SKU a partir del nombre de un producto.
// El prefijo es determinístico (útil para agrupar variantes); el sufijo es
// aleatorio para evitar colisiones entre productos con nombres similares.
package sku

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Palabras sin valor descriptivo en nombres de muebles ("Mesa de Centro", "Silla para Comedor").
var stopWords = map[string]bool{
	"de": true, "del": true, "la": true, "el": true, "los": true, "las": true,
	"y": true, "para": true, "con": true, "en": true,
}

// removeDiacritics elimina tildes y diéresis: "Línea Nórdica" -> "Linea Nordica".
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate produce un SKU a partir del nombre del producto: prefijo de hasta
// tres segmentos de tres letras más un sufijo aleatorio de cuatro caracteres.
// "Sofá Línea Nórdica" -> "SOF-LIN-NOR-3F2A".
func Generate(productName string) (string, error) {
	prefix, err := Prefix(productName)
	if err != nil {
		return "", err
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
	return prefix + "-" + suffix, nil
}

// Prefix devuelve la parte determinística del SKU para un nombre dado.
func Prefix(productName string) (string, error) {
	name := strings.TrimSpace(productName)
	if name == "" {
		return "", fmt.Errorf("sku: nombre de producto vacío")
	}
	plain, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		// La transformación solo falla con entradas no normalizables; usar el nombre tal cual.
		plain = name
	}

	var segments []string
	for _, word := range strings.Fields(plain) {
		lower := strings.ToLower(word)
		if stopWords[lower] {
			continue
		}
		letters := keepLetters(word)
		if letters == "" {
			continue
		}
		if len(letters) > 3 {
			letters = letters[:3]
		}
		segments = append(segments, strings.ToUpper(letters))
		if len(segments) == 3 {
			break
		}
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("sku: el nombre %q no contiene letras utilizables", productName)
	}
	return strings.Join(segments, "-"), nil
}

func keepLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
