package checksum

import (
	"crypto/sha256"
	"fmt"
	"strconv"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateRowHash генерирует SHA256 хеш строки таблицы
// Формула: SHA256(site|name|salary|season)
func (g *Generator) GenerateRowHash(site, name, salary string, season int) string {
	content := fmt.Sprintf("%s|%s|%s|%s", site, name, salary, strconv.Itoa(season))

	hash := sha256.Sum256([]byte(content))

	return fmt.Sprintf("%x", hash)
}
