package normalize

import (
	"regexp"
	"strings"

	"github.com/MegandM/web-scrape/internal/config"
)

var spaces = regexp.MustCompile(`\s+`)

type Normalizer struct {
	cfg config.NormalizeConfig
}

func NewNormalizer(cfg config.NormalizeConfig) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Enabled сообщает, включена ли хоть одна чистка
func (n *Normalizer) Enabled() bool {
	return n.cfg.TrimNBSP || n.cfg.CollapseSpaces
}

// Cell чистит текст одной ячейки таблицы
func (n *Normalizer) Cell(text string) string {
	if n.cfg.TrimNBSP {
		// Заменяем NBSP (\u00A0) на обычный пробел
		text = strings.ReplaceAll(text, "\u00A0", " ")
	}

	if n.cfg.CollapseSpaces {
		text = spaces.ReplaceAllString(text, " ")
	}

	return strings.TrimSpace(text)
}

// Func returns Cell when any cleaning is enabled, nil otherwise,
// so disabled normalisation leaves extracted text untouched.
func (n *Normalizer) Func() func(string) string {
	if !n.Enabled() {
		return nil
	}
	return n.Cell
}
