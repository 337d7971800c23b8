package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Locator is an XPath expression selecting elements by tag and attribute.
type Locator string

const (
	locatorTemplate = `//td[@class=""]`
	locatorClose    = `"]`
)

// BuildLocator вставляет фрагмент в шаблон перед закрывающей `"]`.
// Фрагмент не проверяется: кривой фрагмент даст пустую выборку позже.
func BuildLocator(value string) Locator {
	idx := strings.Index(locatorTemplate, locatorClose)
	return Locator(locatorTemplate[:idx] + value + locatorTemplate[idx:])
}

var simpleXPath = regexp.MustCompile(`^//([A-Za-z][\w-]*)\[@([\w-]+)="([^"]*)"\]$`)

// CSS translates the //tag[@attr="value"] shape into a CSS attribute selector.
func (l Locator) CSS() (string, error) {
	m := simpleXPath.FindStringSubmatch(string(l))
	if m == nil {
		return "", fmt.Errorf("locator %q is not of the form //tag[@attr=\"value\"]", string(l))
	}
	return fmt.Sprintf(`%s[%s=%s]`, m[1], m[2], strconv.Quote(m[3])), nil
}

func (l Locator) String() string {
	return string(l)
}

// BuildURL добавляет к базовому URL сезон вида "2001-2002/"
func BuildURL(base string, year int) string {
	return base + strconv.Itoa(year) + "-" + strconv.Itoa(year+1) + "/"
}
