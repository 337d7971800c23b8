package scraper

// Сайты с поддерживаемой двухколоночной раскладкой
var supportedSites = map[string]bool{
	"nba": true,
}

// Known lists every identifier the command line accepts.
var Known = []string{"nba", "other"}

func Supported(site string) bool {
	return supportedSites[site]
}
