package weather

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the English way.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber renders v in its shortest decimal form with thousands grouping.
// Examples: 20 -> "20", 20.5 -> "20.5", 0 -> "0", 1234.5 -> "1,234.5".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}

	grouped := printer.Sprintf("%d", n)
	if n == 0 && strings.HasPrefix(intPart, "-") && hasFrac {
		grouped = "-" + grouped
	}
	if hasFrac {
		return grouped + "." + fracPart
	}
	return grouped
}
