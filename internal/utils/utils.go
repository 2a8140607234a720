package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/gocolly/colly/v2"

	"github.com/Aquilabot/KreaPC-Builder/internal/models"
)

var (
	httpURLMatcher     = regexp2.MustCompile(`^https?://[^\s/$.?#][^\s]*$`, regexp2.IgnoreCase)
	leadingIntMatcher  = regexp2.MustCompile(`^\s*([+-]?\d+)`, 0)
	millimetreMatcher  = regexp2.MustCompile(`(\d+(?:\.\d+)?)\s*mm\b`, regexp2.IgnoreCase)
	fanSizeMatcher     = regexp2.MustCompile(`\b(\d{2,3})\s*mm\b`, regexp2.IgnoreCase)
	wattMatcher        = regexp2.MustCompile(`(\d+)\s*W\b`, 0)
	scriptImageCheck   = regexp2.MustCompile(`(?<=src:\s").*(?=")`, 0)
	socketLabelMatcher = regexp2.MustCompile(`^(?:Socket\s+)?(AM\d|LGA\s?\d{3,4}|sTRX\d|TR\d)`, regexp2.IgnoreCase)
	memoryTypeMatcher  = regexp2.MustCompile(`\b(DDR\d)`, regexp2.IgnoreCase)
	portMatcher        = regexp2.MustCompile(`\b(HDMI|DisplayPort|DVI|VGA|USB-C)\b`, regexp2.IgnoreCase)
)

var portTags = map[string]string{
	"hdmi":        "HDMI",
	"displayport": "DisplayPort",
	"dvi":         "DVI",
	"vga":         "VGA",
	"usb-c":       "USB-C",
}

// MaxQuantity bounds every parsed spec quantity. Anything larger is treated
// as unreadable.
const MaxQuantity = 1_000_000

// ParseInt reads the leading integer of s and ignores any unit suffix,
// so "450W", "320 mm" and "65" all parse. Decimals are truncated.
func ParseInt(s string) (int, bool) {
	m, err := leadingIntMatcher.FindStringMatch(s)
	if err != nil || m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m.GroupByNumber(1).String())
	if err != nil || n > MaxQuantity || n < -MaxQuantity {
		return 0, false
	}
	return n, true
}

// ParseAmount converts a spec attribute into a quantity, keeping the
// fraction of numeric values. Strings go through ParseInt.
func ParseAmount(v models.SpecValue) (float64, bool) {
	switch v.Kind() {
	case models.SpecNumber:
		f, _ := v.Float()
		if math.IsNaN(f) || math.Abs(f) > MaxQuantity {
			return 0, false
		}
		return f, true
	case models.SpecString:
		n, ok := ParseInt(v.Raw())
		return float64(n), ok
	default:
		return 0, false
	}
}

// ParseQuantity converts a spec attribute into whole units. Every rule that
// reads a numeric spec goes through here or ParseAmount.
func ParseQuantity(v models.SpecValue) (int, bool) {
	f, ok := ParseAmount(v)
	if !ok {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

func MatchHTTPURL(URL string) bool {
	match, _ := httpURLMatcher.MatchString(URL)

	return match
}

// ExtractMillimetres returns the first "<n> mm" figure in text, rounded down.
func ExtractMillimetres(text string) (int, bool) {
	m, err := millimetreMatcher.FindStringMatch(text)
	if err != nil || m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m.GroupByNumber(1).String(), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// ExtractWatts returns the first "<n> W" figure in text.
func ExtractWatts(text string) (int, bool) {
	m, err := wattMatcher.FindStringMatch(text)
	if err != nil || m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m.GroupByNumber(1).String())
	return n, err == nil
}

// FanSizeTag turns "120 mm" into the size class tag "120mm".
func FanSizeTag(text string) string {
	m, err := fanSizeMatcher.FindStringMatch(text)
	if err != nil || m == nil {
		return ""
	}
	return m.GroupByNumber(1).String() + "mm"
}

// SocketTag normalizes a socket label ("LGA 1700", "Socket AM4") to the tag
// used by the catalog ("LGA1700", "AM4").
func SocketTag(text string) string {
	m, err := socketLabelMatcher.FindStringMatch(strings.TrimSpace(text))
	if err != nil || m == nil {
		return ""
	}
	return strings.ToUpper(strings.ReplaceAll(m.GroupByNumber(1).String(), " ", ""))
}

// MemoryTypeTag finds the DDR generation in labels such as "DDR4-3200".
func MemoryTypeTag(text string) string {
	m, err := memoryTypeMatcher.FindStringMatch(text)
	if err != nil || m == nil {
		return ""
	}
	return strings.ToUpper(m.GroupByNumber(1).String())
}

// PortTags lists the display connectors named in text, once each, in the
// order they appear.
func PortTags(text string) []string {
	var tags []string
	seen := map[string]bool{}
	for _, match := range Regexp2SearchAllText(portMatcher, text) {
		tag := portTags[strings.ToLower(match)]
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

func FindScriptImages(script *colly.HTMLElement, images []string) []string {
	for _, match := range Regexp2SearchAllText(scriptImageCheck, script.Text) {
		if strings.HasPrefix(match, "//") {
			match = "https:" + match
		}
		images = append(images, match)
	}
	return images
}

func Regexp2SearchAllText(re *regexp2.Regexp, s string) []string {
	var matches []string
	m, _ := re.FindStringMatch(s)
	for m != nil {
		matches = append(matches, m.String())
		m, _ = re.FindNextMatch(m)
	}
	return matches
}
