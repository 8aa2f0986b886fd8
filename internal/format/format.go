// Package format derives display names and stylesheet class strings from
// base icon names.
package format

import (
	"fmt"
	"strings"

	"iconcatalog/internal/core"
)

// classPrefix is the framework class per variant type. The per-icon class
// always uses the "la-" prefix regardless of variant.
var classPrefix = map[string]string{
	core.VariantSolid:   "las",
	core.VariantRegular: "lar",
	core.VariantBrand:   "lab",
}

// specialCases substitutes whole name segments in display names. An empty
// replacement drops the segment entirely rather than emitting a blank word,
// which is how the trailing outline marker disappears from display names.
var specialCases = map[string]string{
	"alt":   "Alternative",
	"o":     "",
	"usa":   "USA",
	"usd":   "USD",
	"eur":   "EUR",
	"gbp":   "GBP",
	"jpy":   "JPY",
	"krw":   "KRW",
	"inr":   "INR",
	"cny":   "CNY",
	"btc":   "BTC",
	"eth":   "ETH",
	"id":    "ID",
	"api":   "API",
	"url":   "URL",
	"html":  "HTML",
	"css":   "CSS",
	"js":    "JavaScript",
	"php":   "PHP",
	"sql":   "SQL",
	"xml":   "XML",
	"json":  "JSON",
	"pdf":   "PDF",
	"csv":   "CSV",
	"rss":   "RSS",
	"wifi":  "WiFi",
	"usb":   "USB",
	"gps":   "GPS",
	"sms":   "SMS",
	"ui":    "UI",
	"ux":    "UX",
	"seo":   "SEO",
	"cms":   "CMS",
	"crm":   "CRM",
	"erp":   "ERP",
	"aws":   "AWS",
	"cdn":   "CDN",
	"dns":   "DNS",
	"vpn":   "VPN",
	"ssh":   "SSH",
	"ftp":   "FTP",
	"http":  "HTTP",
	"https": "HTTPS",
}

// DisplayName turns a base icon name into a human-readable display string.
// Segments are substituted through the special-case table or capitalized;
// segments substituted to the empty string are dropped.
func DisplayName(baseName string) string {
	words := strings.Split(baseName, "-")
	processed := make([]string, 0, len(words))

	for _, word := range words {
		if replacement, ok := specialCases[word]; ok {
			if replacement != "" {
				processed = append(processed, replacement)
			}
			continue
		}
		processed = append(processed, capitalize(word))
	}

	return strings.Join(processed, " ")
}

// CSSClass builds the two-token stylesheet class string for a base name and
// variant type. An unknown variant type is a logic fault upstream and is
// reported as an error rather than silently defaulted.
func CSSClass(baseName, iconType string) (string, error) {
	prefix, ok := classPrefix[iconType]
	if !ok {
		return "", fmt.Errorf("unknown icon type %q for %q", iconType, baseName)
	}
	return fmt.Sprintf("%s la-%s", prefix, baseName), nil
}

// capitalize upper-cases only the first byte of a word, leaving the rest
// untouched.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
