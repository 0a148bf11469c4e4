// Package colors maps the habit color palette between the names used by
// clients and the hex values persisted by the relational store.
package colors

import "strings"

// Palette color names.
const (
	Red    = "red"
	Blue   = "blue"
	Green  = "green"
	Yellow = "yellow"
	Purple = "purple"
	Pink   = "pink"
	Orange = "orange"
	Cyan   = "cyan"
)

// Default is used for every unrecognized name or hex value.
const Default = Blue

var nameToHex = map[string]string{
	Red:    "#ef4444",
	Blue:   "#3b82f6",
	Green:  "#22c55e",
	Yellow: "#eab308",
	Purple: "#a855f7",
	Pink:   "#ec4899",
	Orange: "#f97316",
	Cyan:   "#06b6d4",
}

var hexToName = func() map[string]string {
	m := make(map[string]string, len(nameToHex))
	for name, hex := range nameToHex {
		m[hex] = name
	}
	return m
}()

// Names returns the palette names in display order.
func Names() []string {
	return []string{Red, Blue, Green, Yellow, Purple, Pink, Orange, Cyan}
}

// Normalize returns the palette name matching name, or Default.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if _, ok := nameToHex[n]; ok {
		return n
	}
	return Default
}

// ToHex encodes a palette name as hex. Unknown names encode to the default color.
func ToHex(name string) string {
	return nameToHex[Normalize(name)]
}

// FromHex decodes a hex value to a palette name. Unknown values decode to Default.
func FromHex(hex string) string {
	h := strings.ToLower(strings.TrimSpace(hex))
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if name, ok := hexToName[h]; ok {
		return name
	}
	return Default
}
