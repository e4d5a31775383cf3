package teams

import (
	"strconv"
	"strings"
)

// ContrastTextColor picks black or white text for a hex background.
func ContrastTextColor(background string) string {
	if background == "#000000" {
		return "#FFFFFF"
	}

	hex := strings.TrimPrefix(background, "#")
	if len(hex) < 6 {
		return "#FFFFFF"
	}
	r := channel(hex[0:2])
	g := channel(hex[2:4])
	b := channel(hex[4:6])

	luminance := (0.299*r + 0.587*g + 0.114*b) / 255
	if luminance > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}

func channel(s string) float64 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(v)
}
