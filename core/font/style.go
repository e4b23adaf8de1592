package font

import (
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
)

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = filepath.Base(fontfilename)
	ext := filepath.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	} else if strings.Contains(fontfilename, "oblique") {
		style = xfont.StyleOblique
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// StyleName returns a lower case, human readable name for a style.
func StyleName(style xfont.Style) string {
	switch style {
	case xfont.StyleItalic:
		return "italic"
	case xfont.StyleOblique:
		return "oblique"
	}
	return "normal"
}

// WeightName returns a lower case, human readable name for a weight,
// following CSS naming.
func WeightName(weight xfont.Weight) string {
	switch weight {
	case xfont.WeightThin:
		return "thin"
	case xfont.WeightExtraLight:
		return "extralight"
	case xfont.WeightLight:
		return "light"
	case xfont.WeightMedium:
		return "medium"
	case xfont.WeightSemiBold:
		return "semibold"
	case xfont.WeightBold:
		return "bold"
	case xfont.WeightExtraBold:
		return "extrabold"
	case xfont.WeightBlack:
		return "black"
	}
	return "regular"
}
