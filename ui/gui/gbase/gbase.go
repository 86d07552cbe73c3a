package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	Danger       color.RGBA
	ModalBg      color.RGBA

	BoardLight    color.RGBA
	BoardDark     color.RGBA
	BoardSelected color.RGBA // fill of the selected square
	BoardTarget   color.RGBA // legal-destination marker
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	Danger:       color.RGBA{0xcc, 0x33, 0x33, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},

	BoardLight:    color.RGBA{0xee, 0xee, 0xd2, 0xff},
	BoardDark:     color.RGBA{0xad, 0xd8, 0xe6, 0xff},
	BoardSelected: color.RGBA{0x6a, 0xa8, 0x4f, 0xb0},
	BoardTarget:   color.RGBA{0x22, 0x88, 0xcc, 0x90},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	Danger:       color.RGBA{0xe0, 0x55, 0x55, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},

	BoardLight:    color.RGBA{0x9a, 0x9a, 0x8a, 0xff},
	BoardDark:     color.RGBA{0x4a, 0x6a, 0x7a, 0xff},
	BoardSelected: color.RGBA{0x6a, 0xa8, 0x4f, 0xb0},
	BoardTarget:   color.RGBA{0x2a, 0xa1, 0xd1, 0x90},
}
