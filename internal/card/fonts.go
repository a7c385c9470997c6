package card

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet holds the fixed faces the layout uses. All faces come from the Go
// font family embedded via x/image, so rendering never touches the host's
// font directories and output stays identical across machines.
type fontSet struct {
	brand    font.Face // header title
	sub      font.Face // header subtitle
	dateBig  font.Face // header date
	dateTime font.Face // header time
	banner   font.Face // advisory banner
	zoneName font.Face // zone block heading
	statLbl  font.Face // WIND / SEAS labels
	statVal  font.Face // stat values
	statNote font.Face // gusts / wave detail notes
	secTitle font.Face // bottom row section titles
	secVal   font.Face // bottom row values
	secNote  font.Face // bottom row notes
	synopsis font.Face // synopsis body
	tag      font.Face // advisory tag pills
	footer   font.Face // footer source line
	footURL  font.Face // footer site URL
}

func loadFonts() (*fontSet, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}

	face := func(f *truetype.Font, size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{Size: size})
	}

	return &fontSet{
		brand:    face(bold, 36),
		sub:      face(regular, 13),
		dateBig:  face(bold, 48),
		dateTime: face(bold, 16),
		banner:   face(bold, 15),
		zoneName: face(bold, 13),
		statLbl:  face(regular, 10),
		statVal:  face(bold, 20),
		statNote: face(regular, 11),
		secTitle: face(bold, 11),
		secVal:   face(bold, 18),
		secNote:  face(regular, 11),
		synopsis: face(regular, 13),
		tag:      face(bold, 11),
		footer:   face(regular, 11),
		footURL:  face(bold, 17),
	}, nil
}
