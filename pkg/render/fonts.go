package render

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// candidateFonts are tried in order when loading the label typeface.
var candidateFonts = []string{"Arial.ttf", "DejaVuSans.ttf", "LiberationSans-Regular.ttf", "Helvetica.ttf"}

var (
	faceOnce  sync.Once
	labelFace font.Face
)

// loadFace resolves a system font for component labels, falling back to the
// built-in bitmap face when no TrueType font is installed.
func loadFace(size float64) font.Face {
	faceOnce.Do(func() {
		for _, name := range candidateFonts {
			path, err := findfont.Find(name)
			if err != nil {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			f, err := truetype.Parse(data)
			if err != nil {
				continue
			}
			labelFace = truetype.NewFace(f, &truetype.Options{Size: size})
			return
		}
		labelFace = basicfont.Face7x13
	})
	return labelFace
}
