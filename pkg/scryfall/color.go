package scryfall

// Color is a color symbol.
type Color string

// The colors used by the API. [ColorColorless] only appears in symbols
// and in produced mana.
const (
	ColorWhite     = Color("W")
	ColorBlue      = Color("U")
	ColorBlack     = Color("B")
	ColorRed       = Color("R")
	ColorGreen     = Color("G")
	ColorColorless = Color("C")
)
