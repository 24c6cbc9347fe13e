package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		HighlightLastPlayed:  true,
		UseGridLines:         true,
		Colors: ConfigColors{
			GridColor:     244,
			XColor:        109,
			OColor:        216,
			CursorColorBG: 60,
			WinColorBG:    22,
			LastPlayedFG:  255,
		},
		Symbols: ConfigSymbols{
			X:     'X',
			O:     'O',
			Empty: ' ',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		MoveList: MoveListConfig{
			Order:      OrderAscending,
			ShowCoords: true,
		},
	}
}
