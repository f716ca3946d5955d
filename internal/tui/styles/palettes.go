package styles

// DefaultTheme is the baseline palette: slate panels with a violet accent.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#0F172A",
		Panel:      "#1E1B4B",
		Text:       "#E2E8F0",
		TextMuted:  "#94A3B8",
		Border:     "#334155",
		Accent:     "#A78BFA",
		Focus:      "#60A5FA",
		Selection:  "#312E81",
		Badge:      "#3B3561",
		BadgeText:  "#F8FAFC",
		Success:    "#34D399",
		Warning:    "#FBBF24",
		Error:      "#F87171",
		Info:       "#60A5FA",
	},
}

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: "#000000",
		Panel:      "#0A0A0A",
		Text:       "#FFFFFF",
		TextMuted:  "#C0C0C0",
		Border:     "#FFFFFF",
		Accent:     "#00A2FF",
		Focus:      "#FFD400",
		Selection:  "#303030",
		Badge:      "#FFFFFF",
		BadgeText:  "#000000",
		Success:    "#00FF5A",
		Warning:    "#FFB000",
		Error:      "#FF4040",
		Info:       "#66CCFF",
	},
}
