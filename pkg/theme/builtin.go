package theme

// registerBuiltins installs the shipped palettes. "default" must exist;
// Get falls back to it.
func registerBuiltins() {
	Register(defaultTheme())
	Register(lightTheme())
	Register(monoTheme())
}

func defaultTheme() Theme {
	return Theme{
		Name: "default",

		Background:  "#1a1b26",
		Foreground:  "#c0caf5",
		Dim:         "#565f89",
		Accent:      "#7C3AED",
		Border:      "#6B7280",
		BorderFocus: "#7C3AED",
		Title:       "#A78BFA",
		HelpKey:     "#A78BFA",
		HelpDesc:    "#9CA3AF",

		LightCone:      "#FFD700",
		ConeFill:       "#3A3520",
		Axis:           "#C0CAF5",
		Grid:           "#2F3549",
		ShearAxis:      "#F7768E",
		Simultaneity:   "#703A47",
		ConstPosition:  "#4A3A56",
		Worldline:      "#F7768E",
		RestWorldline:  "#7AA2F7",
		EventColor:     "#9ECE6A",
		EventLine:      "#5A7040",
		StationaryText: "#C0CAF5",
		MovingText:     "#F7768E",

		SliderFill:  "#64B5F6",
		SliderThumb: "#FFD54F",
		ClockProper: "#F7768E",
		ClockCoord:  "#7AA2F7",
		RulerColor:  "#9ECE6A",
		Blueshift:   "#64B5F6",
		Redshift:    "#F44336",
	}
}

func lightTheme() Theme {
	t := defaultTheme()
	t.Name = "light"
	t.Background = "#FAFAFA"
	t.Foreground = "#1F2328"
	t.Dim = "#6B7280"
	t.Axis = "#1F2328"
	t.Grid = "#D1D5DB"
	t.ConeFill = "#F3E8B0"
	t.Simultaneity = "#E8B3BE"
	t.ConstPosition = "#D9C8E8"
	t.EventLine = "#BBD39A"
	t.StationaryText = "#1F2328"
	return t
}

// monoTheme is the low-color fallback for terminals without true color;
// the render path still emits hex escapes, but shades of gray degrade
// gracefully under 256-color quantization.
func monoTheme() Theme {
	return Theme{
		Name: "mono",

		Background:  "#000000",
		Foreground:  "#e0e0e0",
		Dim:         "#707070",
		Accent:      "#ffffff",
		Border:      "#707070",
		BorderFocus: "#ffffff",
		Title:       "#ffffff",
		HelpKey:     "#ffffff",
		HelpDesc:    "#909090",

		LightCone:      "#ffffff",
		ConeFill:       "#303030",
		Axis:           "#e0e0e0",
		Grid:           "#303030",
		ShearAxis:      "#b0b0b0",
		Simultaneity:   "#505050",
		ConstPosition:  "#505050",
		Worldline:      "#ffffff",
		RestWorldline:  "#c0c0c0",
		EventColor:     "#ffffff",
		EventLine:      "#808080",
		StationaryText: "#e0e0e0",
		MovingText:     "#b0b0b0",

		SliderFill:  "#c0c0c0",
		SliderThumb: "#ffffff",
		ClockProper: "#ffffff",
		ClockCoord:  "#909090",
		RulerColor:  "#e0e0e0",
		Blueshift:   "#d0d0d0",
		Redshift:    "#909090",
	}
}
