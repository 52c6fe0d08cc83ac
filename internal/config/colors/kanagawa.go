package colors

// palette holds the named swatches shared by the Kanagawa presets
var palette = struct {
	sumiInk1, sumiInk3, sumiInk4, sumiInk6           string
	waveBlue1, winterBlue, winterYellow, winterRed   string
	fujiWhite, fujiGray, oniViolet, crystalBlue      string
	springGreen, peachRed, samuraiRed, roninYellow   string
	waveAqua2, dragonBlue                            string
	lotusWhite0, lotusWhite2, lotusWhite3, lotusInk1 string
	lotusGray2, lotusViolet4, lotusGreen, lotusBlue4 string
	lotusRed, lotusAqua, lotusYellow3                string
}{
	sumiInk1:     "#181820",
	sumiInk3:     "#1F1F28",
	sumiInk4:     "#2A2A37",
	sumiInk6:     "#54546D",
	waveBlue1:    "#223249",
	winterBlue:   "#252535",
	winterYellow: "#49443C",
	winterRed:    "#43242B",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	peachRed:     "#FF5D62",
	samuraiRed:   "#E82424",
	roninYellow:  "#FF9E3B",
	waveAqua2:    "#7AA89F",
	dragonBlue:   "#658594",
	lotusWhite0:  "#D5CEA3",
	lotusWhite2:  "#E5DDB0",
	lotusWhite3:  "#F2ECBC",
	lotusInk1:    "#545464",
	lotusGray2:   "#716E61",
	lotusViolet4: "#624C83",
	lotusGreen:   "#6F894E",
	lotusBlue4:   "#4D699B",
	lotusRed:     "#C84053",
	lotusAqua:    "#597B75",
	lotusYellow3: "#DE9800",
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent:     palette.oniViolet,
		Background: palette.sumiInk1,

		Create: palette.springGreen,
		Edit:   palette.crystalBlue,
		Delete: palette.peachRed,

		CardBorder:     palette.sumiInk6,
		CardBackground: palette.sumiInk3,
		SelectedBorder: palette.waveAqua2,
		SelectedBg:     palette.waveBlue1,
		ChipBorder:     palette.sumiInk4,
		ChipChecked:    palette.oniViolet,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.oniViolet,
		StatusBarText: palette.fujiWhite,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent:     palette.lotusViolet4,
		Background: palette.lotusWhite3,

		Create: palette.lotusGreen,
		Edit:   palette.lotusBlue4,
		Delete: palette.lotusRed,

		CardBorder:     palette.lotusGray2,
		CardBackground: palette.lotusWhite2,
		SelectedBorder: palette.lotusAqua,
		SelectedBg:     palette.lotusWhite0,
		ChipBorder:     palette.lotusGray2,
		ChipChecked:    palette.lotusViolet4,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray2,
		Normal: palette.lotusInk1,

		InfoFg:    palette.lotusBlue4,
		InfoBg:    palette.lotusWhite2,
		WarningFg: palette.lotusYellow3,
		WarningBg: palette.lotusWhite0,
		ErrorFg:   palette.lotusRed,
		ErrorBg:   palette.lotusWhite0,

		StatusBarBg:   palette.lotusViolet4,
		StatusBarText: palette.lotusWhite3,
	}
}
