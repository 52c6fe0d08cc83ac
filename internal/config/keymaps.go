package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem       string `yaml:"add_item"`
	ImportFile    string `yaml:"import_file"`
	AddFromURL    string `yaml:"add_from_url"`
	EditItem      string `yaml:"edit_item"`
	DeleteItem    string `yaml:"delete_item"`
	ShareItem     string `yaml:"share_item"`
	MoveItemUp    string `yaml:"move_item_up"`
	MoveItemDown  string `yaml:"move_item_down"`
	ToggleReorder string `yaml:"toggle_reorder"`

	// List
	Search string `yaml:"search"`
	Sort   string `yaml:"sort"`

	// Navigation
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:       "a",
		ImportFile:    "i",
		AddFromURL:    "u",
		EditItem:      "e",
		DeleteItem:    "d",
		ShareItem:     "s",
		MoveItemUp:    "K",
		MoveItemDown:  "J",
		ToggleReorder: "r",

		// List
		Search: "/",
		Sort:   "S",

		// Navigation
		PrevItem: "k",
		NextItem: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddItem == "" {
		k.AddItem = defaults.AddItem
	}
	if k.ImportFile == "" {
		k.ImportFile = defaults.ImportFile
	}
	if k.AddFromURL == "" {
		k.AddFromURL = defaults.AddFromURL
	}
	if k.EditItem == "" {
		k.EditItem = defaults.EditItem
	}
	if k.DeleteItem == "" {
		k.DeleteItem = defaults.DeleteItem
	}
	if k.ShareItem == "" {
		k.ShareItem = defaults.ShareItem
	}
	if k.MoveItemUp == "" {
		k.MoveItemUp = defaults.MoveItemUp
	}
	if k.MoveItemDown == "" {
		k.MoveItemDown = defaults.MoveItemDown
	}
	if k.ToggleReorder == "" {
		k.ToggleReorder = defaults.ToggleReorder
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.Sort == "" {
		k.Sort = defaults.Sort
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
