package worldgen

// Defs is the complete description of a game world as produced by the
// content loader. A Builder turns one of these into a live board.
type Defs struct {
	Game       GameDef
	Passwords  []PasswordDef
	Weapons    []string
	Characters []CharacterDef
}

// GameDef holds board-level settings.
type GameDef struct {
	Title string
	Rows  int
	Cols  int
	Map   string
}

// PasswordDef is a candidate escape password with its hint list. One
// is chosen at random per game and its hints become rune inscriptions.
type PasswordDef struct {
	Word  string
	Hints []string
}

// ResponseDef is one keyword rule in a character's dialogue table.
type ResponseDef struct {
	Keyword string
	Say     string
	Action  string
}

// CharacterDef describes a character to place in the maze.
type CharacterDef struct {
	Name        string
	Description string
	Kind        string // "friend", "enemy" or "neutral"
	BareHands   int    // bare hands damage, enemies only
	Weapon      string // optional stock weapon carried
	UseWeapon   bool   // ready the weapon immediately
	Runes       int    // runes dealt from the bag, if available
	Provider    bool   // hands over items when asked, even while alive
	Responses   []ResponseDef
	Fallbacks   []string
}
