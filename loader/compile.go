package loader

import (
	"sort"

	"github.com/jboenig/AdventureGame/engine/worldgen"
	lua "github.com/yuin/gopher-lua"
)

// rawPassword holds a password table before compilation.
type rawPassword struct {
	word  string
	table *lua.LTable
}

// rawCharacter holds a character table before compilation.
type rawCharacter struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or false if missing.
func getBool(tbl *lua.LTable, key string) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// stringList converts a Lua array of strings to a slice. Non-string
// entries become empty strings, which fallback tables use for silent
// turns.
func stringList(tbl *lua.LTable) []string {
	var out []string
	tbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		} else {
			out = append(out, "")
		}
	})
	return out
}

// compile converts the collected Lua tables into world definitions.
func compile(coll *collector) (*worldgen.Defs, error) {
	defs := &worldgen.Defs{}

	if coll.game != nil {
		defs.Game = worldgen.GameDef{
			Title: getString(coll.game, "title"),
			Rows:  getInt(coll.game, "rows"),
			Cols:  getInt(coll.game, "cols"),
			Map:   getString(coll.game, "map"),
		}
	}

	for _, raw := range coll.passwords {
		pwd := worldgen.PasswordDef{Word: raw.word}
		if hints := getTable(raw.table, "hints"); hints != nil {
			pwd.Hints = stringList(hints)
		}
		defs.Passwords = append(defs.Passwords, pwd)
	}

	defs.Weapons = coll.weapons

	for _, raw := range coll.characters {
		defs.Characters = append(defs.Characters, compileCharacter(raw))
	}

	return defs, nil
}

func compileCharacter(raw rawCharacter) worldgen.CharacterDef {
	def := worldgen.CharacterDef{
		Name:        raw.name,
		Description: getString(raw.table, "description"),
		Kind:        getString(raw.table, "kind"),
		BareHands:   getInt(raw.table, "bare_hands"),
		Weapon:      getString(raw.table, "weapon"),
		UseWeapon:   getBool(raw.table, "use_weapon"),
		Runes:       getInt(raw.table, "runes"),
		Provider:    getBool(raw.table, "provider"),
	}

	if responses := getTable(raw.table, "responses"); responses != nil {
		responses.ForEach(func(_, v lua.LValue) {
			tbl, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			def.Responses = append(def.Responses, worldgen.ResponseDef{
				Keyword: getString(tbl, "keyword"),
				Say:     getString(tbl, "say"),
				Action:  getString(tbl, "action"),
			})
		})
	}
	if fallbacks := getTable(raw.table, "fallbacks"); fallbacks != nil {
		def.Fallbacks = stringList(fallbacks)
	}
	return def
}

// sortedLuaFiles orders .lua files with game.lua first and the rest
// alphabetical.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
