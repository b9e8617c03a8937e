package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", rows = 24, ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	// Password "word" { hints = {...} } — curried: Password("word")
	// returns a function that takes a table.
	L.SetGlobal("Password", L.NewFunction(func(L *lua.LState) int {
		word := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.passwords = append(coll.passwords, rawPassword{word: word, table: tbl})
			return 0
		}))
		return 1
	}))

	// Weapons { "Katana", "Bow", ... } — loose weapons to scatter.
	L.SetGlobal("Weapons", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.weapons = append(coll.weapons, stringList(tbl)...)
		return 0
	}))

	// Character "name" { ... } — curried.
	L.SetGlobal("Character", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.characters = append(coll.characters, rawCharacter{name: name, table: tbl})
			return 0
		}))
		return 1
	}))
}
