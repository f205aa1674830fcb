// Package parser follows a Showdown battle stream and records what each side has revealed:
// species, nicknames, moves, abilities and items.
package parser

import (
	"bufio"
	"strconv"
	"strings"

	"showdown-teambuilder/data"
	"showdown-teambuilder/game"
	"showdown-teambuilder/logger"
)

func ParseLog(logText string, dex *data.Dex) (*game.BattleState, error) {
	state := game.NewBattleState()
	sc := bufio.NewScanner(strings.NewReader(logText))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		ProcessLine(state, dex, sc.Text())
	}
	return state, sc.Err()
}

// ProcessLine applies one protocol line to state and reports whether the line was one the
// scouting view cares about. dex may be nil, in which case only names are recorded.
func ProcessLine(state *game.BattleState, dex *data.Dex, line string) bool {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 || parts[0] != "" {
		return false
	}
	switch parts[1] {
	case "gen":
		if len(parts) >= 3 {
			if g, err := strconv.Atoi(parts[2]); err == nil {
				state.Gen = g
				return true
			}
		}
	case "player":
		if len(parts) >= 4 && parts[3] != "" {
			id := parts[2]
			if player, ok := state.Players[id]; ok {
				player.Name = parts[3]
			} else {
				state.Players[id] = game.NewPlayer(id, parts[3])
			}
			return true
		}
	case "poke":
		if len(parts) >= 4 {
			player := side(state, parts[2])
			reveal(player, dex, speciesOf(parts[3]))
			return true
		}
	case "switch", "drag", "replace":
		if len(parts) >= 4 {
			id, nick, ok := splitIdent(parts[2])
			if !ok {
				return false
			}
			player := side(state, id)
			poke := reveal(player, dex, speciesOf(parts[3]))
			species := poke.Species
			player.Nicknames[nick] = species
			if nick != species {
				poke.Nickname = nick
			}
			player.Active = poke
			return true
		}
	case "detailschange":
		if len(parts) >= 4 {
			id, _, ok := splitIdent(parts[2])
			poke := lookup(state, parts[2])
			if !ok || poke == nil {
				return false
			}
			player := state.Players[id]
			changed := player.Rename(poke.Species, speciesOf(parts[3]))
			fill(changed, dex, true)
			return true
		}
	case "move":
		if len(parts) >= 4 {
			poke := lookup(state, parts[2])
			if poke == nil {
				return false
			}
			recordMove(poke, dex, parts[3])
			return true
		}
	case "-ability":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.Ability = parts[3]
				return true
			}
		}
	case "-item":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.Item = parts[3]
				return true
			}
		}
	case "-enditem":
		if len(parts) >= 4 {
			if poke := lookup(state, parts[2]); poke != nil {
				poke.Item = ""
				return true
			}
		}
	case "faint":
		if len(parts) >= 3 {
			id, nick, ok := splitIdent(parts[2])
			if !ok {
				return false
			}
			if player, ok := state.Players[id]; ok {
				if species, ok := player.Nicknames[nick]; ok {
					player.Fainted[species] = true
				} else {
					player.Fainted[nick] = true
				}
				return true
			}
		}
	case "turn":
		if len(parts) >= 3 {
			if t, err := strconv.Atoi(parts[2]); err == nil {
				state.Turn = t
				return true
			}
		}
	case "win":
		if len(parts) >= 3 {
			state.Winner = parts[2]
		}
		state.Ended = true
		return true
	case "tie":
		state.Ended = true
		return true
	}
	return false
}

func side(state *game.BattleState, id string) *game.Player {
	if player, ok := state.Players[id]; ok {
		return player
	}
	player := game.NewPlayer(id, id)
	state.Players[id] = player
	return player
}

// splitIdent turns "p2a: Chomp" into ("p2", "Chomp").
func splitIdent(ident string) (string, string, bool) {
	info := strings.SplitN(ident, ": ", 2)
	if len(info) != 2 || len(info[0]) < 2 {
		return "", "", false
	}
	return info[0][:2], strings.TrimSpace(info[1]), true
}

// speciesOf strips level, gender and shiny markers: "Garchomp, L50, M" becomes "Garchomp".
func speciesOf(details string) string {
	return strings.TrimSpace(strings.SplitN(details, ",", 2)[0])
}

func lookup(state *game.BattleState, ident string) *game.Pokemon {
	id, nick, ok := splitIdent(ident)
	if !ok {
		return nil
	}
	player, ok := state.Players[id]
	if !ok {
		return nil
	}
	return player.ByNickname(nick)
}

// reveal returns the team entry for species. Team preview hides some formes behind a
// wildcard ("Urshifu-*"); the first time the real forme shows up the wildcard entry is
// renamed to it rather than revealed twice.
func reveal(player *game.Player, dex *data.Dex, species string) *game.Pokemon {
	if _, ok := player.Team[species]; !ok && !strings.HasSuffix(species, "-*") {
		base, _, _ := strings.Cut(species, "-")
		if _, ok := player.Team[base+"-*"]; ok {
			poke := player.Rename(base+"-*", species)
			fill(poke, dex, true)
			return poke
		}
	}
	poke := player.Reveal(species)
	fill(poke, dex, false)
	return poke
}

// fill copies typing, abilities and stats from the dex. Unless force is set, an entry that
// already has types is left alone.
func fill(poke *game.Pokemon, dex *data.Dex, force bool) {
	if dex == nil || (!force && len(poke.Types) > 0) {
		return
	}
	known, err := dex.Pokemon(poke.Species)
	if err != nil {
		logger.Debug("species not in dex", "species", poke.Species, "error", err)
		return
	}
	poke.Types = known.Types
	poke.Abilities = known.Abilities
	poke.Stats = known.Stats
}

// recordMove adds a newly seen move. Moves the dex cannot type are skipped since they would
// only ever read as neutral.
func recordMove(poke *game.Pokemon, dex *data.Dex, name string) {
	for _, m := range poke.Moves {
		if data.ID(m.Name) == data.ID(name) {
			return
		}
	}
	if dex == nil {
		return
	}
	m, err := dex.Move(name)
	if err != nil {
		logger.Debug("move not in dex", "move", name, "error", err)
		return
	}
	poke.Moves = append(poke.Moves, m)
}
