package game

// Player is one side of a scouted battle. Team only holds what the protocol has revealed.
type Player struct {
	ID        string
	Name      string
	Team      map[string]*Pokemon
	Order     []string
	Nicknames map[string]string
	Fainted   map[string]bool
	Active    *Pokemon
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Team:      make(map[string]*Pokemon),
		Nicknames: make(map[string]string),
		Fainted:   make(map[string]bool),
	}
}

// Reveal returns the team entry for species, adding it in reveal order when unseen.
func (p *Player) Reveal(species string) *Pokemon {
	if poke, ok := p.Team[species]; ok {
		return poke
	}
	poke := &Pokemon{Species: species}
	p.Team[species] = poke
	p.Order = append(p.Order, species)
	return poke
}

// Rename moves a revealed entry to a new species name, keeping its position, nickname
// mapping and fainted mark. When to is already revealed that entry is returned untouched.
func (p *Player) Rename(from, to string) *Pokemon {
	poke, ok := p.Team[from]
	if !ok || from == to {
		return p.Reveal(to)
	}
	if existing, ok := p.Team[to]; ok {
		return existing
	}
	delete(p.Team, from)
	p.Team[to] = poke
	poke.Species = to
	for i, species := range p.Order {
		if species == from {
			p.Order[i] = to
		}
	}
	for nick, species := range p.Nicknames {
		if species == from {
			p.Nicknames[nick] = to
		}
	}
	if p.Fainted[from] {
		delete(p.Fainted, from)
		p.Fainted[to] = true
	}
	return poke
}

// ByNickname resolves a protocol identifier ("Chomp") to the revealed team entry.
func (p *Player) ByNickname(nick string) *Pokemon {
	if species, ok := p.Nicknames[nick]; ok {
		return p.Team[species]
	}
	return p.Team[nick]
}

// Bench lists the revealed, non-fainted Pokémon other than the active one, in reveal order.
func (p *Player) Bench() []*Pokemon {
	var out []*Pokemon
	for _, species := range p.Order {
		poke := p.Team[species]
		if poke == p.Active || p.Fainted[species] {
			continue
		}
		out = append(out, poke)
	}
	return out
}

// Roster lists the first six revealed Pokémon in reveal order.
func (p *Player) Roster() Roster {
	var r Roster
	for i, species := range p.Order {
		if i == RosterSize {
			break
		}
		r[i] = p.Team[species]
	}
	return r
}

type BattleState struct {
	Players map[string]*Player
	Gen     int
	Turn    int
	Winner  string
	Ended   bool
}

func NewBattleState() *BattleState {
	return &BattleState{
		Players: make(map[string]*Player),
		Turn:    0,
	}
}

// Opponent returns the side that is not id, if it has been announced.
func (s *BattleState) Opponent(id string) *Player {
	for pid, p := range s.Players {
		if pid != id {
			return p
		}
	}
	return nil
}
