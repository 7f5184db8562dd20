package stats

// Canonical stat keys
const (
	KeyAttaque      = "attaque"
	KeyDefense      = "defense"
	KeyMagie        = "magie"
	KeyVitesse      = "vitesse"
	KeyCritique     = "critique"
	KeyForce        = "force"
	KeyAgilite      = "agilite"
	KeyResistance   = "resistance"
	KeyIntelligence = "intelligence"
	KeyEndurance    = "endurance"
	KeyHP           = "hp"
	KeyHPMax        = "hpMax"
	KeyMana         = "mana"
	KeyManaMax      = "manaMax"
	KeyGlace        = "glace"
	KeyPuissance    = "puissance"
	KeyCharme       = "charme"
	KeyPrestance    = "prestance"
)

// SynonymTable maps normalized aliases to canonical stat keys.
// It is immutable once built; share it freely.
type SynonymTable struct {
	aliases map[string]string
	keys    []string
}

// NewSynonymTable builds a table from canonical key -> aliases.
// Aliases are normalized before insertion and every key is registered as an
// alias of itself, so canonical keys always canonicalize to themselves.
// When two keys claim the same alias the first one in keys order wins.
func NewSynonymTable(keys []string, aliases map[string][]string) *SynonymTable {
	t := &SynonymTable{
		aliases: make(map[string]string),
		keys:    make([]string, 0, len(keys)),
	}

	for _, key := range keys {
		t.keys = append(t.keys, key)
		t.add(Normalize(key), key)
	}
	for _, key := range keys {
		for _, alias := range aliases[key] {
			t.add(Normalize(alias), key)
		}
	}

	return t
}

func (t *SynonymTable) add(alias, key string) {
	if alias == "" {
		return
	}
	if _, exists := t.aliases[alias]; exists {
		return
	}
	t.aliases[alias] = key
}

// Lookup returns the canonical key for an already normalized alias
func (t *SynonymTable) Lookup(normalized string) (string, bool) {
	if t == nil {
		return "", false
	}
	key, ok := t.aliases[normalized]
	return key, ok
}

// Keys returns the canonical keys known to the table
func (t *SynonymTable) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

var defaultKeys = []string{
	KeyAttaque, KeyDefense, KeyMagie, KeyVitesse, KeyCritique, KeyForce,
	KeyAgilite, KeyResistance, KeyIntelligence, KeyEndurance,
	KeyHPMax, KeyHP, KeyManaMax, KeyMana,
	KeyGlace, KeyPuissance, KeyCharme, KeyPrestance,
}

// French first, then English, abbreviations and a few Spanish/German forms
var defaultAliases = map[string][]string{
	KeyAttaque:      {"attaque", "attaques", "attack", "atk", "att", "atq", "ataque", "angriff"},
	KeyDefense:      {"défense", "defence", "def", "defensa", "verteidigung"},
	KeyMagie:        {"magie", "magique", "magic", "mag", "magia"},
	KeyVitesse:      {"vitesse", "rapidité", "speed", "spd", "vit", "velocidad", "geschwindigkeit"},
	KeyCritique:     {"critique", "crit", "crits", "critical", "coup critique", "cc", "critico", "kritisch"},
	KeyForce:        {"force", "strength", "str", "for", "fuerza", "kraft", "stärke"},
	KeyAgilite:      {"agilité", "agility", "agi", "dextérité", "dexterity", "dex", "agilidad"},
	KeyResistance:   {"résistance", "résistances", "resist", "resistance", "res", "resistencia"},
	KeyIntelligence: {"intelligence", "int", "intel", "inteligencia", "intelligenz"},
	KeyEndurance:    {"endurance", "stamina", "sta", "end", "constitution", "con", "resistencia fisica", "ausdauer"},
	KeyHP:           {"pv", "vie", "hp", "health", "life", "points de vie", "santé", "vida", "leben"},
	KeyHPMax: {
		"pv max", "vie max", "hp max", "max hp", "max pv", "max vie",
		"vie maximale", "points de vie max", "health max", "max health", "max life",
	},
	KeyMana:      {"mana", "pm", "mp", "points de mana"},
	KeyManaMax:   {"mana max", "max mana", "pm max", "mp max", "max mp", "mana maximale"},
	KeyGlace:     {"glace", "ice", "froid", "cold", "hielo", "eis"},
	KeyPuissance: {"puissance", "power", "pow", "pui", "potencia", "macht"},
	KeyCharme:    {"charme", "charm", "charisme", "charisma", "cha", "encanto"},
	KeyPrestance: {"prestance", "presence", "présence", "pres", "prestige"},
}

// DefaultSynonymTable returns a freshly built table with the game's stat vocabulary
func DefaultSynonymTable() *SynonymTable {
	return NewSynonymTable(defaultKeys, defaultAliases)
}

// defaultHiddenKeys are tracked by the character sheet itself, not the bonus panel
var defaultHiddenKeys = []string{KeyHP, KeyHPMax, KeyMana, KeyManaMax}
