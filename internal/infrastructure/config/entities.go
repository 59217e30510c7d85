package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player    TemplateConfig            `json:"player"`
	Sockets   []string                  `json:"sockets"`
	Templates map[string]TemplateConfig `json:"templates"`
}

// TemplateConfig describes how to build an entity
type TemplateConfig struct {
	Faction          string             `json:"faction"`
	AnimateMs        int                `json:"animateMs"`
	Strips           int                `json:"strips"`
	Stages           int                `json:"stages"`
	Sprite           SizeConfig         `json:"sprite"`
	Speed            int                `json:"speed"`
	Weight           *int               `json:"weight,omitempty"` // defaults to 1
	Shape            Rect               `json:"shape"`
	Behaviors        []string           `json:"behaviors"`
	MaxHealth        float64            `json:"maxHealth"`
	Defense          map[string]float64 `json:"defense,omitempty"`
	Spells           map[string]int     `json:"spells,omitempty"`
	Drops            map[string]int     `json:"drops,omitempty"`
	Exp              int                `json:"exp"`
	ShowDeathMessage bool               `json:"showDeathMessage"`
	Passable         bool               `json:"passable"`
	Dialogue         *DialogueLines     `json:"dialogue,omitempty"`
}

// WeightOrDefault returns the configured weight, 1 when unset
func (t TemplateConfig) WeightOrDefault() int {
	if t.Weight == nil {
		return 1
	}
	return *t.Weight
}

type SizeConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type Rect struct {
	OffsetX int `json:"offsetX" yaml:"offsetX"`
	OffsetY int `json:"offsetY" yaml:"offsetY"`
	Width   int `json:"width" yaml:"width"`
	Height  int `json:"height" yaml:"height"`
}

type DialogueLines struct {
	Lines    []string `json:"lines"`
	AltLines []string `json:"altLines,omitempty"`
}
