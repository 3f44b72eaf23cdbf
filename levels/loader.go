package levels

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tmaran/gridshade/common"
)

// Grid tokens, space-separated, one row per line of `tiles`:
//
//	.      empty
//	P      player start (exactly one)
//	S      stalker (hazard) start (exactly one)
//	D      door / goal (at least one)
//	#      wall; #1, #2, ... select a wall style
//	=      pushable block
//	B<n>   button on channel n
//	G<n>   gate linked to channel n; G1+3 links several channels
//	1..9   ordered patrol waypoints for the stalker (cyclic)
//
// Rows are declared top to bottom but tile Y grows upward: the first row of
// the source is the highest Y.

// Wall is a style-tagged wall tile.
type Wall struct {
	Style int
	Pos   common.Vec2
}

// Button is a pressure plate declaration.
type Button struct {
	Channel int
	Pos     common.Vec2
}

// Gate is a gate declaration with its explicit button channels.
type Gate struct {
	Channels []int
	Pos      common.Vec2
}

// Level is the static data one level is spawned from. It is immutable after
// load and consumed once per level entry.
type Level struct {
	Name        string
	Width       int
	Height      int
	Midpoint    common.Vec2
	PlayerStart common.Vec2
	HazardStart common.Vec2
	Patrol      []common.Vec2
	Goals       []common.Vec2
	Walls       []Wall
	Blocks      []common.Vec2
	Buttons     []Button
	Gates       []Gate
}

type levelSet struct {
	Levels []levelData `yaml:"levels"`
}

type levelData struct {
	Name  string   `yaml:"name"`
	Tiles []string `yaml:"tiles"`
}

// Load reads and parses a level set from a YAML file on disk.
func Load(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML level set and validates every level. Any malformed
// level fails the whole load; no degraded level is ever produced.
func Parse(data []byte) ([]Level, error) {
	var set levelSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level set: %w", err)
	}
	if len(set.Levels) == 0 {
		return nil, fmt.Errorf("levels: level set declares no levels")
	}

	out := make([]Level, 0, len(set.Levels))
	for i, ld := range set.Levels {
		lvl, err := parseLevel(i, ld)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}

func parseLevel(index int, ld levelData) (Level, error) {
	name := ld.Name
	if name == "" {
		return Level{}, fmt.Errorf("levels: level %d: missing name", index)
	}

	height := len(ld.Tiles)
	if height == 0 {
		return Level{}, fmt.Errorf("levels: level %q: empty grid", name)
	}

	var (
		lvl = Level{Name: name, Height: height}

		havePlayer bool
		haveHazard bool
		waypoints  = map[int]common.Vec2{}
	)

	for row, line := range ld.Tiles {
		y := height - row - 1
		tokens := strings.Fields(line)
		if len(tokens) > lvl.Width {
			lvl.Width = len(tokens)
		}
		for x, tok := range tokens {
			pos := common.Vec2{X: float64(x), Y: float64(y)}
			switch {
			case tok == ".":
			case tok == "P":
				if havePlayer {
					return Level{}, fmt.Errorf("levels: level %q: second player start at (%d,%d)", name, x, y)
				}
				lvl.PlayerStart = pos
				havePlayer = true
			case tok == "S":
				if haveHazard {
					return Level{}, fmt.Errorf("levels: level %q: second hazard start at (%d,%d)", name, x, y)
				}
				lvl.HazardStart = pos
				haveHazard = true
			case tok == "D":
				lvl.Goals = append(lvl.Goals, pos)
			case tok == "=":
				lvl.Blocks = append(lvl.Blocks, pos)
			case strings.HasPrefix(tok, "#"):
				style := 0
				if rest := tok[1:]; rest != "" {
					n, err := strconv.Atoi(rest)
					if err != nil {
						return Level{}, badToken(name, tok, x, y)
					}
					style = n
				}
				lvl.Walls = append(lvl.Walls, Wall{Style: style, Pos: pos})
			case strings.HasPrefix(tok, "B"):
				ch, err := strconv.Atoi(tok[1:])
				if err != nil {
					return Level{}, badToken(name, tok, x, y)
				}
				lvl.Buttons = append(lvl.Buttons, Button{Channel: ch, Pos: pos})
			case strings.HasPrefix(tok, "G"):
				chans, err := parseChannels(tok[1:])
				if err != nil {
					return Level{}, badToken(name, tok, x, y)
				}
				lvl.Gates = append(lvl.Gates, Gate{Channels: chans, Pos: pos})
			case len(tok) == 1 && tok[0] >= '1' && tok[0] <= '9':
				n := int(tok[0] - '0')
				if _, dup := waypoints[n]; dup {
					return Level{}, fmt.Errorf("levels: level %q: duplicate waypoint %d at (%d,%d)", name, n, x, y)
				}
				waypoints[n] = pos
			default:
				return Level{}, badToken(name, tok, x, y)
			}
		}
	}

	if !havePlayer {
		return Level{}, fmt.Errorf("levels: level %q: no player start", name)
	}
	if !haveHazard {
		return Level{}, fmt.Errorf("levels: level %q: no hazard start", name)
	}
	if len(lvl.Goals) == 0 {
		return Level{}, fmt.Errorf("levels: level %q: no goals", name)
	}

	lvl.Patrol = orderedWaypoints(waypoints)
	if len(lvl.Patrol) == 0 {
		// A stalker with no route holds its start tile until the player
		// comes within its threshold.
		lvl.Patrol = []common.Vec2{lvl.HazardStart}
	}

	lvl.Midpoint = common.Vec2{
		X: float64(lvl.Width) / 2,
		Y: float64(lvl.Height)/2 - 0.5,
	}
	return lvl, nil
}

func badToken(name, tok string, x, y int) error {
	return fmt.Errorf("levels: level %q: unrecognized token %q at (%d,%d)", name, tok, x, y)
}

func parseChannels(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("no channels")
	}
	parts := strings.Split(s, "+")
	chans := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		chans = append(chans, n)
	}
	return chans, nil
}

func orderedWaypoints(m map[int]common.Vec2) []common.Vec2 {
	if len(m) == 0 {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]common.Vec2, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
