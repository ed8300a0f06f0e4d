// Package resolve maps user-supplied light identifiers to bridge IDs.
package resolve

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/amimof/huego"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"

	"github.com/huectl/huectl/bridge"
	"github.com/huectl/huectl/logging"
)

var logger zerolog.Logger

func init() {
	logging.ComponentLogger("resolve", &logger)
}

// Lister is the part of bridge.Client the resolver needs.
type Lister interface {
	Lights(ctx context.Context) ([]huego.Light, error)
}

// maxSuggestions bounds the "did you mean" list on unknown names.
const maxSuggestions = 3

// Lights resolves args to bridge light IDs. Each argument is either a
// decimal light ID, passed through unchanged, or a light name. The
// bridge is queried at most once, and only when at least one argument
// is a name. Order and duplicates are preserved.
func Lights(ctx context.Context, lister Lister, args []string) ([]int, error) {
	ids := make([]int, len(args))

	named := false
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			named = true
			break
		}
		ids[i] = id
	}
	if !named {
		return ids, nil
	}

	lights, err := lister.Lights(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(lights))
	names := make([]string, 0, len(lights))
	for _, l := range lights {
		byName[strings.ToLower(l.Name)] = l.ID
		names = append(names, l.Name)
	}

	for i, arg := range args {
		if id, err := strconv.Atoi(arg); err == nil {
			ids[i] = id
			continue
		}

		id, ok := byName[strings.ToLower(arg)]
		if !ok {
			return nil, &UnknownLightError{
				Name:        arg,
				Lights:      lights,
				Suggestions: suggest(arg, names),
			}
		}

		logger.Debug().Str("name", arg).Int("light", id).Msg("resolved light name")
		ids[i] = id
	}

	return ids, nil
}

// suggest ranks names against the unresolved input.
func suggest(name string, names []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.Sort(ranks)

	suggestions := make([]string, 0, maxSuggestions)
	for _, rank := range ranks {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, rank.Target)
	}
	if len(suggestions) > 0 {
		return suggestions
	}

	// the input is not a subsequence of any name, try close misspellings
	const maxDistance = 3
	candidates := make([]string, len(names))
	copy(candidates, names)
	sort.SliceStable(candidates, func(i, j int) bool {
		return editDistance(name, candidates[i]) < editDistance(name, candidates[j])
	})
	for _, candidate := range candidates {
		if len(suggestions) == maxSuggestions || editDistance(name, candidate) > maxDistance {
			break
		}
		suggestions = append(suggestions, candidate)
	}
	return suggestions
}

func editDistance(a, b string) int {
	return fuzzy.LevenshteinDistance(strings.ToLower(a), strings.ToLower(b))
}

// UnknownLightError reports a light name the bridge does not know.
// Its message carries the full list of available lights so the user can
// see what the bridge actually calls them.
type UnknownLightError struct {
	Name        string
	Lights      []huego.Light
	Suggestions []string
}

func (e *UnknownLightError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown light %q", e.Name)
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestions[0])
	}

	lights := make([]huego.Light, len(e.Lights))
	copy(lights, e.Lights)
	bridge.SortLights(lights)

	b.WriteString("\navailable lights:")
	for _, l := range lights {
		b.WriteString("\n")
		b.WriteString(bridge.FormatLight(l))
	}
	return b.String()
}
