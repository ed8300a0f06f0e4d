package bridge

import (
	"fmt"
	"sort"

	"github.com/amimof/huego"
)

// SortLights orders lights by display name, then by ID so that lights
// sharing a name keep a stable order.
func SortLights(lights []huego.Light) {
	sort.Slice(lights, func(i, j int) bool {
		if lights[i].Name != lights[j].Name {
			return lights[i].Name < lights[j].Name
		}
		return lights[i].ID < lights[j].ID
	})
}

// FormatLight renders one light the way the CLI lists them.
func FormatLight(light huego.Light) string {
	return fmt.Sprintf(" - %d: %s", light.ID, light.Name)
}

// FormatLightLong additionally renders the light's current state.
func FormatLightLong(light huego.Light) string {
	if light.State == nil {
		return FormatLight(light)
	}

	onoff := "off"
	if light.State.On {
		onoff = "on"
	}
	return fmt.Sprintf("%s (%s, bri %d, ct %d)", FormatLight(light), onoff, light.State.Bri, light.State.Ct)
}
