package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/huectl/huectl/bridge"
	"github.com/huectl/huectl/resolve"
)

var (
	controlOn  bool
	controlOff bool
	controlBri = newClampedInt(bridge.ClampBri)
	controlCt  = newClampedInt(bridge.ClampCt)
)

// controlCmd applies a partial state change to one or more lights.
var controlCmd = &cobra.Command{
	Use:   "control <light>...",
	Short: "Switch lights on or off, set brightness or colour temperature",
	Long: `Control applies the given state flags to each named light. Lights may
be given as bridge IDs or as names. Flags that are not supplied leave
the corresponding light state untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := resolve.Lights(cmd.Context(), client, args)
		if err != nil {
			return err
		}

		change := stateChange(cmd.Flags())
		for _, id := range ids {
			if err := client.SetState(cmd.Context(), id, change); err != nil {
				logger.Warn().Int("light", id).Err(err).Msg("unable to set light state")
			}
		}
		return nil
	},
}

// stateChange builds the partial update from whichever flags were supplied.
func stateChange(flags *pflag.FlagSet) bridge.StateChange {
	var change bridge.StateChange

	switch {
	case flags.Changed("on"):
		on := true
		change.On = &on
	case flags.Changed("off"):
		on := false
		change.On = &on
	}
	if controlBri.set {
		bri := controlBri.value
		change.Bri = &bri
	}
	if controlCt.set {
		ct := controlCt.value
		change.Ct = &ct
	}
	return change
}

func init() {
	controlCmd.Flags().BoolVar(&controlOn, "on", false, "turn lights on")
	controlCmd.Flags().BoolVar(&controlOff, "off", false, "turn lights off")
	controlCmd.Flags().Var(controlBri, "bri", fmt.Sprintf("brightness (%d-%d)", bridge.BriMin, bridge.BriMax))
	controlCmd.Flags().Var(controlCt, "ct", fmt.Sprintf("colour temperature (%d-%d, larger is warmer)", bridge.CtMin, bridge.CtMax))
	controlCmd.MarkFlagsMutuallyExclusive("on", "off")
	rootCmd.AddCommand(controlCmd)
}
