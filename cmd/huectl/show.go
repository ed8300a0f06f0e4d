package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huectl/huectl/bridge"
)

var showLong bool

// showCmd lists all lights on the bridge, sorted by name.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List all lights on the bridge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lights, err := client.Lights(cmd.Context())
		if err != nil {
			return err
		}

		bridge.SortLights(lights)
		for _, light := range lights {
			line := bridge.FormatLight(light)
			if showLong {
				line = bridge.FormatLightLong(light)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&showLong, "long", "l", false, "include current light state")
	rootCmd.AddCommand(showCmd)
}
