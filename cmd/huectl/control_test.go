package main

import (
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huectl/huectl/bridge"
)

func resetControlFlags(t *testing.T) {
	t.Helper()
	controlOn, controlOff = false, false
	controlBri.set, controlCt.set = false, false
	controlCmd.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
}

func TestStateChangeFromFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no flags", nil, `{}`},
		{"on", []string{"--on"}, `{"on":true}`},
		{"off", []string{"--off"}, `{"on":false}`},
		{"brightness clamped high", []string{"--on", "--bri", "300"}, `{"on":true,"bri":254}`},
		{"ct clamped low", []string{"--ct", "100"}, `{"ct":153}`},
		{"everything", []string{"--off", "--bri", "10", "--ct", "400"}, `{"on":false,"bri":10,"ct":400}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetControlFlags(t)
			require.NoError(t, controlCmd.Flags().Parse(tt.args))

			data, err := json.Marshal(stateChange(controlCmd.Flags()))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestClampedInt(t *testing.T) {
	v := newClampedInt(bridge.ClampBri)
	require.Error(t, v.Set("not-a-number"))
	assert.False(t, v.set)

	require.NoError(t, v.Set("-5"))
	assert.Equal(t, bridge.BriMin, v.value)

	require.NoError(t, v.Set("1000"))
	assert.Equal(t, bridge.BriMax, v.value)
	assert.Equal(t, "254", v.String())
}
