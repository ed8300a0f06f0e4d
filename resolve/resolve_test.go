package resolve

import (
	"context"
	"testing"

	"github.com/amimof/huego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	lights []huego.Light
	err    error
	calls  int
}

func (f *fakeLister) Lights(ctx context.Context) ([]huego.Light, error) {
	f.calls++
	return f.lights, f.err
}

var testLights = []huego.Light{
	{ID: 1, Name: "Hallway"},
	{ID: 3, Name: "Desk Lamp"},
	{ID: 5, Name: "Kitchen"},
}

func TestLightsAllNumeric(t *testing.T) {
	lister := &fakeLister{lights: testLights}

	ids, err := Lights(context.Background(), lister, []string{"3", "1", "3"})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1, 3}, ids)
	assert.Zero(t, lister.calls, "all-numeric arguments must not hit the bridge")
}

func TestLightsMixed(t *testing.T) {
	lister := &fakeLister{lights: testLights}

	ids, err := Lights(context.Background(), lister, []string{"2", "desk lamp", "Kitchen"})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 5}, ids)
	assert.Equal(t, 1, lister.calls, "names must be resolved with a single list call")
}

func TestLightsUnknownName(t *testing.T) {
	lister := &fakeLister{lights: testLights}

	_, err := Lights(context.Background(), lister, []string{"Desk Lamps"})
	require.Error(t, err)

	var unknown *UnknownLightError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Desk Lamps", unknown.Name)

	// the message carries the full light list, sorted by name
	msg := err.Error()
	assert.Contains(t, msg, `unknown light "Desk Lamps"`)
	assert.Contains(t, msg, " - 3: Desk Lamp\n - 1: Hallway\n - 5: Kitchen")
	assert.Contains(t, msg, `did you mean "Desk Lamp"?`)
}

func TestLightsListFailure(t *testing.T) {
	lister := &fakeLister{err: context.DeadlineExceeded}

	_, err := Lights(context.Background(), lister, []string{"Hallway"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
