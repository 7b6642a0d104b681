package curve_test

import (
	"testing"

	"github.com/isam10/curveplot/curve"
	"github.com/stretchr/testify/assert"
)

// TestReconcileSliders_Defaults: unseen variables get the documented
// default record.
func TestReconcileSliders_Defaults(t *testing.T) {
	out := curve.ReconcileSliders([]string{"a", "b"}, nil)
	assert.Len(t, out, 2)
	for i, name := range []string{"a", "b"} {
		s := out[i]
		assert.Equal(t, name, s.Name)
		assert.Equal(t, 1.0, s.Value)
		assert.Equal(t, -10.0, s.Min)
		assert.Equal(t, 10.0, s.Max)
		assert.Equal(t, 0.1, s.Step)
		assert.False(t, s.Animating)
		assert.Equal(t, 1.0, s.AnimationSpeed)
	}
}

// TestReconcileSliders_PreservesByName: a surviving variable keeps its
// tuned record even when its position changes.
func TestReconcileSliders_PreservesByName(t *testing.T) {
	tuned := curve.Slider{
		Name: "k", Value: 3.5, Min: 0, Max: 100, Step: 0.5,
		Animating: true, AnimationSpeed: 2,
	}
	out := curve.ReconcileSliders([]string{"a", "k"}, []curve.Slider{tuned})

	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, 1.0, out[0].Value, "new slider gets defaults")
	assert.Equal(t, tuned, out[1], "existing slider record survives untouched")
}

// TestReconcileSliders_DropsVanished: sliders for variables no longer
// present are not carried over.
func TestReconcileSliders_DropsVanished(t *testing.T) {
	prev := []curve.Slider{curve.NewSlider("gone"), curve.NewSlider("kept")}
	out := curve.ReconcileSliders([]string{"kept"}, prev)

	assert.Len(t, out, 1)
	assert.Equal(t, "kept", out[0].Name)
}

// TestReconcileSliders_Empty handles the no-free-variable case.
func TestReconcileSliders_Empty(t *testing.T) {
	assert.Empty(t, curve.ReconcileSliders(nil, []curve.Slider{curve.NewSlider("a")}))
}
