package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/domain"
)

func TestToExercisesJSON_Modifications(t *testing.T) {
	out := toExercisesJSON([]domain.Exercise{
		{ID: 1, Name: "Plank to Pike", Equipment: []string{"Mat"}, Modifications: &domain.Modifications{Easier: "On knees", Harder: "Leg lifts"}},
		{ID: 2, Name: "Dead Bug"},
	})

	require.Len(t, out, 2)
	require.NotNil(t, out[0].Modifications)
	assert.Equal(t, "Leg lifts", out[0].Modifications.Harder)
	assert.Equal(t, []string{"Mat"}, out[0].Equipment)
	assert.Nil(t, out[1].Modifications)
}

func TestTargetsMuscle(t *testing.T) {
	ex := domain.Exercise{TargetMuscles: []string{"Core", "Hip Flexors"}}

	assert.True(t, targetsMuscle(ex, "hip flexors"))
	assert.False(t, targetsMuscle(ex, "Glutes"))
	assert.Equal(t, "-", restLabel(0))
	assert.Equal(t, "0:15", restLabel(15))
}
