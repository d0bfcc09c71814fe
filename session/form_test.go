package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepForm_Bounds(t *testing.T) {
	f := NewStepForm(4)
	assert.Equal(t, 1, f.Current)
	assert.False(t, f.CanGoBack())

	f.Previous()
	assert.Equal(t, 1, f.Current, "previous at step 1 is a no-op")

	for i := 0; i < 3; i++ {
		f.Next()
	}
	assert.Equal(t, 4, f.Current)
	assert.True(t, f.IsLast())

	f.Next()
	assert.Equal(t, 4, f.Current, "next at the last step is a no-op")

	for i := 0; i < 4; i++ {
		f.Previous()
	}
	assert.Equal(t, 1, f.Current)
}

func TestStepForm_Progress(t *testing.T) {
	f := NewStepForm(4)
	assert.Equal(t, 0, f.Progress())
	f.Next()
	assert.Equal(t, 33, f.Progress())
	f.Next()
	f.Next()
	assert.Equal(t, 100, f.Progress())

	assert.Equal(t, 100, NewStepForm(1).Progress())
}

func TestStepForm_ClampsTotal(t *testing.T) {
	f := NewStepForm(0)
	assert.Equal(t, 1, f.Total)
	assert.True(t, f.IsLast())
}

func TestStepForm_Reset(t *testing.T) {
	f := NewStepForm(2)
	f.Next()
	f.Reset()
	assert.Equal(t, 1, f.Current)
}

func TestFlowSteps(t *testing.T) {
	assert.Equal(t, []string{"Datos Generales", "Impacto Social", "Finanzas", "Validación"}, FlowProjectSubmission.Steps())
	assert.Len(t, FlowRegistration.Steps(), 2)
	assert.Equal(t, ViewNewProject, FlowProjectSubmission.View())
	assert.Equal(t, ViewRegister, FlowRegistration.View())
}
