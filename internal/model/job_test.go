package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJob_SetType(t *testing.T) {
	tests := []struct {
		in       string
		ok       bool
		workMode WorkMode
		emp      EmploymentType
	}{
		{in: "remote", ok: true, workMode: WorkModeRemote},
		{in: "hybrid", ok: true, workMode: WorkModeHybrid},
		{in: "part-time", ok: true, emp: EmploymentPartTime},
		{in: "", ok: true},
		{in: "freelance", ok: false, workMode: WorkModeOnsite},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			job := &Job{WorkMode: WorkModeOnsite}
			assert.Equal(t, tt.ok, job.SetType(tt.in))
			assert.Equal(t, tt.workMode, job.WorkMode)
			assert.Equal(t, tt.emp, job.EmploymentType)
			if tt.ok {
				assert.Equal(t, tt.in, job.DerivedType())
				assert.Equal(t, tt.in, job.Type)
			}
		})
	}
}

func TestValidity(t *testing.T) {
	assert.True(t, LevelLead.Valid())
	assert.False(t, Level("principal").Valid())
	assert.True(t, RoleRecruiter.Valid())
	assert.False(t, Role("root").Valid())
	assert.True(t, ApplicationStatusReview.Valid())
	assert.False(t, ApplicationStatus("hired").Valid())
}
