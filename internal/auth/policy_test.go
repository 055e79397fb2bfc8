package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
)

func TestPermits(t *testing.T) {
	tests := []struct {
		action Action
		role   model.Role
		want   bool
	}{
		{ActionJobCreate, model.RoleUser, false},
		{ActionJobCreate, model.RoleRecruiter, true},
		{ActionJobCreate, model.RoleAdmin, true},
		{ActionApplicationCreate, model.RoleUser, true},
		{ActionApplicationListAll, model.RoleRecruiter, false},
		{ActionApplicationListAll, model.RoleAdmin, true},
		{ActionApplicationListForMyJobs, model.RoleUser, false},
		{ActionUserDelete, model.RoleRecruiter, false},
		{ActionJobModerate, model.RoleRecruiter, false},
		{ActionJobModerate, model.RoleAdmin, true},
		{ActionSavedJobManage, model.RoleUser, true},
		{Action("unknown"), model.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action)+"/"+string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, Permits(tt.action, tt.role))
		})
	}
}

func TestAuthorize_Ownership(t *testing.T) {
	owner := Identity{UserID: uuid.New(), Role: model.RoleRecruiter}
	other := Identity{UserID: uuid.New(), Role: model.RoleRecruiter}
	admin := Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	applicant := Identity{UserID: uuid.New(), Role: model.RoleUser}

	tests := []struct {
		name     string
		id       Identity
		wantKind apperrors.Kind
		wantErr  bool
	}{
		{name: "owner", id: owner},
		{name: "admin overrides ownership", id: admin},
		{name: "other recruiter", id: other, wantErr: true, wantKind: apperrors.KindForbidden},
		{name: "plain user", id: applicant, wantErr: true, wantKind: apperrors.KindForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(ActionApplicationSetStatus, tt.id, owner.UserID)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
		})
	}
}

func TestAuthorize_NoOwnershipRule(t *testing.T) {
	recruiter := Identity{UserID: uuid.New(), Role: model.RoleRecruiter}
	assert.NoError(t, Authorize(ActionJobCreate, recruiter, uuid.New()))
}

func TestPolicyTable_EveryRuleHasRoles(t *testing.T) {
	for action, rule := range policies {
		assert.NotEmpty(t, rule.Roles, "action %s", action)
	}
}
