package auth

import (
	"github.com/google/uuid"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
)

// Action names a guarded operation.
type Action string

const (
	ActionJobCreate   Action = "job:create"
	ActionJobUpdate   Action = "job:update"
	ActionJobDelete   Action = "job:delete"
	ActionJobListMine Action = "job:list-mine"
	ActionJobModerate Action = "job:moderate"

	ActionApplicationCreate        Action = "application:create"
	ActionApplicationListAll       Action = "application:list-all"
	ActionApplicationListMine      Action = "application:list-mine"
	ActionApplicationListForMyJobs Action = "application:list-for-my-jobs"
	ActionApplicationListForJob    Action = "application:list-for-job"
	ActionApplicationSetStatus     Action = "application:set-status"
	ActionApplicationDelete        Action = "application:delete"

	ActionSavedJobManage Action = "saved-job:manage"
	ActionProfileManage  Action = "profile:manage"

	ActionCompanyCreate Action = "company:create"
	ActionCompanyUpdate Action = "company:update"

	ActionUserList   Action = "user:list"
	ActionUserDelete Action = "user:delete"

	ActionDataSeed Action = "data:seed"
)

// Rule is one row of the policy table. RequireOwner rules are satisfied by
// the resource owner or by an admin.
type Rule struct {
	Roles        []model.Role
	RequireOwner bool
}

var (
	anyone     = []model.Role{model.RoleUser, model.RoleRecruiter, model.RoleAdmin}
	hiring     = []model.Role{model.RoleRecruiter, model.RoleAdmin}
	adminsOnly = []model.Role{model.RoleAdmin}
)

var policies = map[Action]Rule{
	ActionJobCreate:   {Roles: hiring},
	ActionJobUpdate:   {Roles: hiring, RequireOwner: true},
	ActionJobDelete:   {Roles: hiring, RequireOwner: true},
	ActionJobListMine: {Roles: hiring},
	ActionJobModerate: {Roles: adminsOnly},

	ActionApplicationCreate:        {Roles: anyone},
	ActionApplicationListAll:       {Roles: adminsOnly},
	ActionApplicationListMine:      {Roles: anyone},
	ActionApplicationListForMyJobs: {Roles: hiring},
	ActionApplicationListForJob:    {Roles: hiring, RequireOwner: true},
	ActionApplicationSetStatus:     {Roles: hiring, RequireOwner: true},
	ActionApplicationDelete:        {Roles: adminsOnly},

	ActionSavedJobManage: {Roles: anyone},
	ActionProfileManage:  {Roles: anyone},

	ActionCompanyCreate: {Roles: hiring},
	ActionCompanyUpdate: {Roles: hiring, RequireOwner: true},

	ActionUserList:   {Roles: adminsOnly},
	ActionUserDelete: {Roles: adminsOnly},

	ActionDataSeed: {Roles: adminsOnly},
}

// RuleFor returns the policy row for action.
func RuleFor(action Action) (Rule, bool) {
	rule, ok := policies[action]
	return rule, ok
}

// Permits reports whether role may attempt action at all. Ownership is not
// considered.
func Permits(action Action, role model.Role) bool {
	rule, ok := policies[action]
	if !ok {
		return false
	}
	for _, r := range rule.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize evaluates the full rule for action: role first, then
// ownership when the rule requires it. Admins pass every ownership check.
func Authorize(action Action, id Identity, ownerID uuid.UUID) error {
	if !Permits(action, id.Role) {
		return apperrors.Forbidden("insufficient role")
	}
	rule := policies[action]
	if rule.RequireOwner && !id.IsAdmin() && ownerID != id.UserID {
		return apperrors.Forbidden("not authorized")
	}
	return nil
}
