package bot

import (
	"errors"
	"strconv"
	"strings"
)

// ActionKind enumerates every callback token the bot attaches to inline
// buttons. Fixed tokens map one-to-one; parameterized tokens carry a trailing
// numeric id.
type ActionKind int

const (
	ActionBrowseJobs ActionKind = iota
	ActionCreateProfile
	ActionEmployerInfo
	ActionStatistics
	ActionAdminUsers
	ActionAdminJobs
	ActionAdminCompanies
	ActionAdminBroadcast
	ActionAdminBackup
	ActionViewJob
	ActionApplyJob
	ActionSaveJob
	ActionViewCompany
	ActionSimilarJobs
)

// Action is a parsed callback token.
type Action struct {
	Kind ActionKind
	ID   int64 // record id for parameterized tokens, zero otherwise
}

var ErrUnknownToken = errors.New("unknown callback token")

var fixedTokens = map[string]ActionKind{
	"browse_jobs":     ActionBrowseJobs,
	"create_profile":  ActionCreateProfile,
	"employer_info":   ActionEmployerInfo,
	"statistics":      ActionStatistics,
	"admin_users":     ActionAdminUsers,
	"admin_jobs":      ActionAdminJobs,
	"admin_companies": ActionAdminCompanies,
	"admin_broadcast": ActionAdminBroadcast,
	"admin_backup":    ActionAdminBackup,
}

var prefixTokens = []struct {
	prefix string
	kind   ActionKind
}{
	{"view_job_", ActionViewJob},
	{"apply_job_", ActionApplyJob},
	{"save_job_", ActionSaveJob},
	{"view_company_", ActionViewCompany},
	{"similar_jobs_", ActionSimilarJobs},
}

// ParseAction resolves a callback token. Fixed tokens are matched exactly;
// parameterized ones by prefix with the trailing segment parsed as an id.
func ParseAction(token string) (Action, error) {
	if kind, ok := fixedTokens[token]; ok {
		return Action{Kind: kind}, nil
	}
	for _, p := range prefixTokens {
		if strings.HasPrefix(token, p.prefix) {
			id, err := strconv.ParseInt(token[len(p.prefix):], 10, 64)
			if err != nil {
				return Action{}, ErrUnknownToken
			}
			return Action{Kind: p.kind, ID: id}, nil
		}
	}
	return Action{}, ErrUnknownToken
}

// Token renders the callback data string for an action, the inverse of
// ParseAction.
func (a Action) Token() string {
	for token, kind := range fixedTokens {
		if kind == a.Kind && a.ID == 0 {
			return token
		}
	}
	for _, p := range prefixTokens {
		if p.kind == a.Kind {
			return p.prefix + strconv.FormatInt(a.ID, 10)
		}
	}
	return ""
}

// RequiresAdmin reports whether the action is gated by the allow-list.
func (a Action) RequiresAdmin() bool {
	switch a.Kind {
	case ActionAdminUsers, ActionAdminJobs, ActionAdminCompanies,
		ActionAdminBroadcast, ActionAdminBackup:
		return true
	}
	return false
}
