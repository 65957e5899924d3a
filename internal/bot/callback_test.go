package bot

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Action
		err   bool
	}{
		{name: "fixed token", token: "browse_jobs", want: Action{Kind: ActionBrowseJobs}},
		{name: "fixed admin token", token: "admin_broadcast", want: Action{Kind: ActionAdminBroadcast}},
		{name: "view job with id", token: "view_job_42", want: Action{Kind: ActionViewJob, ID: 42}},
		{name: "apply job with id", token: "apply_job_7", want: Action{Kind: ActionApplyJob, ID: 7}},
		{name: "similar jobs with id", token: "similar_jobs_1001", want: Action{Kind: ActionSimilarJobs, ID: 1001}},
		{name: "unknown token", token: "frobnicate", err: true},
		{name: "prefix without id", token: "view_job_", err: true},
		{name: "prefix with junk id", token: "view_job_abc", err: true},
		{name: "empty token", token: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.token)
			if tt.err {
				if !errors.Is(err, ErrUnknownToken) {
					t.Fatalf("want ErrUnknownToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestActionTokenRoundTrip(t *testing.T) {
	actions := []Action{
		{Kind: ActionBrowseJobs},
		{Kind: ActionCreateProfile},
		{Kind: ActionEmployerInfo},
		{Kind: ActionStatistics},
		{Kind: ActionAdminUsers},
		{Kind: ActionAdminJobs},
		{Kind: ActionAdminCompanies},
		{Kind: ActionAdminBroadcast},
		{Kind: ActionAdminBackup},
		{Kind: ActionViewJob, ID: 1},
		{Kind: ActionApplyJob, ID: 99},
		{Kind: ActionSaveJob, ID: 5},
		{Kind: ActionViewCompany, ID: 12},
		{Kind: ActionSimilarJobs, ID: 3},
	}
	for _, a := range actions {
		token := a.Token()
		if token == "" {
			t.Errorf("no token for %+v", a)
			continue
		}
		back, err := ParseAction(token)
		if err != nil {
			t.Errorf("round trip of %q failed: %v", token, err)
			continue
		}
		if back != a {
			t.Errorf("round trip of %q: got %+v, want %+v", token, back, a)
		}
	}
}

func TestActionRequiresAdmin(t *testing.T) {
	if (Action{Kind: ActionViewJob, ID: 1}).RequiresAdmin() {
		t.Error("view_job should not require admin")
	}
	if !(Action{Kind: ActionAdminUsers}).RequiresAdmin() {
		t.Error("admin_users should require admin")
	}
	if !(Action{Kind: ActionAdminBackup}).RequiresAdmin() {
		t.Error("admin_backup should require admin")
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"start", CmdStart},
		{"jobs", CmdJobs},
		{"search", CmdSearch},
		{"profile", CmdProfile},
		{"admin", CmdAdmin},
		{"help", CmdHelp},
		{"stats", CmdUnknown},
		{"", CmdUnknown},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.in); got != tt.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if CmdStart.RequiresAdmin() {
		t.Error("/start should not require admin")
	}
	if !CmdAdmin.RequiresAdmin() {
		t.Error("/admin should require admin")
	}
}

func TestAllowList(t *testing.T) {
	al := NewAllowList([]int64{10, 20})
	if !al.Allows(10) || !al.Allows(20) {
		t.Error("listed ids should be allowed")
	}
	if al.Allows(30) {
		t.Error("unlisted id should be denied")
	}
	empty := NewAllowList(nil)
	if empty.Allows(10) {
		t.Error("empty allow-list should deny everyone")
	}
}
