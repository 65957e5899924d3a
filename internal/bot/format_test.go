package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zewedjobs/service-jobportal-go/internal/job"
)

func strPtr(s string) *string { return &s }

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short stays", in: "hello", n: 10, want: "hello"},
		{name: "exact stays", in: "hello", n: 5, want: "hello"},
		{name: "long cut", in: "hello world", n: 5, want: "hello..."},
		{name: "multibyte safe", in: "አዲስ አበባ ኢትዮጵያ", n: 7, want: "አዲስ አበባ..."},
		{name: "empty", in: "", n: 5, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.n))
		})
	}
}

func TestHumanCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanCount(tt.in))
	}
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Job Seeker", titleWords("job_seeker"))
	assert.Equal(t, "Active", titleWords("active"))
	assert.Equal(t, "N/A", titleWords("N/A"))
}

func TestJobCardText(t *testing.T) {
	long := strings.Repeat("x", 200)
	l := job.Listing{
		Job: job.Job{
			ID:          42,
			Title:       "Backend Engineer",
			Description: long,
			Location:    strPtr("Addis Ababa"),
			SalaryMin:   25000,
			SalaryMax:   40000,
		},
		CompanyName: strPtr("Zewed Tech"),
	}
	card := jobCardText(l)

	assert.Contains(t, card, "*Backend Engineer*")
	assert.Contains(t, card, "Zewed Tech")
	assert.Contains(t, card, "ETB 25,000 - 40,000")
	assert.Contains(t, card, "🆔 Job ID: #42")
	// description is cut to the preview budget plus the ellipsis
	assert.Contains(t, card, strings.Repeat("x", previewBudget)+"...")
	assert.NotContains(t, card, long)
}

func TestJobCardTextMissingCompany(t *testing.T) {
	l := job.Listing{Job: job.Job{ID: 1, Title: "T", Description: "d"}}
	card := jobCardText(l)
	assert.Contains(t, card, "🏢 *Company:* N/A")
	assert.Contains(t, card, "📍 *Location:* N/A")
	assert.Contains(t, card, "📅 *Deadline:* N/A")
}

func TestDigestText(t *testing.T) {
	jobs := []job.Listing{
		{Job: job.Job{ID: 1, Title: "A", SalaryMin: 1000}, CompanyName: strPtr("ACo")},
		{Job: job.Job{ID: 2, Title: "B", SalaryMin: 2000}},
	}
	text := digestText(jobs)
	assert.Contains(t, text, "Found *2* new jobs")
	assert.Contains(t, text, "🆔 Job ID: #1")
	assert.Contains(t, text, "🆔 Job ID: #2")
	assert.Contains(t, text, "/jobs")
}
