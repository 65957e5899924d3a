package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/zewedjobs/service-jobportal-go/internal/job"
	"github.com/zewedjobs/service-jobportal-go/internal/stats"
	"github.com/zewedjobs/service-jobportal-go/internal/user"
)

// previewBudget is the character budget for free-text fields on listing cards.
const previewBudget = 150

// truncate cuts s to at most n runes, appending an ellipsis when it cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// humanCount renders n with thousands separators (1234567 -> "1,234,567").
func humanCount(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// titleWords turns a snake_case enum value into display form
// ("job_seeker" -> "Job Seeker").
func titleWords(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func orNotSet(s *string) string {
	if s == nil || *s == "" {
		return "Not set"
	}
	return *s
}

func deadlineShort(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("Jan 02, 2006")
}

func deadlineLong(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("January 02, 2006")
}

func welcomeText(firstName string) string {
	return fmt.Sprintf(`👋 *Welcome to ZewedJobs, %s!*

🇪🇹 *Your Gateway to Ethiopian Job Opportunities*

📋 *Available Commands:*
/jobs - Browse latest job openings
/search - Search jobs by keywords
/profile - View and update your profile
/help - Show help message
/admin - Admin panel (for admins only)

🚀 *Start your journey now!*`, firstName)
}

// jobCardText is the listing card: truncated description plus a numeric id
// footer so follow-up buttons can reference the record unambiguously.
func jobCardText(l job.Listing) string {
	return fmt.Sprintf(`*%s*

🏢 *Company:* %s
📍 *Location:* %s
💰 *Salary:* ETB %s - %s
📅 *Deadline:* %s

_%s_

🆔 Job ID: #%d`,
		l.Title,
		orNA(l.CompanyName),
		orNA(l.Location),
		humanCount(l.SalaryMin), humanCount(l.SalaryMax),
		deadlineShort(l.Deadline),
		truncate(l.Description, previewBudget),
		l.ID)
}

// searchResultText is the compact card used for search hits and digests.
func searchResultText(l job.Listing) string {
	return fmt.Sprintf("*%s* - %s\n📍 %s • 💰 ETB %s\n🆔 Job ID: #%d",
		l.Title, orNA(l.CompanyName), orNA(l.Location), humanCount(l.SalaryMin), l.ID)
}

func jobDetailsText(d job.Details) string {
	companyAbout := "No company description available."
	if d.CompanyDescription != nil && *d.CompanyDescription != "" {
		companyAbout = truncate(*d.CompanyDescription, 200)
	}
	return fmt.Sprintf(`🎯 *Job Details*

*%s*

🏢 *Company:* %s
📍 *Location:* %s
💰 *Salary:* ETB %s - %s
📅 *Deadline:* %s
🔧 *Job Type:* %s
📝 *Experience:* %s

📝 *Description:*
%s

📋 *Requirements:*
%s

🏢 *About Company:*
%s

📧 *Contact:* %s
🌐 *Website:* %s

🆔 Job ID: #%d`,
		d.Title,
		orNA(d.CompanyName),
		orNA(d.Location),
		humanCount(d.SalaryMin), humanCount(d.SalaryMax),
		deadlineLong(d.Deadline),
		titleWords(orNA(d.JobType)),
		titleWords(orNA(d.ExperienceLevel)),
		d.Description,
		orNA(d.Requirements),
		companyAbout,
		orNA(d.CompanyEmail),
		orNA(d.CompanyWebsite),
		d.ID)
}

func profileText(u user.User, applications int64) string {
	username := "Not set"
	if u.Username != nil && *u.Username != "" {
		username = "@" + *u.Username
	}
	return fmt.Sprintf(`👤 *Your Profile*

*Name:* %s
*Username:* %s
*Email:* %s
*Phone:* %s
*User Type:* %s
*Status:* %s

*Statistics:*
• Applications: %s
• Profile Completion: %d%%
• Member Since: %s`,
		orNotSet(u.FullName),
		username,
		orNotSet(u.Email),
		orNotSet(u.Phone),
		titleWords(u.UserType),
		titleWords(u.Status),
		humanCount(applications),
		u.ProfileCompletion(),
		u.CreatedAt.Format("Jan 02, 2006"))
}

func portalStatsText(s stats.PortalSummary) string {
	return fmt.Sprintf(`📊 *ZewedJobs Statistics*

👥 *Users:*
• Job Seekers: %s
• Employers: %s

💼 *Jobs:*
• Active Jobs: %s
• Locations: %s cities

📝 *Applications:*
• Pending: %s
• Accepted: %s`,
		humanCount(s.JobSeekers),
		humanCount(s.Employers),
		humanCount(s.ActiveJobs),
		humanCount(s.Locations),
		humanCount(s.PendingApplications),
		humanCount(s.AcceptedApplications))
}

func adminPanelText(s stats.AdminSummary) string {
	return fmt.Sprintf(`👑 *Admin Panel*

📊 *Statistics:*
• Total Users: %s
• Active Jobs: %s
• Active Companies: %s
• Today's Applications: %s`,
		humanCount(s.TotalUsers),
		humanCount(s.ActiveJobs),
		humanCount(s.ActiveCompanies),
		humanCount(s.TodayApplications))
}

func adminUsersText(users []user.User) string {
	var b strings.Builder
	b.WriteString("👥 *Recent Users*\n")
	for _, u := range users {
		name := "Anonymous"
		if u.FullName != nil && *u.FullName != "" {
			name = *u.FullName
		}
		username := "N/A"
		if u.Username != nil && *u.Username != "" {
			username = *u.Username
		}
		fmt.Fprintf(&b, `
👤 *%s*
Username: @%s
Type: %s
Status: %s
Joined: %s
──────────────────────
`,
			name, username, titleWords(u.UserType), titleWords(u.Status),
			u.CreatedAt.Format("2006-01-02"))
	}
	return b.String()
}

// digestText is the daily alert body: up to five fresh jobs per user.
func digestText(jobs []job.Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 *Daily Job Alerts*\n\nFound *%d* new jobs matching your preferences:\n", len(jobs))
	for _, l := range jobs {
		fmt.Fprintf(&b, "\n• *%s* - %s\n  📍 %s • 💰 ETB %s\n  🆔 Job ID: #%d\n",
			l.Title, orNA(l.CompanyName), orNA(l.Location), humanCount(l.SalaryMin), l.ID)
	}
	b.WriteString("\n📊 View all jobs: /jobs\n⚙️ Update preferences: /profile")
	return b.String()
}

const helpText = `📚 *ZewedJobs Bot Help*

*For Job Seekers:*
/start - Start the bot and see welcome message
/jobs - Browse latest job openings
/search <keywords> - Search jobs by keyword/location
/profile - View and update your profile

*Admin Commands:*
/admin - Access admin panel

*Support:*
/help - Show this help message

*Tips:*
• Complete your profile for better job matches
• Use specific keywords when searching
• Apply early for better chances

📧 *Contact Support:* support@zewedjobs.com
🌐 *Website:* https://zewedjobs.com`

const createProfileText = `👤 *Create Your Profile*

To help you find the best job matches, please provide the following information:

1. *Full Name* (required)
2. *Email Address* (required)
3. *Phone Number* (required)
4. *Profession/Field*
5. *Years of Experience*
6. *Highest Education Level*
7. *Skills (comma separated)*

Please reply with your information in this format:

` + "```" + `
Name: Your Full Name
Email: your.email@example.com
Phone: +251 91 234 5678
Profession: Software Engineer
Experience: 3 years
Education: BSc in Computer Science
Skills: Python, Go, React, PostgreSQL
` + "```"

const employerInfoText = `💼 *For Employers*

ZewedJobs connects you with thousands of active job seekers.

Job postings and company profiles are managed through the admin team.
📧 Contact us at employers@zewedjobs.com to get listed.`

const accessDeniedText = "❌ Access denied. Admin only."

// errorAlertText is the formatted alert delivered to each allow-listed admin
// when an update handler fails.
func errorAlertText(err any, userID, chatID int64, now time.Time) string {
	return fmt.Sprintf(`⚠️ *Bot Error*

*Error:* %v
*User:* %d
*Chat:* %d
*Time:* %s`, err, userID, chatID, now.Format("2006-01-02 15:04:05"))
}
