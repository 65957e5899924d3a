package job

import "time"

// Job is a row in the jobs table. Company fields come from a left outer join,
// so they are nullable even on listings.
type Job struct {
	ID              int64      `db:"id" json:"id"`
	Title           string     `db:"title" json:"title"`
	Description     string     `db:"description" json:"description"`
	Requirements    *string    `db:"requirements" json:"requirements"`
	CompanyID       *int64     `db:"company_id" json:"company_id"`
	Location        *string    `db:"location" json:"location"`
	Category        *string    `db:"category" json:"category"`
	JobType         *string    `db:"job_type" json:"job_type"`
	ExperienceLevel *string    `db:"experience_level" json:"experience_level"`
	SalaryMin       int64      `db:"salary_min" json:"salary_min"`
	SalaryMax       int64      `db:"salary_max" json:"salary_max"`
	Status          string     `db:"status" json:"status"`
	Deadline        *time.Time `db:"deadline" json:"deadline"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Listing is a job with the company preview fields joined in.
type Listing struct {
	Job
	CompanyName *string `db:"company_name" json:"company_name"`
	CompanyLogo *string `db:"company_logo" json:"company_logo"`
}

// Details is a job with the full company record joined in.
type Details struct {
	Job
	CompanyName        *string `db:"company_name" json:"company_name"`
	CompanyDescription *string `db:"company_description" json:"company_description"`
	CompanyEmail       *string `db:"company_email" json:"company_email"`
	CompanyWebsite     *string `db:"company_website" json:"company_website"`
}

// AdminRow is the dashboard listing shape: listing fields plus the per-job
// application count.
type AdminRow struct {
	Job
	CompanyName       *string `db:"company_name" json:"company_name"`
	ApplicationsCount int64   `db:"applications_count" json:"applications_count"`
}
