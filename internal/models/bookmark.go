package models

import "time"

// Bookmark is a snapshot of a Job at bookmark time, not a reference: the
// job's field values are copied into the row. JobID keeps the original job's
// identifier and UserID the job owner's; LoginUserID is the bookmarking user.
// The composite primary key rejects duplicate bookmarks per (user, job) pair.
type Bookmark struct {
	JobID                 uint   `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	LoginUserID           string `gorm:"primaryKey;size:36" json:"login_user_id"`
	UserID                string `gorm:"not null;index;size:36" json:"user_id"`
	NumberOfPosition      int    `json:"number_of_position"`
	CompanyName           string `json:"company_name"`
	CompanyLogo           string `json:"company_logo"`
	JobPosition           string `json:"job_position"`
	MonthlySalary         string `json:"monthly_salary"`
	JobType               string `json:"job_type"`
	RemoteOrInoffice      string `json:"remote_or_inoffice"`
	Location              string `json:"location"`
	JobDescription        string `json:"job_description"`
	AboutCompany          string `json:"about_company"`
	Skills                string `json:"skills"`
	AdditionalInformation string `json:"additional_information"`

	CreatedAt time.Time `json:"created_at"`
}
