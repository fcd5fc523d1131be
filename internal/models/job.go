package models

import "time"

type Job struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	UserID                string `gorm:"not null;index;size:36" json:"user_id"`
	NumberOfPosition      int    `gorm:"not null" json:"number_of_position"`
	CompanyName           string `gorm:"not null" json:"company_name"`
	CompanyLogo           string `json:"company_logo"`
	JobPosition           string `gorm:"not null" json:"job_position"`
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
