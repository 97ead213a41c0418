package models

import (
	"time"

	"gorm.io/gorm"
)

// Document slot names, in the order they appear on the intake form.
const (
	FieldExperienceDoc = "emp_experience_doc"
	FieldSSCDoc        = "emp_ssc_doc"
	FieldInterDoc      = "emp_inter_doc"
	FieldGradDoc       = "emp_grad_doc"
)

// DocFields lists the four document slots in a stable order.
var DocFields = []string{FieldExperienceDoc, FieldSSCDoc, FieldInterDoc, FieldGradDoc}

// Employee is one onboarding submission. Column and JSON names follow the
// original intake form field names. Document fields hold generated filenames
// under the storage directory, never the binaries themselves.
type Employee struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	EmpName              string     `gorm:"column:emp_name;size:255;not null" json:"emp_name"`
	EmpEmail             string     `gorm:"column:emp_email;size:255;not null;uniqueIndex" json:"emp_email"`
	EmpDOB               *time.Time `gorm:"column:emp_dob;type:date" json:"emp_dob"`
	EmpMobile            string     `gorm:"column:emp_mobile;size:20" json:"emp_mobile"`
	EmpAddress           string     `gorm:"column:emp_address;type:text" json:"emp_address"`
	EmpCity              string     `gorm:"column:emp_city;size:100" json:"emp_city"`
	EmpState             string     `gorm:"column:emp_state;size:100" json:"emp_state"`
	EmpZipcode           string     `gorm:"column:emp_zipcode;size:20" json:"emp_zipcode"`
	EmpBank              string     `gorm:"column:emp_bank;size:255" json:"emp_bank"`
	EmpAccount           string     `gorm:"column:emp_account;size:50" json:"emp_account"`
	EmpIFSC              string     `gorm:"column:emp_ifsc;size:20" json:"emp_ifsc"`
	EmpJobRole           string     `gorm:"column:emp_job_role;size:255" json:"emp_job_role"`
	EmpDepartment        string     `gorm:"column:emp_department;size:255" json:"emp_department"`
	EmpExperienceStatus  bool       `gorm:"column:emp_experience_status" json:"emp_experience_status"`
	EmpCompanyName       *string    `gorm:"column:emp_company_name;size:255" json:"emp_company_name"`
	EmpYearsOfExperience *int       `gorm:"column:emp_years_of_experience" json:"emp_years_of_experience"`
	EmpJoiningDate       *time.Time `gorm:"column:emp_joining_date;type:date" json:"emp_joining_date"`
	EmpExperienceDoc     *string    `gorm:"column:emp_experience_doc;size:255" json:"emp_experience_doc"`
	EmpSSCDoc            *string    `gorm:"column:emp_ssc_doc;size:255" json:"emp_ssc_doc"`
	EmpInterDoc          *string    `gorm:"column:emp_inter_doc;size:255" json:"emp_inter_doc"`
	EmpGradDoc           *string    `gorm:"column:emp_grad_doc;size:255" json:"emp_grad_doc"`
	EmpTermsAccepted     bool       `gorm:"column:emp_terms_accepted;default:false" json:"emp_terms_accepted"`
	CreatedAt            time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// Document returns the stored filename for the named slot. The second result
// is false when the name is not one of the four valid fields.
func (e *Employee) Document(field string) (*string, bool) {
	switch field {
	case FieldExperienceDoc:
		return e.EmpExperienceDoc, true
	case FieldSSCDoc:
		return e.EmpSSCDoc, true
	case FieldInterDoc:
		return e.EmpInterDoc, true
	case FieldGradDoc:
		return e.EmpGradDoc, true
	}
	return nil, false
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Employee{})
}
