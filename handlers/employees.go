package handlers

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"onboarding_backend/db"
	"onboarding_backend/models"
)

// DevMode gates error detail in 500 responses.
var DevMode = false

// SaveEmployee handles POST /save-employee: multipart form with employee
// fields plus up to four document files. Any failure after files hit disk
// triggers cleanup so a failed submission leaves no orphans.
func SaveEmployee(c *gin.Context) {
	docs, upErr := saveDocuments(c)
	if upErr != nil {
		c.JSON(upErr.status, gin.H{"error": upErr.message})
		return
	}

	name := c.PostForm("emp_name")
	email := c.PostForm("emp_email")
	if name == "" || email == "" {
		cleanup(docs)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	years, err := parseOptionalInt(c.PostForm("emp_years_of_experience"))
	if err != nil {
		cleanup(docs)
		c.JSON(http.StatusBadRequest, gin.H{"error": "emp_years_of_experience must be an integer"})
		return
	}
	dob, err := parseOptionalDate(c.PostForm("emp_dob"))
	if err != nil {
		cleanup(docs)
		c.JSON(http.StatusBadRequest, gin.H{"error": "emp_dob must be a date (YYYY-MM-DD)"})
		return
	}
	joining, err := parseOptionalDate(c.PostForm("emp_joining_date"))
	if err != nil {
		cleanup(docs)
		c.JSON(http.StatusBadRequest, gin.H{"error": "emp_joining_date must be a date (YYYY-MM-DD)"})
		return
	}

	emp := models.Employee{
		EmpName:              name,
		EmpEmail:             email,
		EmpDOB:               dob,
		EmpMobile:            c.PostForm("emp_mobile"),
		EmpAddress:           c.PostForm("emp_address"),
		EmpCity:              c.PostForm("emp_city"),
		EmpState:             c.PostForm("emp_state"),
		EmpZipcode:           c.PostForm("emp_zipcode"),
		EmpBank:              c.PostForm("emp_bank"),
		EmpAccount:           c.PostForm("emp_account"),
		EmpIFSC:              c.PostForm("emp_ifsc"),
		EmpJobRole:           c.PostForm("emp_job_role"),
		EmpDepartment:        c.PostForm("emp_department"),
		EmpExperienceStatus:  c.PostForm("emp_experience_status") == "true",
		EmpCompanyName:       optionalString(c.PostForm("emp_company_name")),
		EmpYearsOfExperience: years,
		EmpJoiningDate:       joining,
		EmpExperienceDoc:     docFilename(docs, models.FieldExperienceDoc),
		EmpSSCDoc:            docFilename(docs, models.FieldSSCDoc),
		EmpInterDoc:          docFilename(docs, models.FieldInterDoc),
		EmpGradDoc:           docFilename(docs, models.FieldGradDoc),
		EmpTermsAccepted:     c.PostForm("emp_terms_accepted") == "true",
	}

	if err := db.DB.Create(&emp).Error; err != nil {
		cleanup(docs)
		logrus.WithError(err).Error("Save employee failed")
		body := gin.H{"error": "Database error"}
		if DevMode {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "employeeId": emp.ID})
}

// ListEmployees handles GET /employees. Document fields are rewritten from
// bare filenames to absolute URLs under the static /uploads route. Row order
// is whatever the store returns.
func ListEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := db.DB.Find(&employees).Error; err != nil {
		logrus.WithError(err).Error("Fetch employees failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	base := requestBaseURL(c) + "/uploads/"
	for i := range employees {
		for _, field := range models.DocFields {
			if name, _ := employees[i].Document(field); name != nil {
				url := base + *name
				setDocument(&employees[i], field, &url)
			}
		}
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

type downloadRequest struct {
	EmpEmail string `json:"empEmail"`
	DocField string `json:"docField"`
}

// DownloadDocument handles POST /download: streams a single stored document
// as an attachment. Distinguishes "never uploaded" (null field) from "lost
// after upload" (file gone from disk).
func DownloadDocument(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmpEmail == "" || !validDocField(req.DocField) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	emp, ok := findByEmail(c, req.EmpEmail, "Server error during download")
	if !ok {
		return
	}

	filename, _ := emp.Document(req.DocField)
	if filename == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found for this employee"})
		return
	}

	path := filepath.Join(StorageDir, *filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File missing on server"})
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.FileAttachment(path, *filename)
}

type downloadAllRequest struct {
	EmpEmail string `json:"empEmail"`
}

// DownloadAllDocuments handles POST /download-all: zips every stored document
// that still exists on disk into an in-memory archive. Entries are named
// after their document field so two documents sharing an extension cannot
// collide inside the archive.
func DownloadAllDocuments(c *gin.Context) {
	var req downloadAllRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EmpEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee email is required"})
		return
	}

	emp, ok := findByEmail(c, req.EmpEmail, "Server error while creating zip file")
	if !ok {
		return
	}

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)
	fileCount := 0

	for _, field := range models.DocFields {
		filename, _ := emp.Document(field)
		if filename == nil {
			continue
		}
		srcPath := filepath.Join(StorageDir, *filename)
		src, err := os.Open(srcPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			logrus.WithError(err).Errorf("Failed to open %s for archive", srcPath)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while creating zip file"})
			return
		}

		entry, err := zipWriter.Create(field + filepath.Ext(*filename))
		if err == nil {
			_, err = io.Copy(entry, src)
		}
		src.Close()
		if err != nil {
			logrus.WithError(err).Error("Failed to write archive entry")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while creating zip file"})
			return
		}
		fileCount++
	}

	if fileCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No documents found for this employee"})
		return
	}

	if err := zipWriter.Close(); err != nil {
		logrus.WithError(err).Error("Failed to finalize archive")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while creating zip file"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", req.EmpEmail+"-documents.zip"))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// findByEmail loads an employee by email, writing the 404/500 response itself
// when the lookup fails.
func findByEmail(c *gin.Context, email, serverErrMsg string) (*models.Employee, bool) {
	var emp models.Employee
	if err := db.DB.Where("emp_email = ?", email).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logrus.WithError(err).Error("Employee lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": serverErrMsg})
		}
		return nil, false
	}
	return &emp, true
}

func validDocField(field string) bool {
	for _, f := range models.DocFields {
		if f == field {
			return true
		}
	}
	return false
}

func setDocument(emp *models.Employee, field string, value *string) {
	switch field {
	case models.FieldExperienceDoc:
		emp.EmpExperienceDoc = value
	case models.FieldSSCDoc:
		emp.EmpSSCDoc = value
	case models.FieldInterDoc:
		emp.EmpInterDoc = value
	case models.FieldGradDoc:
		emp.EmpGradDoc = value
	}
}

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func docFilename(docs savedDocs, field string) *string {
	if name, ok := docs[field]; ok {
		return &name
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
