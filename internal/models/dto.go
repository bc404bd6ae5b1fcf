package models

type CreateResumeRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

type UpdateResumeRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
	Experience *[]string `json:"experience,omitempty"`
	Education  *[]string `json:"education,omitempty"`
}

type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
}

type UpdateJobRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
}

type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	ResumeID       string `json:"resume_id,omitempty"`
	JobID          string `json:"job_id,omitempty"`
}

type UploadResponse struct {
	Resume   *Resume  `json:"resume"`
	Stage    string   `json:"stage"`
	Percent  int      `json:"percent"`
	Skills   []string `json:"skills"`
	Filename string   `json:"filename"`
}

// ScoreHistoryEntry embeds the resume and job summaries the dashboard needs
// alongside the stored score.
type ScoreHistoryEntry struct {
	Score
	ResumeTitle string `json:"resume_title"`
	JobTitle    string `json:"job_title"`
	JobCompany  string `json:"job_company"`
}
