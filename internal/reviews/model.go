package reviews

import "time"

// Record is the fixed-shape output of either reviewer implementation.
type Record struct {
	OverallScore     int      `json:"overallScore"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Improvements     []string `json:"improvements"`
	RewrittenBullets []string `json:"rewrittenBullets"`
	MissingKeywords  []string `json:"missingKeywords"`
}

// StoredReview is a Record persisted with ownership and timestamp metadata.
// Entries are append-only; there is no update or delete path.
type StoredReview struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	ResumeName string    `json:"resumeName"`
	ResumeText string    `json:"resumeText"`
	JDText     string    `json:"jdText"`
	CreatedAt  time.Time `json:"createdAt"`
	Record
}
