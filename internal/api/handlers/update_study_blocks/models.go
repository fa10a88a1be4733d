package update_study_blocks

// UpdateStudyBlocksRequest HTTP request model. Значения заменяют текущие целиком
type UpdateStudyBlocksRequest struct {
	Weekdays []int `json:"weekdays"`
	Hours    []int `json:"hours"`
}

// StudyBlocksResponse HTTP response model
type StudyBlocksResponse struct {
	Weekdays []int `json:"weekdays"`
	Hours    []int `json:"hours"`
}
