package models

// TaskRecord is the flat, denormalized form of one ClickUp task as produced
// by a full ingestion pass. Defaults are applied at normalization time, so a
// stored record never carries missing values: absent status becomes
// "Unknown", absent priority "Not set", absent dates the sentinel "None".
type TaskRecord struct {
	TaskID      string                   `json:"task_id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Status      string                   `json:"status"`
	Priority    string                   `json:"priority"`
	DueDate     string                   `json:"due_date"`
	CreatedDate string                   `json:"created_date"`
	AssignedTo  []map[string]interface{} `json:"assigned_to"`
	ListName    string                   `json:"list_name"`
	FolderName  string                   `json:"folder_name"`
	SpaceName   string                   `json:"space_name"`
	URL         string                   `json:"url"`
}
