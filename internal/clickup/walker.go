package clickup

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kutbudev/clickup-bridge/internal/models"
)

// Walker flattens the ClickUp hierarchy of a single workspace
// (spaces → folders → lists → tasks) into TaskRecords.
type Walker struct {
	client *Client
	teamID string
}

// NewWalker creates a walker rooted at the given workspace (team) id
func NewWalker(client *Client, teamID string) *Walker {
	return &Walker{client: client, teamID: teamID}
}

type spacesResponse struct {
	Spaces []container `json:"spaces"`
}

type foldersResponse struct {
	Folders []container `json:"folders"`
}

type listsResponse struct {
	Lists []container `json:"lists"`
}

type tasksResponse struct {
	Tasks []taskPayload `json:"tasks"`
}

// container is the shared shape of spaces, folders and lists: only the id
// is needed to descend and only the name is denormalized into records.
type container struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// taskPayload mirrors the subset of the ClickUp task object we consume.
// Pointer fields distinguish absent/null values from present empty ones.
type taskPayload struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Status      *taskStatus              `json:"status"`
	Priority    json.RawMessage          `json:"priority"`
	DueDate     *string                  `json:"due_date"`
	DateCreated *string                  `json:"date_created"`
	Assignees   []map[string]interface{} `json:"assignees"`
	URL         string                   `json:"url"`
}

type taskStatus struct {
	Status *string `json:"status"`
}

// WalkAll performs a sequential depth-first traversal of the full hierarchy
// and returns one TaskRecord per task. A failure at any level aborts the
// whole walk: the caller gets the error and no records.
func (w *Walker) WalkAll(ctx context.Context) ([]models.TaskRecord, error) {
	runID := uuid.NewString()
	log.Printf("[ingest %s] walking workspace %s", runID, w.teamID)

	var records []models.TaskRecord

	var spaces spacesResponse
	if err := w.fetch(ctx, fmt.Sprintf("team/%s/space", w.teamID), &spaces); err != nil {
		return nil, err
	}

	for _, space := range spaces.Spaces {
		var folders foldersResponse
		if err := w.fetch(ctx, fmt.Sprintf("space/%s/folder", space.ID), &folders); err != nil {
			return nil, err
		}

		for _, folder := range folders.Folders {
			var lists listsResponse
			if err := w.fetch(ctx, fmt.Sprintf("folder/%s/list", folder.ID), &lists); err != nil {
				return nil, err
			}

			for _, list := range lists.Lists {
				var tasks tasksResponse
				if err := w.fetch(ctx, fmt.Sprintf("list/%s/task", list.ID), &tasks); err != nil {
					return nil, err
				}

				for _, task := range tasks.Tasks {
					record, err := normalizeTask(task, space.Name, folder.Name, list.Name)
					if err != nil {
						return nil, err
					}
					records = append(records, record)
				}
			}
		}
	}

	log.Printf("[ingest %s] collected %d task records", runID, len(records))
	return records, nil
}

// fetch retrieves one resource collection and decodes it into out
func (w *Walker) fetch(ctx context.Context, endpoint string, out interface{}) error {
	body, err := w.client.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &RemoteServiceError{Endpoint: endpoint, Err: fmt.Errorf("malformed response body: %w", err)}
	}
	return nil
}

// normalizeTask maps one raw task onto the flat record shape, applying the
// defaulting rules for every optional field. Only a missing task id is an
// error; everything else resolves to a default.
func normalizeTask(task taskPayload, spaceName, folderName, listName string) (models.TaskRecord, error) {
	if task.ID == "" {
		return models.TaskRecord{}, fmt.Errorf("task without id in list %q", listName)
	}

	record := models.TaskRecord{
		TaskID:      task.ID,
		Title:       task.Name,
		Description: task.Description,
		Status:      "Unknown",
		Priority:    normalizePriority(task.Priority),
		DueDate:     stringOrNone(task.DueDate),
		CreatedDate: stringOrNone(task.DateCreated),
		AssignedTo:  task.Assignees,
		ListName:    listName,
		FolderName:  folderName,
		SpaceName:   spaceName,
		URL:         task.URL,
	}

	if task.Status != nil && task.Status.Status != nil {
		record.Status = *task.Status.Status
	}
	if record.AssignedTo == nil {
		record.AssignedTo = []map[string]interface{}{}
	}

	return record, nil
}

// normalizePriority extracts the nested priority value. ClickUp sometimes
// returns priority as a plain string or null instead of an object; anything
// that is not an object with a priority field normalizes to "Not set".
func normalizePriority(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "Not set"
	}
	var nested struct {
		Priority *string `json:"priority"`
	}
	if err := json.Unmarshal(raw, &nested); err != nil || nested.Priority == nil {
		return "Not set"
	}
	return *nested.Priority
}

func stringOrNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
