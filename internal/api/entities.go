package api

// TimeEntry is a durable time interval owned by the remote store.
// Start and End stay in their wire form; End is nil while the entry is
// still running remotely.
type TimeEntry struct {
	ID             string   `json:"id"`
	Start          string   `json:"start"`
	End            *string  `json:"end"`
	Duration       *int64   `json:"duration"`
	Description    *string  `json:"description"`
	TaskID         *string  `json:"task_id"`
	ProjectID      *string  `json:"project_id"`
	OrganizationID string   `json:"organization_id"`
	UserID         string   `json:"user_id"`
	Tags           []string `json:"tags"`
	Billable       bool     `json:"billable"`
}

type Project struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	ClientID      *string `json:"client_id"`
	IsArchived    bool    `json:"is_archived"`
	BillableRate  *int64  `json:"billable_rate"`
	IsBillable    bool    `json:"is_billable"`
	EstimatedTime *int64  `json:"estimated_time"`
	SpentTime     int64   `json:"spent_time"`
	IsPublic      bool    `json:"is_public"`
}

type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Timezone        string `json:"timezone"`
	WeekStart       string `json:"week_start"`
}

type Member struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	IsPlaceholder bool   `json:"is_placeholder"`
	BillableRate  *int64 `json:"billable_rate"`
}
