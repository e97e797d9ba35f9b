package okrsearch

// Objective is an objective match.
type Objective struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Progress    *float64 `json:"progress,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// KeyResult is a key result match.
type KeyResult struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ObjectiveID *string  `json:"objectiveId,omitempty"`
	Progress    *float64 `json:"progress,omitempty"`
}

// Team is a team match. Description is nil when the team has none.
type Team struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	MemberCount *int    `json:"memberCount,omitempty"`
}

// User is a user match.
type User struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Role      *string `json:"role,omitempty"`
}

// Results is the answer for one term. Every list is non-nil.
type Results struct {
	Objectives []Objective `json:"objectives"`
	KeyResults []KeyResult `json:"keyResults"`
	Teams      []Team      `json:"teams"`
	Users      []User      `json:"users"`
}

// EmptyResults returns results with four empty lists.
func EmptyResults() Results {
	return Results{
		Objectives: []Objective{},
		KeyResults: []KeyResult{},
		Teams:      []Team{},
		Users:      []User{},
	}
}

// Total returns the number of matches across all lists.
func (r Results) Total() int {
	return len(r.Objectives) + len(r.KeyResults) + len(r.Teams) + len(r.Users)
}

func (r Results) normalize() Results {
	if r.Objectives == nil {
		r.Objectives = []Objective{}
	}
	if r.KeyResults == nil {
		r.KeyResults = []KeyResult{}
	}
	if r.Teams == nil {
		r.Teams = []Team{}
	}
	if r.Users == nil {
		r.Users = []User{}
	}
	return r
}

// clone returns a deep copy with non-nil lists.
func (r Results) clone() Results {
	out := Results{
		Objectives: make([]Objective, len(r.Objectives)),
		KeyResults: make([]KeyResult, len(r.KeyResults)),
		Teams:      make([]Team, len(r.Teams)),
		Users:      make([]User, len(r.Users)),
	}
	for i, o := range r.Objectives {
		o.Progress = clonePtr(o.Progress)
		o.Status = clonePtr(o.Status)
		out.Objectives[i] = o
	}
	for i, kr := range r.KeyResults {
		kr.ObjectiveID = clonePtr(kr.ObjectiveID)
		kr.Progress = clonePtr(kr.Progress)
		out.KeyResults[i] = kr
	}
	for i, t := range r.Teams {
		t.Description = clonePtr(t.Description)
		t.MemberCount = clonePtr(t.MemberCount)
		out.Teams[i] = t
	}
	for i, u := range r.Users {
		u.Role = clonePtr(u.Role)
		out.Users[i] = u
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// HealthStatus represents the server health report.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}
