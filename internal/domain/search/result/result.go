package result

// Objective is the search projection of an objective.
type Objective struct {
	ID          string
	Title       string
	Description string
	Progress    *float64
	Status      *string
}

// KeyResult is the search projection of a key result.
type KeyResult struct {
	ID          string
	Title       string
	Description string
	ObjectiveID *string
	Progress    *float64
}

// Team is the search projection of a team. Description may be absent.
type Team struct {
	ID          string
	Name        string
	Description *string
	MemberCount *int
}

// User is the search projection of a user.
type User struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Role      *string
}

// Envelope is the unified answer for one search term.
// Every sequence is non-nil; use Empty or Normalize to guarantee it.
type Envelope struct {
	Objectives []Objective
	KeyResults []KeyResult
	Teams      []Team
	Users      []User
}

// Empty returns the canonical empty envelope.
func Empty() Envelope {
	return Envelope{
		Objectives: []Objective{},
		KeyResults: []KeyResult{},
		Teams:      []Team{},
		Users:      []User{},
	}
}

// Normalize replaces nil sequences with empty ones.
func (e Envelope) Normalize() Envelope {
	if e.Objectives == nil {
		e.Objectives = []Objective{}
	}
	if e.KeyResults == nil {
		e.KeyResults = []KeyResult{}
	}
	if e.Teams == nil {
		e.Teams = []Team{}
	}
	if e.Users == nil {
		e.Users = []User{}
	}
	return e
}

// Total returns the number of projections across all sequences.
func (e Envelope) Total() int {
	return len(e.Objectives) + len(e.KeyResults) + len(e.Teams) + len(e.Users)
}

// IsEmpty reports whether no sequence holds a projection.
func (e Envelope) IsEmpty() bool { return e.Total() == 0 }
