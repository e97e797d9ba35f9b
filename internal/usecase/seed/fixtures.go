package seed

// Fixtures is the on-disk seed format. Ids are optional and assigned on load.
type Fixtures struct {
	Objectives []ObjectiveFixture `yaml:"objectives"`
	KeyResults []KeyResultFixture `yaml:"key_results"`
	Teams      []TeamFixture      `yaml:"teams"`
	Users      []UserFixture      `yaml:"users"`
}

// ObjectiveFixture describes one objective.
type ObjectiveFixture struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Progress    *float64 `yaml:"progress"`
	Status      string   `yaml:"status"`
}

// KeyResultFixture describes one key result.
type KeyResultFixture struct {
	ID          string   `yaml:"id"`
	ObjectiveID string   `yaml:"objective_id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Progress    *float64 `yaml:"progress"`
}

// TeamFixture describes one team. A nil Description is stored as absent.
type TeamFixture struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	MemberCount *int    `yaml:"member_count"`
}

// UserFixture describes one user.
type UserFixture struct {
	ID        string `yaml:"id"`
	Username  string `yaml:"username"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Role      string `yaml:"role"`
}

// Len returns the number of entities across all kinds.
func (f Fixtures) Len() int {
	return len(f.Objectives) + len(f.KeyResults) + len(f.Teams) + len(f.Users)
}
