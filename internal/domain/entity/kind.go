package entity

// Kind identifies one of the searchable entity stores.
type Kind string

// Entity kind constants.
const (
	Objective Kind = "objective"
	KeyResult Kind = "key_result"
	Team      Kind = "team"
	User      Kind = "user"
)

// Collection returns the table / key namespace holding entities of this kind.
func (k Kind) Collection() string {
	switch k {
	case Objective:
		return "objectives"
	case KeyResult:
		return "key_results"
	case Team:
		return "teams"
	case User:
		return "users"
	default:
		return ""
	}
}

