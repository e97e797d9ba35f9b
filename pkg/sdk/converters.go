package okrsearch

import "github.com/kailas-cloud/okrsearch/internal/domain/search/result"

func fromEnvelope(env result.Envelope) Results {
	out := EmptyResults()
	for _, o := range env.Objectives {
		out.Objectives = append(out.Objectives, Objective{
			ID: o.ID, Title: o.Title, Description: o.Description,
			Progress: o.Progress, Status: o.Status,
		})
	}
	for _, kr := range env.KeyResults {
		out.KeyResults = append(out.KeyResults, KeyResult{
			ID: kr.ID, Title: kr.Title, Description: kr.Description,
			ObjectiveID: kr.ObjectiveID, Progress: kr.Progress,
		})
	}
	for _, t := range env.Teams {
		out.Teams = append(out.Teams, Team{
			ID: t.ID, Name: t.Name, Description: t.Description, MemberCount: t.MemberCount,
		})
	}
	for _, u := range env.Users {
		out.Users = append(out.Users, User{
			ID: u.ID, Username: u.Username, FirstName: u.FirstName,
			LastName: u.LastName, Email: u.Email, Role: u.Role,
		})
	}
	return out
}
