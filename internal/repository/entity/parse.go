package entity

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/okrsearch/internal/db"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/result"
	"github.com/kailas-cloud/okrsearch/internal/logger"
)

func parseObjective(ctx context.Context, row db.Row) result.Objective {
	return result.Objective{
		ID:          row[db.IDField],
		Title:       row["title"],
		Description: row["description"],
		Progress:    optFloat(ctx, row, "progress"),
		Status:      optString(row, "status"),
	}
}

func parseKeyResult(ctx context.Context, row db.Row) result.KeyResult {
	return result.KeyResult{
		ID:          row[db.IDField],
		Title:       row["title"],
		Description: row["description"],
		ObjectiveID: optString(row, "objective_id"),
		Progress:    optFloat(ctx, row, "progress"),
	}
}

func parseTeam(ctx context.Context, row db.Row) result.Team {
	return result.Team{
		ID:          row[db.IDField],
		Name:        row["name"],
		Description: optString(row, "description"),
		MemberCount: optInt(ctx, row, "member_count"),
	}
}

func parseUser(_ context.Context, row db.Row) result.User {
	return result.User{
		ID:        row[db.IDField],
		Username:  row["username"],
		FirstName: row["first_name"],
		LastName:  row["last_name"],
		Email:     row["email"],
		Role:      optString(row, "role"),
	}
}

func optString(row db.Row, col string) *string {
	v, ok := row[col]
	if !ok {
		return nil
	}
	return &v
}

func optFloat(ctx context.Context, row db.Row, col string) *float64 {
	v, ok := row[col]
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.FromContext(ctx).Debug("skip unparsable column",
			zap.String("id", row[db.IDField]), zap.String("column", col), zap.Error(err))
		return nil
	}
	return &f
}

func optInt(ctx context.Context, row db.Row, col string) *int {
	v, ok := row[col]
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.FromContext(ctx).Debug("skip unparsable column",
			zap.String("id", row[db.IDField]), zap.String("column", col), zap.Error(err))
		return nil
	}
	return &n
}
