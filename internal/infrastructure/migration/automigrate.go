package migration

import (
	"campusvoice/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model, in dependency order.
func AutoMigrateModels() []any {
	return []any{
		&models.DepartmentModel{},
		&models.UserModel{},
		&models.IssueModel{},
		&models.SupportModel{},
		&models.ContestModel{},
		&models.RevalidationVoteModel{},
		&models.TimelineEventModel{},
		&models.IssueCommentModel{},
		&models.ProposalModel{},
		&models.ProposalVoteModel{},
		&models.NotificationModel{},
	}
}
