package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema from the models. Production
// deployments use the SQL migrations under migrations/ instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&PostModel{},
		&LikeModel{},
		&SaveModel{},
		&ShareModel{},
		&ReadModel{},
		&CommentModel{},
	)
}
