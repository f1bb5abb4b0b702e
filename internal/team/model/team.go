package model

import "time"

// Team represents a club team. CreatorID is the user who registered the
// team and is the only one allowed to schedule matches and report results
// for it.
type Team struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	CreatorID uint      `gorm:"column:creator_id;not null;index" json:"creator_id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// Member represents a registered player of a team.
type Member struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	TeamID    uint      `gorm:"column:team_id;not null;index" json:"team_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "members"
}
