package models

type CategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:50;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type TeamModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:50;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TeamModel) TableName() string {
	return "teams"
}
