package models

type RequestModel struct {
	ID             uint    `gorm:"primaryKey"`
	Title          string  `gorm:"size:100;not null"`
	Description    string  `gorm:"size:1000;not null"`
	Status         string  `gorm:"size:20;not null;index"`
	Priority       string  `gorm:"size:20;not null;index"`
	CategoryID     uint    `gorm:"not null;index"`
	AuthorID       string  `gorm:"size:100;not null;index"`
	AssignedUserID *string `gorm:"size:100;index"`
	AssignedTeamID *uint   `gorm:"index"`
	Version        int     `gorm:"not null;default:1"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (RequestModel) TableName() string {
	return "requests"
}

type ResponseModel struct {
	ID        uint   `gorm:"primaryKey"`
	RequestID uint   `gorm:"not null;index"`
	AuthorID  string `gorm:"size:100;not null;index"`
	Text      string `gorm:"size:1000;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ResponseModel) TableName() string {
	return "request_responses"
}

type AttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	RequestID   uint   `gorm:"not null;index"`
	FileName    string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100"`
	Size        int64  `gorm:"not null"`
	Data        []byte `gorm:"type:mediumblob;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}
