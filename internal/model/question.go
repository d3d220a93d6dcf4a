package model

import "encoding/json"

const (
	MediaKindImage = "image"
	MediaKindAudio = "audio"
	MediaKindVideo = "video"
)

// Question 房间内的一道题目，Position 在房间内唯一且从 1 开始
// swagger:model Question
type Question struct {
	BaseModel
	RoomID   uint `gorm:"index;uniqueIndex:idx_room_position;not null" json:"roomId"`
	Position int  `gorm:"uniqueIndex:idx_room_position;not null" json:"position"`
	Prompt   string `gorm:"type:text;not null" json:"prompt"`
	// Options 选项文本数组（JSON），2-8 个
	Options      json.RawMessage `gorm:"type:json" json:"options"`
	CorrectIndex int             `gorm:"not null" json:"correctIndex"`
	Points       int             `gorm:"default:0" json:"points"`
	// TimeLimitSeconds 仅供客户端展示倒计时，0 表示不限时
	TimeLimitSeconds int    `gorm:"default:0" json:"timeLimitSeconds"`
	MediaURL         string `gorm:"size:255" json:"mediaUrl"`
	MediaKind        string `gorm:"size:20" json:"mediaKind"` // image, audio, video
}

func (Question) TableName() string {
	return "questions"
}
