package model

type RoomStatus string

const (
	RoomLobby RoomStatus = "lobby"
	RoomLive  RoomStatus = "live"
	RoomEnded RoomStatus = "ended"
)

// Room 一局问答活动的房间，由主持人创建并管理
// swagger:model Room
type Room struct {
	BaseModel
	HostID      uint       `gorm:"index;not null" json:"hostId"`
	Code        string     `gorm:"size:12;uniqueIndex;not null" json:"code"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      RoomStatus `gorm:"size:20;default:'lobby'" json:"status"`
	// CurrentPosition 当前正在进行的题目位置，0 表示尚未开始任何题目
	CurrentPosition int `gorm:"default:0" json:"currentPosition"`
	MaxPlayers      int `gorm:"default:8" json:"maxPlayers"`
}

func (Room) TableName() string {
	return "rooms"
}
