package core

import "time"

// Event 是活动文档的领域模型。
// 本管线只消费 ID / Category / City / Price 四个字段，
// 其余字段由生成器与外部应用维护，管线原样透传。
//
// Price 保留原始字符串形态（数值字符串或 "Free"），
// 解析规则见 feature.ParsePrice：不可解析一律按 0.0（免费）处理。
type Event struct {
	ID           string    `json:"eventID"`
	Title        string    `json:"title,omitempty"`
	Header       string    `json:"header,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	City         string    `json:"city"`
	Price        string    `json:"price"`
	StreetName   string    `json:"streetName,omitempty"`
	StreetNumber string    `json:"streetNumber,omitempty"`
	Latitude     float64   `json:"latitude,omitempty"`
	Longitude    float64   `json:"longitude,omitempty"`
	Geohash      string    `json:"geohash,omitempty"`
	Availability int       `json:"availability,omitempty"`
	ImageURL     string    `json:"imageURL,omitempty"`
	CreatorID    string    `json:"creatorId,omitempty"`
	Date         time.Time `json:"date,omitempty"`
}
