package models

import "time"

// DefaultCommentAuthor 未署名评论的作者
const DefaultCommentAuthor = "Anonymous"

// Comment 车辆评论
// 删除车辆时不级联删除评论，CarID 可能指向已删除的车辆
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CarID     uint      `json:"carId" gorm:"index;not null"`
	Author    string    `json:"author" gorm:"size:100;not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}
