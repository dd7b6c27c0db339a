package models

import "time"

// Like represents a like on a tweet
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_tweet_like;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TweetID   uint      `json:"tweet_id" gorm:"index;uniqueIndex:idx_user_tweet_like;not null"`
	Tweet     *Tweet    `json:"-" gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
}
