package models

import "time"

// MaxTweetLength is the maximum number of characters in a tweet's text.
const MaxTweetLength = 280

// Tweet is a short post. Content may be empty when media is attached.
type Tweet struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Media     []Media   `json:"-" gorm:"many2many:tweet_media;constraint:OnDelete:CASCADE"`
	Likes     []Like    `json:"-"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// CreateTweetRequest defines the request body for POST /api/tweets
type CreateTweetRequest struct {
	TweetData     string `json:"tweet_data" validate:"omitempty,tweettext"`
	TweetMediaIDs []uint `json:"tweet_media_ids"`
}

// LikeCompact identifies a user who liked a tweet.
type LikeCompact struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// FeedTweet is a tweet as it appears in the feed
type FeedTweet struct {
	ID          uint          `json:"id"`
	Content     string        `json:"content"`
	Attachments []string      `json:"attachments"`
	Author      UserCompact   `json:"author"`
	Likes       []LikeCompact `json:"likes"`
}

// ToFeed converts a tweet with preloaded Author, Media and Likes.User.
func (t Tweet) ToFeed() FeedTweet {
	item := FeedTweet{
		ID:          t.ID,
		Content:     t.Content,
		Attachments: make([]string, 0, len(t.Media)),
		Author:      t.Author.ToCompact(),
		Likes:       make([]LikeCompact, 0, len(t.Likes)),
	}
	for _, m := range t.Media {
		item.Attachments = append(item.Attachments, m.URL())
	}
	for _, l := range t.Likes {
		item.Likes = append(item.Likes, LikeCompact{UserID: l.User.ID, Name: l.User.Name})
	}
	return item
}
