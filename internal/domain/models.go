// Package domain defines the persistence models for the news content API:
// topics, users, articles, and comments. These types are mapped with GORM
// and form the core data layer of the application.
package domain

import "time"

// Topic is a category that articles belong to. The slug is the natural
// primary key and is referenced by Article.Topic.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(64);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author account. The username is the natural primary key and is
// referenced by Article.Author and Comment.Author. Users are read-only in
// this API; rows are provisioned out of band.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(64);primaryKey"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"type:varchar(512)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a published piece belonging to a topic and written by a user.
//
// CommentCount is not a stored column: read paths select it as a correlated
// COUNT over the comments table and GORM scans it into the read-only field.
// The votes counter is only ever mutated through an atomic
// "votes = votes + ?" update, never read-modify-write.
type Article struct {
	ArticleID     int64     `json:"article_id"      gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"type:varchar(255);not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(64);not null;index"`
	Author        string    `json:"author"          gorm:"type:varchar(64);not null;index"`
	Body          string    `json:"body"            gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"      gorm:"index"`
	Votes         int       `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"type:varchar(512)"`
	CommentCount  int64     `json:"comment_count"   gorm:"->;-:migration"`

	// FK associations enforced by the store (PRAGMA foreign_keys=ON).
	TopicRef  Topic `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AuthorRef User  `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a user remark attached to an article. Comments are created
// through the article-scoped POST endpoint and deleted by id.
type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"not null;index"`
	Author    string    `json:"author"     gorm:"type:varchar(64);not null;index"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// Comments are cascade-deleted with their article; the author FK is
	// restrictive so usernames referenced by comments cannot vanish.
	Article   Article `json:"-" gorm:"references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AuthorRef User    `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
