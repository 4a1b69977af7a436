package domain

// BlogPost is an article in the blog catalog. Content is markdown.
type BlogPost struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	Image       string    `bson:"image" json:"image"`
	Author      string    `bson:"author" json:"author"`
	PublishedAt Timestamp `bson:"published_at" json:"published_at"`
	ReadTime    string    `bson:"read_time" json:"read_time"`
}
