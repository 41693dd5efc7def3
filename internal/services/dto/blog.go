package dto

import "time"

type BlogPostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BlogDetailResponse struct {
	Post    BlogPostResponse   `json:"post"`
	Related []BlogPostResponse `json:"related"`
}
