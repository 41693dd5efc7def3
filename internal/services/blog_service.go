package services

import (
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
)

const relatedPostLimit = 3

type BlogService interface {
	List() ([]dto.BlogPostResponse, error)
	Get(id string) (*dto.BlogDetailResponse, error)
}

type blogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) List() ([]dto.BlogPostResponse, error) {
	posts, err := s.blogRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]dto.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toBlogPostResponse(&post, false))
	}
	return responses, nil
}

// Get returns the post with a handful of other recent posts for the
// "related" strip.
func (s *blogService) Get(id string) (*dto.BlogDetailResponse, error) {
	post, err := s.blogRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	related, err := s.blogRepo.FindRelated(id, relatedPostLimit)
	if err != nil {
		return nil, err
	}

	relatedResponses := make([]dto.BlogPostResponse, 0, len(related))
	for _, r := range related {
		relatedResponses = append(relatedResponses, toBlogPostResponse(&r, false))
	}

	return &dto.BlogDetailResponse{
		Post:    toBlogPostResponse(post, true),
		Related: relatedResponses,
	}, nil
}

func toBlogPostResponse(post *models.BlogPost, withContent bool) dto.BlogPostResponse {
	response := dto.BlogPostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Category:  post.Category,
		ImageURL:  post.ImageURL,
		Excerpt:   post.Excerpt,
		CreatedAt: post.CreatedAt,
	}
	if withContent {
		response.Content = post.Content
	}
	return response
}
