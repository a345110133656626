package news

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrDuplicateSlug is returned when an insert or update collides with the
// unique index on slug.
var ErrDuplicateSlug = errors.New("slug already in use")

type NewsService struct {
	DB *gorm.DB
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// GetAllNews lists articles newest first; published="true" narrows the list
// to published ones.
func (s *NewsService) GetAllNews(published string) ([]News, error) {
	articles := []News{}

	query := s.DB.Order("created_at DESC")
	if published == "true" {
		query = query.Where("published = ?", true)
	}

	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *NewsService) GetNews(id uint) (*News, error) {
	var article News
	if err := s.DB.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// ResolveSlug derives a unique slug for title. It probes base, base-1,
// base-2, ... rebuilding from the base each round, until the store reports no
// match. The probe is not atomic with the insert; the unique index is the
// final backstop.
func (s *NewsService) ResolveSlug(title string) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = fallbackSlug
	}

	slug := base
	for counter := 1; ; counter++ {
		var count int64
		if err := s.DB.Model(&News{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *NewsService) CreateNews(input CreateNewsInput) (*News, error) {
	slug := input.Slug
	if slug == "" {
		resolved, err := s.ResolveSlug(input.Title)
		if err != nil {
			return nil, err
		}
		slug = resolved
	}

	category := input.Category
	if category == "" {
		category = "Berita"
	}

	article := News{
		Title:             input.Title,
		Slug:              slug,
		Content:           input.Content,
		Excerpt:           input.Excerpt,
		Thumbnail:         input.Thumbnail,
		ThumbnailPublicID: input.ThumbnailPublicID,
		Category:          category,
		Author:            input.Author,
		Published:         input.Published,
	}

	if err := s.DB.Create(&article).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return &article, nil
}

func (s *NewsService) UpdateNews(id uint, input UpdateNewsInput) (*News, error) {
	var article News
	if err := s.DB.First(&article, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Excerpt != nil {
		updates["excerpt"] = *input.Excerpt
	}
	if input.Thumbnail != nil {
		updates["thumbnail"] = *input.Thumbnail
	}
	if input.ThumbnailPublicID != nil {
		updates["thumbnail_public_id"] = *input.ThumbnailPublicID
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Author != nil {
		updates["author"] = *input.Author
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&article).Updates(updates).Error; err != nil {
			if isDuplicateKeyError(err) {
				return nil, ErrDuplicateSlug
			}
			return nil, err
		}
	}
	return &article, nil
}

func (s *NewsService) DeleteNews(id uint) error {
	var article News
	if err := s.DB.First(&article, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&article).Error
}
