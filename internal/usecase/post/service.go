package post

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/futureuniv/campusfeed/domain"
)

type Service struct {
	postStore   domain.PostStore
	objectStore domain.ObjectStore
	profileRepo domain.ProfileRepository
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(posts domain.PostStore, objects domain.ObjectStore, profiles domain.ProfileRepository) *Service {
	return &Service{
		postStore:   posts,
		objectStore: objects,
		profileRepo: profiles,
	}
}

// Create stores a new post. When an image is attached it is uploaded first
// under an author-scoped random object name; the post row then references
// the storage path.
func (s *Service) Create(ctx context.Context, token string, p *domain.Post, image *domain.Upload) error {
	if p.Content == "" {
		return domain.ErrBadParamInput
	}

	if image != nil {
		name := fmt.Sprintf("%s/%s%s", p.AuthorID, uuid.NewString(), path.Ext(image.Filename))
		ref, err := s.objectStore.Upload(ctx, token, domain.BucketPostImages, name, image)
		if err != nil {
			return err
		}
		p.ImageRef = ref
	}

	p.LikeCount = 0
	return s.postStore.InsertPost(ctx, token, p)
}

// Snapshot fetches the authoritative feed for a viewer and backfills any
// author snapshot the join left empty (profiles appear slightly after
// account confirmation).
func (s *Service) Snapshot(ctx context.Context, viewerID string) ([]domain.Post, error) {
	posts, err := s.postStore.QueryPosts(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	posts, err = s.fillAuthorDetails(ctx, posts)
	if err != nil {
		logrus.Warnf("failed to fill author details: %v", err)
	}
	return posts, nil
}

// fillAuthorDetails resolves missing author snapshots concurrently, one
// lookup per distinct author.
func (s *Service) fillAuthorDetails(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	missing := map[string]domain.Profile{}
	for _, p := range posts {
		if p.Author.Name == "" && p.Author.Username == "" {
			missing[p.AuthorID] = domain.Profile{}
		}
	}
	if len(missing) == 0 {
		return posts, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	chanProfile := make(chan domain.Profile)
	for authorID := range missing {
		g.Go(func() error {
			res, err := s.profileRepo.GetByID(ctx, authorID)
			if err != nil {
				return err
			}
			chanProfile <- res
			return nil
		})
	}

	go func() {
		defer close(chanProfile)
		if err := g.Wait(); err != nil {
			logrus.Error(err)
		}
	}()

	for profile := range chanProfile {
		missing[profile.ID] = profile
	}

	if err := g.Wait(); err != nil {
		return posts, err
	}

	for i := range posts {
		if p, ok := missing[posts[i].AuthorID]; ok && p.ID != "" {
			posts[i].Author = p
		}
	}
	return posts, nil
}
