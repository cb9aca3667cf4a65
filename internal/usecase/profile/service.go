package profile

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/futureuniv/campusfeed/domain"
	"github.com/futureuniv/campusfeed/internal/avatar"
)

type Service struct {
	profileRepo domain.ProfileRepository
	objectStore domain.ObjectStore
}

var _ domain.ProfileUsecase = (*Service)(nil)

// NewService will create a new profile service object
func NewService(profiles domain.ProfileRepository, objects domain.ObjectStore) *Service {
	return &Service{
		profileRepo: profiles,
		objectStore: objects,
	}
}

func (s *Service) Get(ctx context.Context, id string) (domain.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// Edit applies a field-level patch to the caller's own profile.
func (s *Service) Edit(ctx context.Context, token, id string, changes domain.ProfileChanges) error {
	if changes.IsEmpty() {
		return domain.ErrBadParamInput
	}
	return s.profileRepo.Update(ctx, token, id, changes)
}

// SelectAvatar points the profile at one of the predefined avatars.
func (s *Service) SelectAvatar(ctx context.Context, token, id, tag string) error {
	if !avatar.IsPredefined(tag) {
		return domain.ErrBadParamInput
	}
	return s.profileRepo.Update(ctx, token, id, domain.ProfileChanges{AvatarRef: &tag})
}

// UploadAvatar stores the image under an identity-scoped object name and
// points the profile at the uploaded path.
func (s *Service) UploadAvatar(ctx context.Context, token, id string, image *domain.Upload) (string, error) {
	if image == nil || len(image.Data) == 0 {
		return "", domain.ErrBadParamInput
	}

	name := fmt.Sprintf("%s/%s%s", id, uuid.NewString(), path.Ext(image.Filename))
	ref, err := s.objectStore.Upload(ctx, token, domain.BucketAvatars, name, image)
	if err != nil {
		return "", err
	}

	if err := s.profileRepo.Update(ctx, token, id, domain.ProfileChanges{AvatarRef: &ref}); err != nil {
		return "", err
	}
	return ref, nil
}
