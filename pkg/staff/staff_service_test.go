package staff

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/entities"
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStaffRepository struct {
	staff map[string]*entities.Staff
}

func newFakeStaffRepository() *fakeStaffRepository {
	return &fakeStaffRepository{staff: make(map[string]*entities.Staff)}
}

func (f *fakeStaffRepository) CreateStaff(_ context.Context, member *entities.Staff) error {
	f.staff[member.ID.String()] = member
	return nil
}

func (f *fakeStaffRepository) GetStaffByID(_ context.Context, id string) (*entities.Staff, error) {
	member, ok := f.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return member, nil
}

func (f *fakeStaffRepository) GetStaffByRegistrationCode(_ context.Context, code string) (*entities.Staff, error) {
	for _, member := range f.staff {
		if member.RegistrationCode == code {
			return member, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStaffRepository) GetStaff(_ context.Context, search string) ([]*entities.Staff, error) {
	var result []*entities.Staff
	for _, member := range f.staff {
		if search == "" || strings.Contains(strings.ToLower(member.Name), strings.ToLower(search)) {
			result = append(result, member)
		}
	}
	return result, nil
}

func (f *fakeStaffRepository) UpdateStaff(_ context.Context, member *entities.Staff) error {
	f.staff[member.ID.String()] = member
	return nil
}

func (f *fakeStaffRepository) DeleteStaff(_ context.Context, id string) error {
	delete(f.staff, id)
	return nil
}

// fakeS3 records uploads and deletions instead of talking to a bucket.
type fakeS3 struct {
	uploads int
	deleted []string
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader, folder string) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://bucket.s3.amazonaws.com/%s/%d-%s", folder, f.uploads, file.Filename), nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	const marker = ".amazonaws.com/"
	idx := strings.Index(link, marker)
	if idx < 0 {
		return ""
	}
	return link[idx+len(marker):]
}

func createRequest(code string) domain.CreateStaffRequest {
	return domain.CreateStaffRequest{
		RegistrationCode: code,
		Name:             "Joana Lima",
		BirthDate:        "1991-04-17",
		Sex:              "F",
		JobRole:          "confeiteira",
		NationalID:       "123.456.789-00",
		Email:            "joana@bakehouse.test",
	}
}

func TestCreateStaffFormatsBirthDate(t *testing.T) {
	repo := newFakeStaffRepository()
	service := NewStaffService(repo, &fakeS3{})

	res, err := service.CreateStaff(context.Background(), createRequest("E-0042"))
	require.NoError(t, err)

	assert.Equal(t, "E-0042", res.RegistrationCode)
	assert.Equal(t, "1991-04-17", res.BirthDate)
	assert.Contains(t, repo.staff, res.ID)
}

func TestCreateStaffRejectsDuplicateRegistrationCode(t *testing.T) {
	repo := newFakeStaffRepository()
	service := NewStaffService(repo, &fakeS3{})

	_, err := service.CreateStaff(context.Background(), createRequest("E-0042"))
	require.NoError(t, err)

	second := createRequest("E-0042")
	second.Name = "Marcos Prado"
	_, err = service.CreateStaff(context.Background(), second)
	assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	assert.Len(t, repo.staff, 1)
}

func TestCreateStaffRejectsMalformedBirthDate(t *testing.T) {
	repo := newFakeStaffRepository()
	service := NewStaffService(repo, &fakeS3{})

	req := createRequest("E-0042")
	req.BirthDate = "17/04/1991"
	_, err := service.CreateStaff(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)
	assert.Empty(t, repo.staff)
}

func TestUpdateStaffReparsesBirthDate(t *testing.T) {
	repo := newFakeStaffRepository()
	service := NewStaffService(repo, &fakeS3{})

	res, err := service.CreateStaff(context.Background(), createRequest("E-0042"))
	require.NoError(t, err)

	err = service.UpdateStaff(context.Background(), res.ID, domain.UpdateStaffRequest{BirthDate: "not-a-date"})
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)

	require.NoError(t, service.UpdateStaff(context.Background(), res.ID, domain.UpdateStaffRequest{
		BirthDate: "1992-01-30",
		JobRole:   "chefe de cozinha",
	}))

	updated := repo.staff[res.ID]
	assert.Equal(t, "1992-01-30", updated.BirthDate.Format("2006-01-02"))
	assert.Equal(t, "chefe de cozinha", updated.JobRole)
	// untouched fields survive a partial update
	assert.Equal(t, "Joana Lima", updated.Name)
}

func TestUploadStaffPhotoRejectsNonImage(t *testing.T) {
	repo := newFakeStaffRepository()
	s3 := &fakeS3{}
	service := NewStaffService(repo, s3)

	res, err := service.CreateStaff(context.Background(), createRequest("E-0042"))
	require.NoError(t, err)

	_, err = service.UploadStaffPhoto(context.Background(), domain.UploadStaffPhotoRequest{
		StaffID: res.ID,
		Photo:   &multipart.FileHeader{Filename: "resume.pdf"},
	})
	assert.ErrorIs(t, err, domain.ErrStaffPhotoInvalidImage)
	assert.Zero(t, s3.uploads)
}

func TestUploadStaffPhotoReplacesPreviousObject(t *testing.T) {
	repo := newFakeStaffRepository()
	s3 := &fakeS3{}
	service := NewStaffService(repo, s3)

	res, err := service.CreateStaff(context.Background(), createRequest("E-0042"))
	require.NoError(t, err)

	first, err := service.UploadStaffPhoto(context.Background(), domain.UploadStaffPhotoRequest{
		StaffID: res.ID,
		Photo:   &multipart.FileHeader{Filename: "face.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, first, repo.staff[res.ID].PhotoURL)
	assert.Empty(t, s3.deleted)

	second, err := service.UploadStaffPhoto(context.Background(), domain.UploadStaffPhotoRequest{
		StaffID: res.ID,
		Photo:   &multipart.FileHeader{Filename: "face2.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, second, repo.staff[res.ID].PhotoURL)
	require.Len(t, s3.deleted, 1)
	assert.Equal(t, s3.GetObjectKeyFromLink(first), s3.deleted[0])
}

func TestDeleteStaffRemovesStoredPhoto(t *testing.T) {
	repo := newFakeStaffRepository()
	s3 := &fakeS3{}
	service := NewStaffService(repo, s3)

	res, err := service.CreateStaff(context.Background(), createRequest("E-0042"))
	require.NoError(t, err)

	url, err := service.UploadStaffPhoto(context.Background(), domain.UploadStaffPhotoRequest{
		StaffID: res.ID,
		Photo:   &multipart.FileHeader{Filename: "face.png"},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteStaff(context.Background(), res.ID))
	assert.NotContains(t, repo.staff, res.ID)
	require.Len(t, s3.deleted, 1)
	assert.Equal(t, s3.GetObjectKeyFromLink(url), s3.deleted[0])
}

func TestGetStaffByIDUnknown(t *testing.T) {
	service := NewStaffService(newFakeStaffRepository(), &fakeS3{})

	_, err := service.GetStaffByID(context.Background(), "3e2f1c34-0000-0000-0000-000000000009")
	assert.ErrorIs(t, err, domain.ErrStaffNotFound)
}
