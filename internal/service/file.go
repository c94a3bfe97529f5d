package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/repository"
	"github.com/quickshare/rooms/internal/storage"
	"github.com/quickshare/rooms/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// MaxFileSize is 50 MiB, checked before any byte is stored.
	MaxFileSize = 50 * 1024 * 1024

	// DownloadURLTTL is how long a signed download link stays valid.
	DownloadURLTTL = 60 * time.Second
)

type FileService struct {
	files    repository.FileRepository
	roomSvc  *RoomService
	blobs    storage.BlobStore
	signer   *storage.URLSigner
	bus      realtime.Bus
	activity *ActivityService
}

func NewFileService(
	files repository.FileRepository,
	roomSvc *RoomService,
	blobs storage.BlobStore,
	signer *storage.URLSigner,
	bus realtime.Bus,
	activity *ActivityService,
) *FileService {
	return &FileService{
		files:    files,
		roomSvc:  roomSvc,
		blobs:    blobs,
		signer:   signer,
		bus:      bus,
		activity: activity,
	}
}

// Upload stores the blob, inserts the FileAsset row and logs the upload.
// The blob path keeps the original extension but never the original name.
func (s *FileService) Upload(ctx context.Context, roomID uuid.UUID, uploadedBy, fileName, mimeType string, size int64, r io.Reader) (*models.FileAsset, error) {
	logCtx := logrus.WithFields(logrus.Fields{"room_id": roomID, "file_name": fileName})

	if size <= 0 {
		return nil, ErrEmptyFile
	}
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	if _, err := s.roomSvc.GetActive(ctx, roomID); err != nil {
		return nil, err
	}

	blobPath := fmt.Sprintf("%s/%s%s", roomID, uuid.New(), strings.ToLower(path.Ext(fileName)))
	if err := s.blobs.Put(ctx, blobPath, r, size); err != nil {
		logCtx.WithError(err).Error("Failed to store blob")
		return nil, err
	}

	file := &models.FileAsset{
		RoomID:     roomID,
		FileName:   fileName,
		SizeBytes:  size,
		MimeType:   mimeType,
		BlobPath:   blobPath,
		UploadedBy: uploadedBy,
	}
	if err := s.files.SaveFile(ctx, file); err != nil {
		logCtx.WithError(err).Error("Failed to save file row, removing blob")
		for _, res := range s.blobs.Remove(ctx, []string{blobPath}) {
			if res.Err != nil {
				logCtx.WithError(res.Err).Warn("Failed to remove orphaned blob")
			}
		}
		return nil, err
	}

	s.activity.Record(ctx, roomID, models.ActionFileUploaded, uploadedBy,
		fmt.Sprintf("Uploaded %s (%s)", fileName, session.FormatFileSize(size)))

	event, err := realtime.NewEvent(realtime.ChangeInsert, realtime.ResourceFiles, roomID, file)
	if err == nil {
		err = s.bus.Publish(ctx, event)
	}
	if err != nil {
		logCtx.WithError(err).Warn("Failed to publish file event")
	}

	return file, nil
}

// List returns the room's files newest first.
func (s *FileService) List(ctx context.Context, roomID uuid.UUID) ([]models.FileAsset, error) {
	return s.files.ListFiles(ctx, roomID)
}

// DownloadURL mints a signed link for one file, valid for DownloadURLTTL.
func (s *FileService) DownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	file, err := s.files.FindFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return "", ErrFileNotFound
		}
		return "", err
	}
	token, err := s.signer.Sign(file.ID, DownloadURLTTL)
	if err != nil {
		return "", fmt.Errorf("sign download url for file %s: %w", file.ID, err)
	}
	return fmt.Sprintf("/api/files/%s/download?token=%s", file.ID, token), nil
}

// OpenDownload redeems a signed token and opens the blob for streaming.
func (s *FileService) OpenDownload(ctx context.Context, token string) (*models.FileAsset, io.ReadCloser, error) {
	fileID, err := s.signer.Verify(token)
	if err != nil {
		return nil, nil, err
	}
	file, err := s.files.FindFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}
	rc, err := s.blobs.Open(ctx, file.BlobPath)
	if err != nil {
		return nil, nil, err
	}
	return file, rc, nil
}

// OpenPreview serves image blobs without a token, for inline previews
// only. Non-image files must go through a signed download.
func (s *FileService) OpenPreview(ctx context.Context, fileID uuid.UUID) (*models.FileAsset, io.ReadCloser, error) {
	file, err := s.files.FindFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}
	if !strings.HasPrefix(file.MimeType, "image/") {
		return nil, nil, ErrFileNotFound
	}
	rc, err := s.blobs.Open(ctx, file.BlobPath)
	if err != nil {
		return nil, nil, err
	}
	return file, rc, nil
}
