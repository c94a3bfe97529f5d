package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/repository"
	"github.com/quickshare/rooms/internal/storage"
)

// fakeStore is an in-memory implementation of every repository interface,
// with the same visible semantics as the gorm layer. It backs the
// end-to-end scenario tests where mocks would only restate expectations.
type fakeStore struct {
	mu       sync.Mutex
	rooms    map[uuid.UUID]*models.Room
	members  map[uuid.UUID][]models.Member
	messages map[uuid.UUID][]models.Message
	files    map[uuid.UUID][]models.FileAsset
	notes    map[uuid.UUID]*models.SharedNote
	activity map[uuid.UUID][]models.ActivityEvent
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:    make(map[uuid.UUID]*models.Room),
		members:  make(map[uuid.UUID][]models.Member),
		messages: make(map[uuid.UUID][]models.Message),
		files:    make(map[uuid.UUID][]models.FileAsset),
		notes:    make(map[uuid.UUID]*models.SharedNote),
		activity: make(map[uuid.UUID][]models.ActivityEvent),
	}
}

func (f *fakeStore) CreateRoomWithNote(_ context.Context, room *models.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	room.ID = uuid.New()
	room.CreatedAt = time.Now()
	f.rooms[room.ID] = room
	f.notes[room.ID] = &models.SharedNote{ID: uuid.New(), RoomID: room.ID, Content: "", UpdatedAt: time.Now()}
	return nil
}

func (f *fakeStore) FindRoomByID(_ context.Context, id uuid.UUID) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeStore) FindRoomByCode(_ context.Context, code string) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var newest *models.Room
	for _, room := range f.rooms {
		if room.Code != code {
			continue
		}
		if newest == nil || room.CreatedAt.After(newest.CreatedAt) {
			newest = room
		}
	}
	if newest == nil {
		return nil, repository.ErrRoomNotFound
	}
	copied := *newest
	return &copied, nil
}

func (f *fakeStore) CodeInUse(_ context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, room := range f.rooms {
		if room.Code == code && room.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) TeardownRoom(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[id]
	if !ok {
		return repository.ErrRoomNotFound
	}
	delete(f.members, id)
	delete(f.messages, id)
	delete(f.files, id)
	delete(f.notes, id)
	delete(f.activity, id)
	room.IsActive = false
	return nil
}

func (f *fakeStore) UpsertMember(_ context.Context, member *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, m := range f.members[member.RoomID] {
		if m.SessionID == member.SessionID {
			f.members[member.RoomID][i].DisplayName = member.DisplayName
			*member = f.members[member.RoomID][i]
			return nil
		}
	}
	member.ID = uuid.New()
	member.JoinedAt = time.Now()
	f.members[member.RoomID] = append(f.members[member.RoomID], *member)
	return nil
}

func (f *fakeStore) ListMembers(_ context.Context, roomID uuid.UUID) ([]models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Member(nil), f.members[roomID]...), nil
}

func (f *fakeStore) SaveMessage(_ context.Context, msg *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	f.messages[msg.RoomID] = append(f.messages[msg.RoomID], *msg)
	return nil
}

func (f *fakeStore) ListMessages(_ context.Context, roomID uuid.UUID) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Insertion order is creation order; avoids timestamp ties.
	return append([]models.Message(nil), f.messages[roomID]...), nil
}

func (f *fakeStore) SaveFile(_ context.Context, file *models.FileAsset) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	file.ID = uuid.New()
	file.CreatedAt = time.Now()
	f.files[file.RoomID] = append(f.files[file.RoomID], *file)
	return nil
}

func (f *fakeStore) FindFileByID(_ context.Context, id uuid.UUID) (*models.FileAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, files := range f.files {
		for _, file := range files {
			if file.ID == id {
				copied := file
				return &copied, nil
			}
		}
	}
	return nil, repository.ErrFileNotFound
}

func (f *fakeStore) ListFiles(_ context.Context, roomID uuid.UUID) ([]models.FileAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	files := f.files[roomID]
	out := make([]models.FileAsset, 0, len(files))
	for i := len(files) - 1; i >= 0; i-- {
		out = append(out, files[i])
	}
	return out, nil
}

func (f *fakeStore) ListBlobPaths(_ context.Context, roomID uuid.UUID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var paths []string
	for _, file := range f.files[roomID] {
		paths = append(paths, file.BlobPath)
	}
	return paths, nil
}

func (f *fakeStore) FindNoteByRoom(_ context.Context, roomID uuid.UUID) (*models.SharedNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, ok := f.notes[roomID]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	copied := *note
	return &copied, nil
}

func (f *fakeStore) ReplaceNote(_ context.Context, roomID uuid.UUID, content string) (*models.SharedNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, ok := f.notes[roomID]
	if !ok {
		return nil, repository.ErrNoteNotFound
	}
	note.Content = content
	note.UpdatedAt = time.Now()
	copied := *note
	return &copied, nil
}

func (f *fakeStore) AppendActivity(_ context.Context, event *models.ActivityEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	f.activity[event.RoomID] = append(f.activity[event.RoomID], *event)
	return nil
}

func (f *fakeStore) ListActivity(_ context.Context, roomID uuid.UUID, limit int) ([]models.ActivityEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.activity[roomID]
	out := make([]models.ActivityEvent, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		out = append(out, events[i])
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeBlobs is an in-memory BlobStore. failPaths simulates a blob store
// that errors for particular paths, which teardown must tolerate.
type fakeBlobs struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	failPaths map[string]bool
	removed   []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{blobs: make(map[string][]byte), failPaths: make(map[string]bool)}
}

func (b *fakeBlobs) Put(_ context.Context, path string, r io.Reader, size int64) error {
	data, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[path] = data
	return nil
}

func (b *fakeBlobs) Open(_ context.Context, path string) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.blobs[path]
	if !ok {
		return nil, storage.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *fakeBlobs) Remove(_ context.Context, paths []string) []storage.RemoveResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	results := make([]storage.RemoveResult, 0, len(paths))
	for _, path := range paths {
		if b.failPaths[path] {
			results = append(results, storage.RemoveResult{Path: path, Err: errors.New("simulated blob failure")})
			continue
		}
		delete(b.blobs, path)
		b.removed = append(b.removed, path)
		results = append(results, storage.RemoveResult{Path: path, Err: nil})
	}
	return results
}

func (b *fakeBlobs) has(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.blobs[path]
	return ok
}
