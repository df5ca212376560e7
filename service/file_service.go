// Package service composes the session store, file catalog and blob store
// behind transport-agnostic operations. It holds no state of its own; every
// operation authenticates, delegates and translates domain errors.
package service

import (
	"context"
	"encoding/base64"
	"mime"
	"path/filepath"
	"strconv"

	"gorm.io/gorm"

	"files-manager/common"
	"files-manager/library/session"
	"files-manager/library/storage"
	"files-manager/model"
)

// FileService is the orchestrator behind the HTTP surface.
type FileService struct {
	sessions *session.Store
	users    *model.UserStore
	catalog  *model.FileCatalog
	blobs    *storage.BlobStore
	db       *gorm.DB
}

func NewFileService(sessions *session.Store, users *model.UserStore, catalog *model.FileCatalog, blobs *storage.BlobStore, db *gorm.DB) *FileService {
	return &FileService{
		sessions: sessions,
		users:    users,
		catalog:  catalog,
		blobs:    blobs,
		db:       db,
	}
}

// Connect exchanges credentials for a session token. Every failure mode is
// reported as common.ErrUnauthorized.
func (s *FileService) Connect(ctx context.Context, email string, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrUnauthorized
	}
	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return "", common.ErrUnauthorized
	}
	if !common.ValidatePasswordAndHash(password, user.Password) {
		return "", common.ErrUnauthorized
	}
	return s.sessions.Issue(ctx, user.Id)
}

// Disconnect revokes the token. An unknown token is unauthorized, matching
// the rest of the session surface.
func (s *FileService) Disconnect(ctx context.Context, token string) error {
	if _, err := s.sessions.Resolve(ctx, token); err != nil {
		return common.ErrUnauthorized
	}
	return s.sessions.Revoke(ctx, token)
}

// Resolve maps a token to its user id, for the auth middleware.
func (s *FileService) Resolve(ctx context.Context, token string) (int64, error) {
	return s.sessions.Resolve(ctx, token)
}

// Register creates a new account.
func (s *FileService) Register(ctx context.Context, email string, password string) (*model.User, error) {
	return s.users.Register(ctx, email, password)
}

// UserByID returns the account behind a resolved session.
func (s *FileService) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.ByID(ctx, id)
}

// UploadRequest is a typed upload, decoupled from the transport. Data is
// base64-encoded content, required for every kind except folder.
type UploadRequest struct {
	Name     string
	Type     string
	ParentID int64
	IsPublic bool
	Data     string
}

// Upload validates the request and creates the record; leaf uploads also
// persist the bytes and trigger the thumbnail pipeline.
func (s *FileService) Upload(ctx context.Context, userID int64, req UploadRequest) (*model.File, error) {
	if req.Name == "" {
		return nil, common.ErrMissingName
	}
	switch req.Type {
	case model.TypeFolder:
		return s.catalog.CreateFolder(ctx, userID, req.Name, req.ParentID, req.IsPublic)
	case model.TypeFile, model.TypeImage:
		if req.Data == "" {
			return nil, common.ErrMissingData
		}
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, common.ErrMissingData
		}
		return s.catalog.CreateLeaf(ctx, userID, req.Name, req.Type, req.ParentID, req.IsPublic, data)
	default:
		return nil, common.ErrMissingType
	}
}

// Show returns a record owned by userID.
func (s *FileService) Show(ctx context.Context, userID int64, fileID int64) (*model.File, error) {
	return s.catalog.GetByID(ctx, userID, fileID)
}

// List returns one page of the owner's records; parentID nil means all of
// them regardless of position in the hierarchy.
func (s *FileService) List(ctx context.Context, userID int64, parentID *int64, page int) ([]*model.File, error) {
	return s.catalog.List(ctx, userID, parentID, page)
}

// SetVisibility toggles isPublic on an owned record.
func (s *FileService) SetVisibility(ctx context.Context, userID int64, fileID int64, isPublic bool) (*model.File, error) {
	return s.catalog.SetVisibility(ctx, userID, fileID, isPublic)
}

// ContentRequest asks for the bytes of a record, optionally a thumbnail
// variant. Requester is nil when no valid session accompanies the request.
type ContentRequest struct {
	FileID    int64
	Requester *int64
	Size      int
}

// ContentResult locates the bytes to stream and the MIME type inferred from
// the record name.
type ContentResult struct {
	Path     string
	MimeType string
}

// ReadContent applies the visibility rule and resolves the on-disk location
// of the requested bytes. Private records are invisible to non-owners
// rather than forbidden. A missing variant is common.ErrNotFound, which is
// expected transiently right after upload.
func (s *FileService) ReadContent(ctx context.Context, req ContentRequest) (*ContentResult, error) {
	file, err := s.catalog.GetAny(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !file.IsPublic {
		if req.Requester == nil || *req.Requester != file.UserId {
			return nil, common.ErrNotFound
		}
	}
	if file.Type == model.TypeFolder {
		return nil, common.ErrFolderNoContent
	}

	ref := file.ContentRef
	if req.Size != 0 {
		if file.Type != model.TypeImage {
			return nil, common.ErrNotImage
		}
		switch req.Size {
		case 100, 250, 500:
			ref = ref + "_" + strconv.Itoa(req.Size)
		default:
			return nil, common.ErrInvalidSize
		}
	}
	if ref == "" || !s.blobs.Exists(ref) {
		return nil, common.ErrNotFound
	}

	mimeType := mime.TypeByExtension(filepath.Ext(file.Name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &ContentResult{Path: s.blobs.Path(ref), MimeType: mimeType}, nil
}

// Status reports liveness of the two backing stores.
func (s *FileService) Status(ctx context.Context) (redisAlive bool, dbAlive bool) {
	redisAlive = s.sessions.Ping(ctx) == nil
	dbAlive = model.PingDB(s.db) == nil
	return redisAlive, dbAlive
}

// Stats reports the user and file counts.
func (s *FileService) Stats(ctx context.Context) (users int64, files int64, err error) {
	if users, err = s.users.Count(ctx); err != nil {
		return 0, 0, err
	}
	if files, err = s.catalog.Count(ctx); err != nil {
		return 0, 0, err
	}
	return users, files, nil
}
