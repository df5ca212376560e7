package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"files-manager/common"
	"files-manager/library/storage"
	"files-manager/library/thumbnail"
)

// File kinds. Only folders may be parents; only folders are created without
// content bytes.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootParentId is the sentinel parent meaning top-level; it is not a real
// record.
const RootParentId int64 = 0

// File is a metadata record for a folder, file or image. ContentRef is the
// opaque blob-store handle and is empty for folders.
type File struct {
	Id         int64  `json:"id" gorm:"primaryKey"`
	UserId     int64  `json:"user_id" gorm:"index;not null"`
	Name       string `json:"name" gorm:"size:255;not null"`
	Type       string `json:"type" gorm:"size:16;not null"`
	IsPublic   bool   `json:"is_public"`
	ParentId   int64  `json:"parent_id" gorm:"index;default:0"`
	ContentRef string `json:"-" gorm:"size:100"`
	CreatedAt  int64  `json:"created_at"`
}

// FileCatalog owns the file metadata records: hierarchy validation,
// owner-scoped queries and visibility toggling. Leaf creation also writes
// the content bytes and enqueues one thumbnail job.
type FileCatalog struct {
	db    *gorm.DB
	blobs *storage.BlobStore
	queue thumbnail.Queue
}

func NewFileCatalog(db *gorm.DB, blobs *storage.BlobStore, queue thumbnail.Queue) *FileCatalog {
	return &FileCatalog{db: db, blobs: blobs, queue: queue}
}

// checkParent validates that parentID references a folder owned by userID.
func (c *FileCatalog) checkParent(ctx context.Context, userID int64, parentID int64) error {
	if parentID == RootParentId {
		return nil
	}
	var parent File
	err := c.db.WithContext(ctx).Where("id = ? AND user_id = ?", parentID, userID).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrParentNotFound
	}
	if err != nil {
		return err
	}
	if parent.Type != TypeFolder {
		return common.ErrParentNotFolder
	}
	return nil
}

// CreateFolder inserts a folder record. Folders never carry content.
func (c *FileCatalog) CreateFolder(ctx context.Context, userID int64, name string, parentID int64, isPublic bool) (*File, error) {
	if name == "" {
		return nil, common.ErrMissingName
	}
	if err := c.checkParent(ctx, userID, parentID); err != nil {
		return nil, err
	}
	file := &File{
		UserId:    userID,
		Name:      name,
		Type:      TypeFolder,
		IsPublic:  isPublic,
		ParentId:  parentID,
		CreatedAt: time.Now().Unix(),
	}
	if err := c.db.WithContext(ctx).Create(file).Error; err != nil {
		return nil, err
	}
	return file, nil
}

// CreateLeaf writes data into the blob store, inserts the record, and
// enqueues a thumbnail job. The job is enqueued for every leaf kind, as the
// worker is the one that decides whether the bytes decode as an image.
// Enqueue failures are logged and do not fail the upload.
func (c *FileCatalog) CreateLeaf(ctx context.Context, userID int64, name string, kind string, parentID int64, isPublic bool, data []byte) (*File, error) {
	if name == "" {
		return nil, common.ErrMissingName
	}
	if kind != TypeFile && kind != TypeImage {
		return nil, common.ErrMissingType
	}
	if len(data) == 0 {
		return nil, common.ErrMissingData
	}
	if err := c.checkParent(ctx, userID, parentID); err != nil {
		return nil, err
	}
	ref, err := c.blobs.Write(data)
	if err != nil {
		return nil, err
	}
	file := &File{
		UserId:     userID,
		Name:       name,
		Type:       kind,
		IsPublic:   isPublic,
		ParentId:   parentID,
		ContentRef: ref,
		CreatedAt:  time.Now().Unix(),
	}
	if err := c.db.WithContext(ctx).Create(file).Error; err != nil {
		return nil, err
	}
	if err := c.queue.Enqueue(ctx, thumbnail.Job{UserID: userID, FileID: file.Id}); err != nil {
		common.SysError(fmt.Sprintf("failed to enqueue thumbnail job for file %d: %s", file.Id, err.Error()))
	}
	return file, nil
}

// GetByID returns the record only when owned by userID. Records owned by
// someone else are reported exactly like absent ones.
func (c *FileCatalog) GetByID(ctx context.Context, userID int64, fileID int64) (*File, error) {
	var file File
	err := c.db.WithContext(ctx).Where("id = ? AND user_id = ?", fileID, userID).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetAny returns the record regardless of owner. Content serving applies
// the visibility rule on top of it.
func (c *FileCatalog) GetAny(ctx context.Context, fileID int64) (*File, error) {
	var file File
	err := c.db.WithContext(ctx).First(&file, fileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// List returns page p of the owner's records in insertion order, optionally
// filtered by parent. A nil parentID means no parent filter.
func (c *FileCatalog) List(ctx context.Context, userID int64, parentID *int64, p int) ([]*File, error) {
	query := c.db.WithContext(ctx).Model(&File{}).Where("user_id = ?", userID)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	}
	return common.Paginate[File](query, p, "id")
}

// SetVisibility toggles isPublic as a single scoped update; concurrent
// toggles on the same record resolve to the last write.
func (c *FileCatalog) SetVisibility(ctx context.Context, userID int64, fileID int64, isPublic bool) (*File, error) {
	result := c.db.WithContext(ctx).Model(&File{}).
		Where("id = ? AND user_id = ?", fileID, userID).
		Update("is_public", isPublic)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, common.ErrNotFound
	}
	return c.GetByID(ctx, userID, fileID)
}

// ContentRef resolves a thumbnail job to its record's content reference.
func (c *FileCatalog) ContentRef(ctx context.Context, userID int64, fileID int64) (string, error) {
	file, err := c.GetByID(ctx, userID, fileID)
	if err != nil {
		return "", err
	}
	if file.ContentRef == "" {
		return "", common.ErrNotFound
	}
	return file.ContentRef, nil
}

func (c *FileCatalog) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&File{}).Count(&count).Error
	return count, err
}
