package thumbnail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"files-manager/common"
	"files-manager/library/storage"
)

// Widths are the fixed target widths, generated largest first.
var Widths = []int{500, 250, 100}

// ErrFileNotFound terminates a job whose record disappeared or whose
// ownership does not match.
var ErrFileNotFound = errors.New("file not found")

// RecordSource resolves a job to the content reference of its file record,
// scoped to the owning user.
type RecordSource interface {
	ContentRef(ctx context.Context, userID int64, fileID int64) (string, error)
}

// Worker consumes jobs and writes resized variants into the blob store as
// `<contentRef>_<width>`. A job either completes with all widths written or
// fails; partially written variants are left in place and no retry happens.
type Worker struct {
	queue Queue
	blobs *storage.BlobStore
	files RecordSource
}

func NewWorker(queue Queue, blobs *storage.BlobStore, files RecordSource) *Worker {
	return &Worker{queue: queue, blobs: blobs, files: files}
}

// Start consumes jobs until ctx is cancelled. One job runs at a time; run
// more workers for horizontal scaling.
func (w *Worker) Start(ctx context.Context) {
	common.SysLog("thumbnail worker started")
	for {
		job, err := w.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				common.SysLog("thumbnail worker stopped")
				return
			}
			common.SysError("failed to dequeue thumbnail job: " + err.Error())
			continue
		}
		if err := w.Process(ctx, job); err != nil {
			common.SysError(fmt.Sprintf("thumbnail job failed for file %d: %s", job.FileID, err.Error()))
		} else {
			common.SysLog(fmt.Sprintf("thumbnail job completed for file %d", job.FileID))
		}
	}
}

// Process runs a single job to its terminal state. All widths are derived
// in parallel from one decode of the original; any width failing fails the
// whole job.
func (w *Worker) Process(ctx context.Context, job Job) error {
	ref, err := w.files.ContentRef(ctx, job.UserID, job.FileID)
	if err != nil {
		return ErrFileNotFound
	}
	data, err := w.blobs.Read(ref)
	if err != nil {
		return fmt.Errorf("failed to read original content: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("content is not a decodable image: %w", err)
	}

	var g errgroup.Group
	for _, width := range Widths {
		width := width
		g.Go(func() error {
			variant, err := encode(scale(img, width), format)
			if err != nil {
				return fmt.Errorf("failed to encode %dpx variant: %w", width, err)
			}
			return w.blobs.WriteRef(ref+"_"+strconv.Itoa(width), variant)
		})
	}
	return g.Wait()
}

// scale resizes img to the target width, preserving aspect ratio.
func scale(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// encode writes the variant in the original's format, falling back to JPEG
// for anything that is not PNG or GIF.
func encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
