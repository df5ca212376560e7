package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"files-manager/library/storage"
)

type fakeRecords struct {
	refs map[int64]string
}

func (f *fakeRecords) ContentRef(_ context.Context, _ int64, fileID int64) (string, error) {
	ref, ok := f.refs[fileID]
	if !ok {
		return "", fmt.Errorf("no record %d", fileID)
	}
	return ref, nil
}

func pngBytes(t *testing.T, width int, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMemoryQueue(t *testing.T) {
	queue := NewMemoryQueue(2)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, Job{UserID: 1, FileID: 2}))
	job, err := queue.Dequeue(ctx)
	require.NoError(t, err)
	assert.Equal(t, Job{UserID: 1, FileID: 2}, job)
}

func TestMemoryQueueFull(t *testing.T) {
	queue := NewMemoryQueue(1)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, Job{FileID: 1}))
	assert.Error(t, queue.Enqueue(ctx, Job{FileID: 2}))
}

func TestMemoryQueueDequeueCancelled(t *testing.T) {
	queue := NewMemoryQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queue.Dequeue(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessWritesAllVariants(t *testing.T) {
	blobs := storage.NewBlobStore(t.TempDir())
	ref, err := blobs.Write(pngBytes(t, 1000, 500))
	require.NoError(t, err)

	worker := NewWorker(NewMemoryQueue(1), blobs, &fakeRecords{refs: map[int64]string{10: ref}})
	require.NoError(t, worker.Process(context.Background(), Job{UserID: 1, FileID: 10}))

	for _, width := range Widths {
		data, err := blobs.Read(ref + "_" + strconv.Itoa(width))
		require.NoError(t, err, "variant %d missing", width)

		img, _, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, width, img.Bounds().Dx())
		// Aspect ratio is preserved: the original is 2:1.
		assert.Equal(t, width/2, img.Bounds().Dy())
	}
}

func TestProcessNonImageFails(t *testing.T) {
	blobs := storage.NewBlobStore(t.TempDir())
	ref, err := blobs.Write([]byte("plain text, not a raster image"))
	require.NoError(t, err)

	worker := NewWorker(NewMemoryQueue(1), blobs, &fakeRecords{refs: map[int64]string{11: ref}})
	err = worker.Process(context.Background(), Job{UserID: 1, FileID: 11})
	assert.Error(t, err)

	for _, width := range Widths {
		assert.False(t, blobs.Exists(ref+"_"+strconv.Itoa(width)))
	}
}

func TestProcessMissingRecord(t *testing.T) {
	blobs := storage.NewBlobStore(t.TempDir())
	worker := NewWorker(NewMemoryQueue(1), blobs, &fakeRecords{refs: map[int64]string{}})

	err := worker.Process(context.Background(), Job{UserID: 1, FileID: 99})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestProcessMissingContent(t *testing.T) {
	blobs := storage.NewBlobStore(t.TempDir())
	worker := NewWorker(NewMemoryQueue(1), blobs, &fakeRecords{refs: map[int64]string{12: "dangling-ref"}})

	err := worker.Process(context.Background(), Job{UserID: 1, FileID: 12})
	assert.Error(t, err)
}
