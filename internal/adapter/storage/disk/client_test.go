package disk

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/GalleryApp/internal/logger"
)

func TestSaveFile(t *testing.T) {
	ctx := context.Background()
	// подкаталог ещё не существует — SaveFile обязан создать его сам
	baseDir := filepath.Join(t.TempDir(), "uploads", "images")
	client := NewClient(baseDir, "/uploads/images", logger.NewNop())

	err := client.SaveFile(ctx, "test.png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(baseDir, "test.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestDeleteFile(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	client := NewClient(baseDir, "/uploads/images", logger.NewNop())

	require.NoError(t, client.SaveFile(ctx, "test.png", bytes.NewReader([]byte("x"))))
	require.NoError(t, client.DeleteFile(ctx, "test.png"))

	_, err := os.Stat(filepath.Join(baseDir, "test.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileToleratesAbsence(t *testing.T) {
	client := NewClient(t.TempDir(), "/uploads/images", logger.NewNop())

	// файл никогда не существовал — ошибки быть не должно
	assert.NoError(t, client.DeleteFile(context.Background(), "missing.png"))
}

func TestPublicURL(t *testing.T) {
	client := NewClient("public/uploads/images", "/uploads/images", logger.NewNop())
	assert.Equal(t, "/uploads/images/123-abc.png", client.PublicURL("123-abc.png"))
}
