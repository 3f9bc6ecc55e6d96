package storage

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploads writes multipart files under a base directory and hands back
// the relative path that gets persisted on the entity and served under
// /uploads.
type Uploads struct {
	BaseDir string
}

func NewUploads(baseDir string) *Uploads {
	return &Uploads{BaseDir: baseDir}
}

// Save stores the file under baseDir/subdir with a random name, keeping
// the original extension. Uploaded names are untrusted, so nothing of
// them survives except the extension.
func (u *Uploads) Save(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(u.BaseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Remove deletes a previously saved file. A missing file is not an
// error; the row it belonged to is already gone.
func (u *Uploads) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(u.BaseDir, filepath.FromSlash(relPath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
