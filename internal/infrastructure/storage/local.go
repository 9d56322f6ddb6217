package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const sniffLen = 512

// LocalStorage writes uploads below UploadDir and addresses them under
// MediaPrefix, where the HTTP server serves them back.
type LocalStorage struct {
	UploadDir   string
	MediaPrefix string
}

func CreateLocalStorage(uploadDir, mediaPrefix string) *LocalStorage {
	return &LocalStorage{UploadDir: uploadDir, MediaPrefix: mediaPrefix}
}

func (s *LocalStorage) Save(ctx context.Context, dir string, filename string, r io.Reader) (domain.File, error) {
	target := filepath.Join(s.UploadDir, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Save").Msg("")
		return domain.File{}, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	name := ulid.Make().String() + strings.ToLower(filepath.Ext(filename))
	f, err := os.Create(filepath.Join(target, name))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Save").Msg("")
		return domain.File{}, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Save").Msg("")
		_ = os.Remove(f.Name())
		return domain.File{}, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	return domain.File{Name: name, Src: path.Join(s.MediaPrefix, dir, name)}, nil
}

// SaveImage rejects content that does not sniff as an image before saving it.
func (s *LocalStorage) SaveImage(ctx context.Context, dir string, filename string, r io.Reader) (domain.File, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveImage").Msg("")
		return domain.File{}, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
	head = head[:n]

	if !strings.HasPrefix(http.DetectContentType(head), "image/") {
		return domain.File{}, fmt.Errorf("%w: %s", errs.ErrNotAnImage, filename)
	}

	return s.Save(ctx, dir, filename, io.MultiReader(bytes.NewReader(head), r))
}
