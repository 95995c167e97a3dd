package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/auth"
	"cat-collector/internal/ports/objectstore"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Las fotos se achican para entrar en este recuadro antes de subirlas.
	MaxWidth  = 1024
	MaxHeight = 768

	// MaxSourcePixels es el máximo ancho×alto declarado que se acepta decodificar.
	MaxSourcePixels = 40_000_000

	DefaultUploadTimeout = 30 * time.Second

	keyPrefixLen = 12
)

var ErrStoreNotConfigured = errors.New("object storage not configured")

// CatAccess evita importar el paquete cats (rompe ciclos).
type CatAccess interface {
	CheckOwner(ctx context.Context, caller auth.Claims, catID string) error
}

type Service struct {
	repo    Repository
	cats    CatAccess
	store   objectstore.Store
	log     logger.Logger
	timeout time.Duration

	now    func() time.Time
	newKey func() string
}

type Options struct {
	// Store nil => toda subida falla con ErrUploadFailed.
	Store         objectstore.Store
	Logger        logger.Logger
	UploadTimeout time.Duration
}

func NewService(repo Repository, cats CatAccess, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	timeout := opts.UploadTimeout
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	return &Service{
		repo:    repo,
		cats:    cats,
		store:   opts.Store,
		log:     log,
		timeout: timeout,
		now:     time.Now,
		newKey: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:keyPrefixLen]
		},
	}
}

// Upload es el archivo tal cual llegó en el multipart.
type Upload struct {
	Filename string
	Body     io.Reader
}

// Add valida, achica y sube la imagen; recién con la subida OK crea la Photo.
// Lo que se sube es la imagen re-codificada en el formato de la extensión, no
// los bytes originales: se pierden metadatos y los frames extra de un GIF.
// Errores: ErrInvalidInput (nombre sin extensión, no es imagen o demasiados
// píxeles) o ErrUploadFailed.
func (s *Service) Add(ctx context.Context, caller auth.Claims, catID string, up Upload) (Photo, error) {
	catID = strings.TrimSpace(catID)
	if err := s.cats.CheckOwner(ctx, caller, catID); err != nil {
		return Photo{}, err
	}

	ext, err := StorageExt(up.Filename)
	if err != nil {
		return Photo{}, err
	}
	format, err := imaging.FormatFromFilename(up.Filename)
	if err != nil {
		return Photo{}, forms.NewValidationError("photo-file", "Unsupported image format.")
	}
	if up.Body == nil {
		return Photo{}, forms.NewValidationError("photo-file", "Empty file.")
	}

	var head bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(up.Body, &head))
	if err != nil {
		return Photo{}, forms.NewValidationError("photo-file", "The file is not a valid image.")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return Photo{}, forms.NewValidationError("photo-file", "The image dimensions are too large.")
	}

	img, err := imaging.Decode(io.MultiReader(&head, up.Body), imaging.AutoOrientation(true))
	if err != nil {
		return Photo{}, forms.NewValidationError("photo-file", "The file is not a valid image.")
	}
	fitted := imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, format); err != nil {
		return Photo{}, fmt.Errorf("encode image: %w", err)
	}
	contentType := http.DetectContentType(buf.Bytes())

	key := s.newKey() + ext
	log := s.log.With(map[string]any{"cat_id": catID, "key": key})

	if s.store == nil {
		log.Error("photo upload failed", map[string]any{"error": ErrStoreNotConfigured})
		return Photo{}, fmt.Errorf("%w: %v", domainerr.ErrUploadFailed, ErrStoreNotConfigured)
	}

	upCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Put(upCtx, key, contentType, bytes.NewReader(buf.Bytes())); err != nil {
		log.Error("photo upload failed", map[string]any{"error": err})
		return Photo{}, fmt.Errorf("%w: %v", domainerr.ErrUploadFailed, err)
	}

	p := Photo{
		ID:        uuid.NewString(),
		CatID:     catID,
		URL:       s.store.URL(key),
		Key:       key,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Photo{}, err
	}
	log.Info("photo uploaded", map[string]any{"photo_id": p.ID, "bytes": buf.Len()})
	return p, nil
}

func (s *Service) ListByCat(ctx context.Context, catID string) ([]Photo, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return nil, domainerr.ErrNotFound
	}
	return s.repo.ListByCat(ctx, catID)
}

// StorageExt devuelve la extensión (desde el último ".") en minúsculas.
// Un nombre sin extensión se rechaza en vez de inventar una.
func StorageExt(filename string) (string, error) {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return "", forms.NewValidationError("photo-file", "The file name needs an extension (e.g. .jpg).")
	}
	return strings.ToLower(base[i:]), nil
}
