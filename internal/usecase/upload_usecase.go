package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/service"
	"teleradiology-api/pkg/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// sniffLen is how much of an upload is inspected to detect its type.
// OOXML documents need more than the first 512 bytes to tell them apart
// from a plain zip archive.
const sniffLen = 3072

const megabyte = 1 << 20

// UploadCategory is the policy for one upload bucket. Empty permissions mean
// the operation is open to anyone (ReadPermission) or to any signed-in user
// (WritePermission) unless PublicWrite is set.
type UploadCategory struct {
	Name            string
	MaxSize         int64
	Types           []string
	PublicRead      bool
	PublicWrite     bool
	ReadPermission  string
	WritePermission string
}

var (
	imageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	docTypes   = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

var uploadCategories = map[string]UploadCategory{
	"avatars": {
		Name:       "avatars",
		MaxSize:    2 * megabyte,
		Types:      imageTypes,
		PublicRead: true,
	},
	"content": {
		Name:            "content",
		MaxSize:         5 * megabyte,
		Types:           append(append([]string{}, imageTypes...), "image/svg+xml"),
		PublicRead:      true,
		WritePermission: entity.PermUploadsWrite,
	},
	"resumes": {
		Name:           "resumes",
		MaxSize:        10 * megabyte,
		Types:          docTypes,
		PublicWrite:    true,
		ReadPermission: entity.PermApplicationsRead,
	},
	"documents": {
		Name:    "documents",
		MaxSize: 10 * megabyte,
		Types: append(append([]string{}, docTypes...),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"text/csv",
		),
		ReadPermission:  entity.PermUploadsRead,
		WritePermission: entity.PermUploadsWrite,
	},
}

// ooxmlByExt resolves documents the detector only recognised as zip.
var ooxmlByExt = map[string]string{
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func LookupUploadCategory(name string) (UploadCategory, error) {
	c, ok := uploadCategories[name]
	if !ok {
		return UploadCategory{}, ErrUploadCategoryNotFound
	}
	return c, nil
}

func errFileTooLarge(limit int64) error {
	return apperror.BadRequest(fmt.Sprintf("File too large, maximum size is %d MB", limit/megabyte))
}

// UploadFile is an incoming multipart file.
type UploadFile struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

type UploadUsecase interface {
	Upload(ctx context.Context, category string, file UploadFile) (*dto.UploadResponse, error)
	Open(ctx context.Context, category, name string) (io.ReadCloser, *dto.UploadResponse, error)
	Delete(ctx context.Context, category, name string) error
	List(ctx context.Context, category string) ([]dto.UploadResponse, error)
}

type uploadUsecase struct {
	log     *logrus.Logger
	storage service.FileStorage
	baseURL string
	now     func() time.Time
}

func NewUploadUsecase(log *logrus.Logger, storage service.FileStorage, baseURL string) UploadUsecase {
	return &uploadUsecase{
		log:     log,
		storage: storage,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

func (u *uploadUsecase) Upload(ctx context.Context, category string, file UploadFile) (*dto.UploadResponse, error) {
	policy, err := LookupUploadCategory(category)
	if err != nil {
		return nil, err
	}
	if file.Reader == nil || file.Size == 0 {
		return nil, ErrFileRequired
	}
	if file.Size > policy.MaxSize {
		return nil, errFileTooLarge(policy.MaxSize)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file.Reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		u.log.Warnf("Failed to read upload: %+v", err)
		return nil, err
	}
	head = head[:n]

	contentType, ext, ok := detectType(head, file.Filename, policy.Types)
	if !ok {
		u.log.WithFields(logrus.Fields{
			"category": category,
			"filename": file.Filename,
		}).Info("Upload rejected by content type")
		return nil, ErrFileTypeNotAllowed
	}

	name := uuid.NewString() + ext
	body := io.MultiReader(bytes.NewReader(head), file.Reader)
	if err := u.storage.Save(ctx, category, name, body, file.Size, contentType); err != nil {
		u.log.Warnf("Failed to store upload: %+v", err)
		return nil, err
	}

	return &dto.UploadResponse{
		Category:    category,
		Name:        name,
		URL:         u.url(category, name),
		ContentType: contentType,
		Size:        file.Size,
		CreatedAt:   u.now(),
	}, nil
}

func (u *uploadUsecase) Open(ctx context.Context, category, name string) (io.ReadCloser, *dto.UploadResponse, error) {
	if _, err := LookupUploadCategory(category); err != nil {
		return nil, nil, err
	}
	if !validStoredName(name) {
		return nil, nil, ErrFileNotFound
	}

	rc, info, err := u.storage.Open(ctx, category, name)
	if errors.Is(err, service.ErrFileNotFound) {
		return nil, nil, ErrFileNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to open upload: %+v", err)
		return nil, nil, err
	}

	res := u.fileToResponse(*info)
	return rc, &res, nil
}

func (u *uploadUsecase) Delete(ctx context.Context, category, name string) error {
	if _, err := LookupUploadCategory(category); err != nil {
		return err
	}
	if !validStoredName(name) {
		return ErrFileNotFound
	}

	err := u.storage.Delete(ctx, category, name)
	if errors.Is(err, service.ErrFileNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to delete upload: %+v", err)
		return err
	}
	return nil
}

func (u *uploadUsecase) List(ctx context.Context, category string) ([]dto.UploadResponse, error) {
	if _, err := LookupUploadCategory(category); err != nil {
		return nil, err
	}

	files, err := u.storage.List(ctx, category)
	if err != nil {
		u.log.Warnf("Failed to list uploads: %+v", err)
		return nil, err
	}

	return lo.Map(files, func(f service.FileInfo, _ int) dto.UploadResponse {
		return u.fileToResponse(f)
	}), nil
}

func (u *uploadUsecase) fileToResponse(f service.FileInfo) dto.UploadResponse {
	contentType := f.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(f.Name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return dto.UploadResponse{
		Category:    f.Category,
		Name:        f.Name,
		URL:         u.url(f.Category, f.Name),
		ContentType: contentType,
		Size:        f.Size,
		CreatedAt:   f.ModifiedAt,
	}
}

func (u *uploadUsecase) url(category, name string) string {
	return u.baseURL + "/api/uploads/" + category + "/" + name
}

// detectType sniffs the content and checks it against the allowed list. The
// client's filename only disambiguates zip based and plain text formats.
func detectType(head []byte, filename string, allowed []string) (string, string, bool) {
	detected := mimetype.Detect(head)
	clientExt := strings.ToLower(path.Ext(filename))

	for _, t := range allowed {
		if detected.Is(t) {
			return t, extensionFor(detected, t, clientExt), true
		}
	}

	if detected.Is("application/zip") {
		if t, ok := ooxmlByExt[clientExt]; ok && lo.Contains(allowed, t) {
			return t, clientExt, true
		}
	}
	if detected.Is("text/plain") && clientExt == ".csv" && lo.Contains(allowed, "text/csv") {
		return "text/csv", ".csv", true
	}
	return "", "", false
}

func extensionFor(detected *mimetype.MIME, contentType, clientExt string) string {
	if ext := detected.Extension(); ext != "" {
		return ext
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return clientExt
}

// validStoredName accepts only names this usecase generates.
func validStoredName(name string) bool {
	ext := path.Ext(name)
	if len(ext) > 6 || strings.ContainsAny(ext, `/\`) {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(name, ext))
	return err == nil
}
