package controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var V = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// bindAndValidate decodes the request into payload and reports missing or
// malformed fields as a validation error.
func bindAndValidate(e echo.Context, component string, payload interface{}) error {
	if err := bind(e, component, payload); err != nil {
		return err
	}
	return validate(payload)
}

func bind(e echo.Context, component string, payload interface{}) error {
	if err := e.Bind(payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", component).Msg("")
		return fmt.Errorf("%w: %v", errs.ErrClient, err)
	}
	return nil
}

func validate(payload interface{}) error {
	err := V.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", errs.ErrClient, err)
	}

	fields := make([]errs.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, errs.FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return errs.NewValidationError(fields...)
}

// uploads keeps the multipart files opened for one request so they can be
// closed once the handler returns.
type uploads struct {
	files []multipart.File
}

func (u *uploads) Close() {
	for _, f := range u.files {
		f.Close()
	}
}

func (u *uploads) open(fh *multipart.FileHeader) (dto.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.Upload{}, fmt.Errorf("%w: %v", errs.ErrClient, err)
	}
	u.files = append(u.files, f)
	return dto.Upload{Filename: fh.Filename, Content: f}, nil
}

// single returns the file sent under field, or nil when there is none.
func (u *uploads) single(e echo.Context, field string) (*dto.Upload, error) {
	fh, err := e.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrClient, err)
	}

	upload, err := u.open(fh)
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (u *uploads) many(e echo.Context, field string) ([]dto.Upload, error) {
	form, err := e.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrClient, err)
	}

	files := make([]dto.Upload, 0, len(form.File[field]))
	for _, fh := range form.File[field] {
		upload, err := u.open(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, upload)
	}
	return files, nil
}
