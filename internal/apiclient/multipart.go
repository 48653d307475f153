package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type formField struct {
	name  string
	value string
}

// formBody monta o multipart usado em perfil e serviços (campos + um arquivo opcional).
type formBody struct {
	fields []formField
	file   *models.Upload
}

func (f *formBody) set(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// setIfNotEmpty: PATCH parcial, só vai o que foi preenchido.
func (f *formBody) setIfNotEmpty(name, value string) {
	if value != "" {
		f.set(name, value)
	}
}

func (f *formBody) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", err
		}
	}

	if f.file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, f.file.Field, f.file.Filename))
		ct := f.file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
