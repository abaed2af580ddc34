package service

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hostelcare/complaints-backend/internal/model"
)

// InspectImage checks an uploaded complaint photo and returns it with the
// content type sniffed from its bytes. Client-declared types are ignored.
func InspectImage(data []byte, maxBytes int64) (model.Image, error) {
	if len(data) == 0 {
		return model.Image{}, ErrImageRequired
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return model.Image{}, ErrImageTooLarge
	}

	mtype := mimetype.Detect(data)
	contentType := strings.SplitN(mtype.String(), ";", 2)[0]
	if !strings.HasPrefix(contentType, "image/") {
		return model.Image{}, ErrUnsupportedImage
	}

	return model.Image{ContentType: contentType, Data: data}, nil
}
