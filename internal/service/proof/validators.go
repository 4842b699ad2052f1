package proof

import "net/http"

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

func isValidOrderID(id int64) bool {
	return id > 0
}

// sniffContentType тип определяется по содержимому, а не по имени файла.
func sniffContentType(data []byte) (string, bool) {
	contentType := http.DetectContentType(data)
	_, ok := allowedContentTypes[contentType]
	return contentType, ok
}
