package report

const unknownStatus = "Unknown"

var statusLabels = map[string]string{
	"200": "OK",
	"201": "Created",
	"204": "No Content",
	"301": "Moved",
	"302": "Redirect",
	"304": "Not Modified",
	"400": "Bad Request",
	"401": "Unauthorized",
	"403": "Forbidden",
	"404": "Not Found",
	"500": "Server Error",
	"502": "Bad Gateway",
	"503": "Unavailable",
}

// StatusLabel returns a short human label for an HTTP status code.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}

	return unknownStatus
}
