package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// ReportFolderPath derives the storage folder for a report run.
// Format: YYYY/MM/DD/ForecastReport-YYYY-MM-DD-HH-MM-SS
func ReportFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/ForecastReport-%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// ContentType determines the MIME content type from a file extension
func ContentType(filename string) string {
	switch path.Ext(strings.ToLower(filename)) {
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	case ".md":
		return "text/markdown"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
