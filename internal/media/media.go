// Package media discovers and classifies audio/video files on disk.
package media

import (
	"path/filepath"
	"strings"
)

// Type is the container classification of a media file.
type Type string

const (
	TypeAudio Type = "audio"
	TypeVideo Type = "video"
)

// File is one discovered media file. Identity is the absolute path.
type File struct {
	Path    string // absolute path
	RelPath string // path relative to the scan root
	Type    Type
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".flac": true, ".aac": true,
	".ogg": true, ".m4a": true, ".wma": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true,
	".flv": true, ".wmv": true, ".webm": true, ".m4v": true,
}

// IsAudio reports whether the path has a supported audio extension.
func IsAudio(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsVideo reports whether the path has a supported video extension.
func IsVideo(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsSupported reports whether the path is a recognized audio or video file.
func IsSupported(path string) bool {
	return IsAudio(path) || IsVideo(path)
}

// Classify returns the media type for a path, or false for unsupported files.
func Classify(path string) (Type, bool) {
	switch {
	case IsAudio(path):
		return TypeAudio, true
	case IsVideo(path):
		return TypeVideo, true
	}
	return "", false
}
