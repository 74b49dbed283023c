// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"path/filepath"
	"slices"
	"strings"
)

// FileSpec is a named set of file extensions, such as
// {"Image", []string{"png", "jpg"}}. Extensions have no leading dot.
type FileSpec struct {
	Name       string
	Extensions []string
}

// Matches returns whether the file name has one of the extensions.
func (fs FileSpec) Matches(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return slices.ContainsFunc(fs.Extensions, func(e string) bool { return strings.EqualFold(e, ext) })
}

// FileDialogOptions configure an open or save file dialog.
type FileDialogOptions struct {
	Title             string
	ButtonText        string
	ShowHidden        bool
	AllowedTypes      []FileSpec
	DefaultType       *FileSpec
	DefaultName       string
	StartingDirectory string
	SelectDirectories bool
	MultiSelection    bool
}

// FileInfo is the result of a file dialog. A cancelled dialog is
// reported with a nil *FileInfo.
type FileInfo struct {
	// Path is the chosen path; for a multiple selection it is the first.
	Path string

	// Paths are all of the chosen paths.
	Paths []string

	// Format is the file type selected in the dialog, if any.
	Format *FileSpec
}

// FileDialoger is implemented by native windows that can show file
// dialogs. The result is reported later through [Sink.FileDialogDone]
// with the same token.
type FileDialoger interface {
	OpenFile(tok FileDialogToken, opts FileDialogOptions) error
	SaveAs(tok FileDialogToken, opts FileDialogOptions) error
}
