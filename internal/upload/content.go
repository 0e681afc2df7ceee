// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/gabriel-vasile/mimetype"
)

const defaultContentType = "application/octet-stream"

// detectContentType sniffs the file's leading bytes. Sniffing can't tell CSS
// or JavaScript from plain text, so a generic result defers to the extension.
func detectContentType(path string) string {
	detected := defaultContentType
	if mt, err := mimetype.DetectFile(path); err == nil {
		detected = mt.String()
	} else {
		log.WithError(err).Debugf("content sniffing failed for %s", path)
	}

	if isGeneric(detected) {
		if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
			return byExt
		}
	}
	return detected
}

func isGeneric(contentType string) bool {
	base, _, _ := strings.Cut(contentType, ";")
	return base == "text/plain" || base == defaultContentType
}
